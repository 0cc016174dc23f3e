// Package repl implements the interactive lolmd session.
//
// Source lines typed at the prompt accumulate in a buffer; colon-prefixed
// commands act on the buffer (":render" compiles it and prints the HTML,
// ":show" lists it, ":undo" drops the last line). Completions for hashtag
// words and keywords appear as you type and cycle with Tab.
package repl

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aottoma1/lolmd/cli/cmd"
	"github.com/aottoma1/lolmd/lang"
	"github.com/aottoma1/lolmd/log"
)

const prompt = "➜ "

func helpMessage() string {
	return `
: Commands (prefix with ':'):

  :render   Compile the buffer and print the HTML
  :show     Print the buffer with line numbers
  :undo     Remove the last buffered line
  :clear    Discard the buffer and clear the screen
  :help     Print this cruft
  :quit     Exit the session

Usage:
  Type source lines to append them to the buffer
  Completions appear automatically as you type
  Press Tab / Shift-Tab to cycle through candidates
  Use Up/Down arrows for history navigation
  Press Ctrl+C on an empty line or Ctrl+D to exit
`
}

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// formatEcho formats the input echo line with prompt and input styled.
func formatEcho(input string) string {
	return promptStyle.Render(prompt) + inputStyle.Render(input)
}

// Repl starts an interactive session.
type Repl struct {
	Source string `help:"Seed the session buffer with a source file" short:"f" type:"existingfile"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	var lines []string

	if r.Source != "" {
		data, err := os.ReadFile(r.Source)
		if err != nil {
			return err
		}

		lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	}

	historyPath := baseHistory
	if ktx := cmd.KongFrom(ctx); ktx != nil {
		if dir, ok := ktx.Model.Vars()[cmd.CacheIdentifier]; ok {
			historyPath = filepath.Join(dir, baseHistory)
		}
	}

	history := NewHistory(historyPath)
	if err := history.Load(); err != nil {
		log.WarnContext(ctx, "could not load history",
			slog.String("path", historyPath),
			slog.Any("error", err),
		)
	}

	log.TraceContext(ctx, "repl start",
		slog.Int("seed_lines", len(lines)),
		slog.Int("history_entries", history.Len()),
	)

	m := newModel(ctx, lines, history)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

const defaultWidth = 80

// model is the Bubble Tea model for the session.
type model struct {
	ctxFunc    func() context.Context
	input      textinput.Model
	lines      []string // accumulated source buffer
	history    *History
	historyIdx int
	matches    fuzzy.Matches // current fuzzy match results
	wordStart  int           // byte offset of current word start
	wordEnd    int           // byte offset of current word end
	suggIdx    int           // selected candidate index
	tabActive  bool          // whether user is tab-cycling
	preTabText string        // input text before tab-cycling began
	preTabPos  int           // cursor position before tab-cycling began
	width      int           // terminal width for ellipsization
	quitting   bool
}

func newModel(ctx context.Context, lines []string, history *History) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		lines:      lines,
		history:    history,
		historyIdx: history.Len(),
		width:      defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(prompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	// Completion / hint line.
	switch {
	case m.historyIdx < m.history.Len():
		b.WriteString(hintStyle.Render(
			fmt.Sprintf("%d/%d", m.historyIdx+1, m.history.Len()),
		))
		b.WriteString("\n")

	case strings.TrimSpace(m.input.Value()) == "":
		b.WriteString(hintStyle.Render(
			fmt.Sprintf("%d line(s) buffered, type source or :help", len(m.lines)),
		))
		b.WriteString("\n")

	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(
			m.matches, m.suggIdx, m.tabActive, m.width,
		))
		b.WriteString("\n")

	default:
		b.WriteString("\n")
	}

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		refreshMatches(&m)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if m.tabActive && len(m.matches) > 0 {
			// Lock in the current tab candidate without executing.
			m.tabActive = false
			refreshMatches(&m)

			return m, nil
		}

		return m.executeInput()

	case tea.KeyTab:
		return m.handleTab(1)

	case tea.KeyShiftTab:
		return m.handleTab(-1)

	case tea.KeyUp:
		return m.historyPrev()

	case tea.KeyDown:
		return m.historyNext()

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabPos)
			refreshMatches(&m)
		}

		return m, nil
	}

	// Any other key: update input and recompute matches.
	var cmd tea.Cmd

	m.tabActive = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	refreshMatches(&m)

	return m, cmd
}

// handleTab cycles through completion candidates in the given direction.
func (m model) handleTab(dir int) (model, tea.Cmd) {
	if len(m.matches) == 0 {
		return m, nil
	}

	if len(m.matches) == 1 {
		replaceCurrentWord(&m, m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m, nil
	}

	if m.tabActive {
		m.suggIdx = (m.suggIdx + dir + len(m.matches)) % len(m.matches)
	} else {
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabPos = m.input.Position()

		m.suggIdx = 0
		if dir < 0 {
			m.suggIdx = len(m.matches) - 1
		}
	}

	replaceCurrentWord(&m, m.matches[m.suggIdx].Str)

	return m, nil
}

// replaceCurrentWord replaces the current word boundaries in the input with
// the given replacement text and repositions the cursor.
func replaceCurrentWord(m *model, replacement string) {
	input := m.input.Value()
	newInput := input[:m.wordStart] + replacement + input[m.wordEnd:]
	newCursor := m.wordStart + len(replacement)

	m.input.SetValue(newInput)
	m.input.SetCursor(newCursor)

	m.wordEnd = newCursor
}

// refreshMatches recomputes fuzzy matches for the current input state.
func refreshMatches(m *model) {
	m.matches, m.wordStart, m.wordEnd = m.computeMatches()

	if !m.tabActive {
		m.suggIdx = -1
	}
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.input.SetValue("")
	m.tabActive = false

	_, _ = m.history.Write(input)
	m.historyIdx = m.history.Len()

	echoCmd := tea.Println(formatEcho(input))

	if strings.HasPrefix(input, ":") {
		log.TraceContext(m.ctxFunc(), "repl command", slog.String("input", input))

		return m.executeCommand(input, echoCmd)
	}

	log.TraceContext(m.ctxFunc(), "repl line", slog.String("input", input))

	m.lines = append(m.lines, input)
	refreshMatches(&m)

	return m, echoCmd
}

func (m model) executeCommand(input string, echoCmd tea.Cmd) (model, tea.Cmd) {
	switch strings.Fields(input)[0] {
	case ":q", ":quit", ":exit":
		m.quitting = true

		return m, tea.Sequence(echoCmd, tea.Quit)

	case ":h", ":help":
		return m, tea.Sequence(echoCmd, tea.Println(helpMessage()))

	case ":r", ":render":
		return m, tea.Sequence(echoCmd, tea.Println(m.render()))

	case ":s", ":show":
		return m, tea.Sequence(echoCmd, tea.Println(m.showBuffer()))

	case ":u", ":undo":
		if len(m.lines) > 0 {
			dropped := m.lines[len(m.lines)-1]
			m.lines = m.lines[:len(m.lines)-1]

			return m, tea.Sequence(
				echoCmd,
				tea.Println(hintStyle.Render("dropped: "+dropped)),
			)
		}

		return m, tea.Sequence(
			echoCmd,
			tea.Println(hintStyle.Render("buffer is empty")),
		)

	case ":c", ":clear":
		m.lines = nil

		return m, tea.ClearScreen

	default:
		return m, tea.Println(
			errorStyle.Render("unknown command: " + input + " (try :help)"),
		)
	}
}

// render compiles the buffered source and returns the styled HTML or error.
func (m model) render() string {
	source := strings.Join(m.lines, "\n") + "\n"

	html, err := lang.Compile(source)
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	return resultStyle.Render(html)
}

// showBuffer lists the buffered source lines with 1-indexed line numbers.
func (m model) showBuffer() string {
	if len(m.lines) == 0 {
		return hintStyle.Render("buffer is empty")
	}

	var b strings.Builder

	for i, line := range m.lines {
		fmt.Fprintf(&b, "%s %s\n",
			hintStyle.Render(fmt.Sprintf("%3d |", i+1)),
			line,
		)
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m model) historyPrev() (model, tea.Cmd) {
	if m.historyIdx > 0 {
		m.historyIdx--
		m.input.SetValue(m.history.Get(m.historyIdx))
		m.input.SetCursor(len(m.input.Value()))
		refreshMatches(&m)
	}

	return m, nil
}

func (m model) historyNext() (model, tea.Cmd) {
	if m.historyIdx < m.history.Len()-1 {
		m.historyIdx++
		m.input.SetValue(m.history.Get(m.historyIdx))
		m.input.SetCursor(len(m.input.Value()))
	} else {
		m.historyIdx = m.history.Len()
		m.input.SetValue("")
	}

	refreshMatches(&m)

	return m, nil
}
