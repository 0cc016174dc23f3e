package repl

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/aottoma1/lolmd/lang"
)

// ctrlCommands are the available colon-prefixed session commands.
var ctrlCommands = []string{
	":render", ":show", ":clear", ":undo", ":help", ":quit",
}

// wordCandidates returns the completion candidates for source input:
// every hashtag word ('#HAI', '#I HAZ', ...) and every keyword.
var wordCandidates = sync.OnceValue(
	func() []string {
		return append(lang.HashWords(), lang.Keywords()...)
	},
)

// isWordBoundary returns true if the rune delimits a completion word.
// '#' is not a boundary so hashtag words complete as a unit, and spaces
// inside two-word hashtags are handled by the candidate strings themselves.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t', ',', '.', '!', '?':
		return true
	}

	return false
}

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input.
// Returns an empty word when the cursor sits on a boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	// Walk backward from cursor to find word start.
	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	// Walk forward from cursor to find word end.
	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// computeMatches calculates the fuzzy match results for the word at the
// cursor. Words beginning with ':' complete against session commands;
// everything else completes against the language's hashtag words and
// keywords.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	wordStart, wordEnd int,
) {
	input := m.input.Value()
	cursor := m.input.Position()

	word, ws, we := wordBounds(input, cursor)
	wordStart, wordEnd = ws, we

	if word == "" {
		return nil, wordStart, wordEnd
	}

	candidates := wordCandidates()
	if strings.HasPrefix(word, ":") {
		candidates = ctrlCommands
	}

	// fuzzy.Find matches case-insensitively, so lowercase source input
	// still completes against the uppercase language words.
	return fuzzy.Find(word, candidates), wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to
// fit within the given terminal width. The selected candidate (when
// tabbing) uses the selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		style := suggestionStyle
		if tabActive && i == suggIdx {
			style = selectedStyle
		}

		rendered := style.Render(match.Str)

		entryWidth := lipgloss.Width(rendered)
		if i > 0 {
			entryWidth += lipgloss.Width(sep)
		}

		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}
