package lang

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
)

// LexicalError reports an invalid lexeme. It is fatal to the pipeline: no
// further tokens are produced after one is returned.
type LexicalError struct {
	Line int
	Col  int
	Msg  string
	// Hint suggests the closest hashtag word when the offending lexeme is
	// an unrecognized hashtag word. Empty when no close match exists.
	Hint string
}

// Error implements the error interface.
func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at line %d, col %d: %s",
		e.Line, e.Col, e.Msg)
}

// LogValue implements slog.LogValuer.
func (e *LexicalError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("line", e.Line),
		slog.Int("col", e.Col),
		slog.String("error", e.Msg),
	}

	if e.Hint != "" {
		attrs = append(attrs, slog.String("hint", e.Hint))
	}

	return slog.GroupValue(attrs...)
}

// SyntaxError reports a grammar violation at the parser's lookahead token.
// No partial tree is returned alongside it.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, col %d: %s",
		e.Line, e.Col, e.Msg)
}

// LogValue implements slog.LogValuer.
func (e *SyntaxError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("line", e.Line),
		slog.Int("col", e.Col),
		slog.String("error", e.Msg),
	)
}

// SemanticError carries every error collected by a full validation walk,
// in traversal order. Unlike lexical and syntax errors, semantic problems
// are not fatal individually; the walk completes before they are reported.
type SemanticError struct {
	Messages []string
}

// Error implements the error interface.
func (e *SemanticError) Error() string {
	switch len(e.Messages) {
	case 0:
		return "semantic error"
	case 1:
		return "semantic error: " + e.Messages[0]
	default:
		return fmt.Sprintf("%d semantic errors: %s",
			len(e.Messages), strings.Join(e.Messages, "; "))
	}
}

// LogValue implements slog.LogValuer.
func (e *SemanticError) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.Messages))
	for i, msg := range e.Messages {
		attrs = append(attrs, slog.String(strconv.Itoa(i), msg))
	}

	return slog.GroupValue(attrs...)
}

// suggestHashWord returns the closest member of the hashtag-word set for a
// misspelled word, or "" when nothing ranks close enough to be useful.
func suggestHashWord(word string) string {
	matches := fuzzy.Find(strings.ToUpper(word), HashWords())
	if len(matches) == 0 {
		return ""
	}

	return matches[0].Str
}

// Snippet renders the offending source line with a caret marking the column:
//
//	3 | #GIMMEH TITLE My Page
//	  |     ^
//
// It returns "" when the position falls outside the source.
func Snippet(source string, line, col int) string {
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}

	text := lines[line-1]

	var buf strings.Builder

	buf.WriteString("  ")
	buf.WriteString(strconv.Itoa(line))
	buf.WriteString(" | ")
	buf.WriteString(text)
	buf.WriteByte('\n')

	// 2 leading spaces + " | " (3 chars) around the line number.
	padding := strings.Repeat(" ", len(strconv.Itoa(line))+5)
	if col > 0 {
		padding += strings.Repeat(" ", col-1)
	}

	buf.WriteString(padding + "^")

	return buf.String()
}
