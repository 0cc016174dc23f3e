package lang

import (
	"fmt"
	"strings"
)

// Lexer converts LOLCODE-markdown source text into a stream of tokens.
//
// The lexer is pull-based: the parser drives it one token at a time via
// [Lexer.Next], and there is no way to push a token back. Newlines are
// significant (each yields one token); spaces and tabs are skipped.
type Lexer struct {
	src  []rune
	pos  int
	line int
	col  int
}

// NewLexer creates a lexer positioned at line 1, column 1 of source.
func NewLexer(source string) *Lexer {
	return &Lexer{
		src:  []rune(source),
		line: 1,
		col:  1,
	}
}

// peek returns the current character without consuming it.
func (lx *Lexer) peek() (rune, bool) {
	if lx.pos >= len(lx.src) {
		return 0, false
	}

	return lx.src[lx.pos], true
}

// bump consumes and returns the current character, advancing the line and
// column counters.
func (lx *Lexer) bump() (rune, bool) {
	ch, ok := lx.peek()
	if !ok {
		return 0, false
	}

	if ch == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}

	lx.pos++

	return ch, true
}

// Next returns the next token in the input. Once the input is exhausted it
// returns a token of [KindEOF] on every call. A non-nil error is a
// *LexicalError and is fatal: the caller must not request further tokens.
func (lx *Lexer) Next() (Token, error) {
	for {
		// Skip spaces and tabs, never newlines.
		for {
			ch, ok := lx.peek()
			if !ok || (ch != ' ' && ch != '\t') {
				break
			}

			lx.bump()
		}

		line, col := lx.line, lx.col

		ch, ok := lx.peek()
		if !ok {
			return Token{Kind: KindEOF, Line: line, Col: col}, nil
		}

		switch {
		case ch == '\n':
			lx.bump()

			return Token{Kind: KindNewline, Text: "\n", Line: line, Col: col}, nil

		case ch == '#':
			tok, emitted, err := lx.scanHashWord(line, col)
			if err != nil {
				return Token{}, err
			}

			if !emitted {
				// Comment block: invisible to the parser.
				continue
			}

			return tok, nil

		case isAlpha(ch):
			return lx.scanWord(line, col), nil

		default:
			tok, emitted := lx.scanText(line, col)
			if !emitted {
				// Blank run: produces no token.
				continue
			}

			return tok, nil
		}
	}
}

// pairWord maps the first word of a two-word hashtag form to the second
// word required to complete it.
var pairWord = map[string]string{
	"I":     "HAZ",
	"IT":    "IZ",
	"LEMME": "SEE",
}

// scanHashWord reads a hashtag word starting at the '#' under the cursor.
// The returned bool is false when the word opened a comment block, which
// consumes zero tokens. Reported error positions are the '#' itself.
func (lx *Lexer) scanHashWord(line, col int) (Token, bool, error) {
	lx.bump() // '#'

	word := strings.ToUpper(lx.scanAlpha())

	// Two-word forms use a one-shot greedy lookahead: if the next character
	// is a single space and the following word completes the pair, merge.
	// On a mismatch the consumed space and word are NOT un-consumed.
	if second, ok := pairWord[word]; ok {
		if ch, have := lx.peek(); have && ch == ' ' {
			lx.bump()

			if strings.ToUpper(lx.scanAlpha()) == second {
				word = word + " " + second
			}
		}
	}

	if !isHashWord(word) {
		return Token{}, false, &LexicalError{
			Line: line,
			Col:  col,
			Msg:  fmt.Sprintf("unrecognized hashtag word '#%s'", word),
			Hint: suggestHashWord(word),
		}
	}

	if word == "OBTW" {
		err := lx.skipComment(line, col)
		if err != nil {
			return Token{}, false, err
		}

		return Token{}, false, nil
	}

	return Token{Kind: KindHashWord, Text: "#" + word, Line: line, Col: col}, true, nil
}

// skipComment consumes input until a '#'-prefixed word spelling TLDR is
// read. Any other '#'-prefixed text inside the block is ordinary comment
// content. line and col locate the opening '#OBTW' for error reporting.
func (lx *Lexer) skipComment(line, col int) error {
	for {
		ch, ok := lx.peek()
		if !ok {
			return &LexicalError{
				Line: line,
				Col:  col,
				Msg:  "unclosed comment block - missing #TLDR",
			}
		}

		if ch != '#' {
			lx.bump()

			continue
		}

		lx.bump() // '#'

		if strings.ToUpper(lx.scanAlpha()) == "TLDR" {
			return nil
		}
	}
}

// scanWord reads a bare alphanumeric word: a keyword if the uppercased text
// is in the keyword set, an identifier preserving original case otherwise.
func (lx *Lexer) scanWord(line, col int) Token {
	var sb strings.Builder

	for {
		ch, ok := lx.peek()
		if !ok || !isAlnum(ch) {
			break
		}

		lx.bump()
		sb.WriteRune(ch)
	}

	word := sb.String()

	upper := strings.ToUpper(word)
	if isKeyword(upper) {
		return Token{Kind: KindKeyword, Text: upper, Line: line, Col: col}
	}

	return Token{Kind: KindVarDef, Text: word, Line: line, Col: col}
}

// scanText reads free-form content up to the next newline or '#', neither
// of which is consumed. The returned bool is false when the trimmed content
// is empty.
func (lx *Lexer) scanText(line, col int) (Token, bool) {
	var sb strings.Builder

	for {
		ch, ok := lx.peek()
		if !ok || ch == '\n' || ch == '#' {
			break
		}

		lx.bump()
		sb.WriteRune(ch)
	}

	trimmed := strings.TrimSpace(sb.String())
	if trimmed == "" {
		return Token{}, false
	}

	return Token{Kind: KindText, Text: trimmed, Line: line, Col: col}, true
}

// scanAlpha reads a run of ASCII letters.
func (lx *Lexer) scanAlpha() string {
	var sb strings.Builder

	for {
		ch, ok := lx.peek()
		if !ok || !isAlpha(ch) {
			break
		}

		lx.bump()
		sb.WriteRune(ch)
	}

	return sb.String()
}

func isAlpha(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isAlnum(ch rune) bool {
	return isAlpha(ch) || (ch >= '0' && ch <= '9')
}
