package lang

import "fmt"

// Kind classifies a token produced by the lexer.
type Kind int

const (
	// KindHashWord is a reserved word introduced by '#', such as "#HAI" or
	// the two-word forms "#I HAZ", "#IT IZ", and "#LEMME SEE". The token
	// text includes the leading '#' with any internal run of spaces
	// normalized to a single space.
	KindHashWord Kind = iota

	// KindKeyword is a bare reserved word naming a section or style kind,
	// such as "HEAD" or "BOLD". The token text is uppercased.
	KindKeyword

	// KindText is trimmed free-form content.
	KindText

	// KindVarDef is an identifier: any alphanumeric word that is not a
	// keyword. The token text preserves the original case.
	KindVarDef

	// KindNewline is a single newline in the input. Newlines are never
	// skipped by the lexer; each one yields exactly one token.
	KindNewline

	// KindEOF marks the end of input. The lexer yields it indefinitely
	// once the input is exhausted.
	KindEOF
)

// String returns a human-readable name for the token kind.
func (k Kind) String() string {
	switch k {
	case KindHashWord:
		return "HashWord"
	case KindKeyword:
		return "Keyword"
	case KindText:
		return "Text"
	case KindVarDef:
		return "VarDef"
	case KindNewline:
		return "Newline"
	case KindEOF:
		return "Eof"
	default:
		return "Unknown"
	}
}

// Token is a single lexeme with its source position. Line and Col are
// 1-indexed and reflect the position of the token's first character.
// Tokens are immutable once produced.
type Token struct {
	Kind Kind
	Text string
	Line int
	Col  int
}

// String formats the token for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case KindNewline:
		return "newline"
	case KindEOF:
		return "end of input"
	default:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	}
}

// hashWords is the closed set of words that may follow a '#'. The lexer
// rejects anything else; unrecognized hashtag words never reach the parser.
var hashWords = map[string]struct{}{
	"HAI":       {},
	"KTHXBYE":   {},
	"OBTW":      {},
	"TLDR":      {},
	"MAEK":      {},
	"OIC":       {},
	"GIMMEH":    {},
	"MKAY":      {},
	"I HAZ":     {},
	"IT IZ":     {},
	"LEMME SEE": {},
}

// keywords is the closed set of bare reserved words.
var keywords = map[string]struct{}{
	"HEAD":     {},
	"TITLE":    {},
	"PARAGRAF": {},
	"BOLD":     {},
	"ITALICS":  {},
	"LIST":     {},
	"ITEM":     {},
	"NEWLINE":  {},
	"SOUNDZ":   {},
	"VIDZ":     {},
}

// isHashWord reports whether upper is a member of the hashtag-word set.
func isHashWord(upper string) bool {
	_, ok := hashWords[upper]

	return ok
}

// isKeyword reports whether upper is a member of the keyword set.
func isKeyword(upper string) bool {
	_, ok := keywords[upper]

	return ok
}

// HashWords returns the hashtag-word set as a sorted slice, each with its
// leading '#'. It is used by completion and suggestion features.
func HashWords() []string {
	return []string{
		"#GIMMEH", "#HAI", "#I HAZ", "#IT IZ", "#KTHXBYE",
		"#LEMME SEE", "#MAEK", "#MKAY", "#OBTW", "#OIC", "#TLDR",
	}
}

// Keywords returns the bare keyword set as a sorted slice.
func Keywords() []string {
	return []string{
		"BOLD", "HEAD", "ITALICS", "ITEM", "LIST",
		"NEWLINE", "PARAGRAF", "SOUNDZ", "TITLE", "VIDZ",
	}
}
