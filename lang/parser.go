package lang

import (
	"fmt"
	"strings"
)

// Parser builds a syntax tree from the token stream with one token of
// lookahead. Any grammar violation aborts the parse with a *SyntaxError
// positioned at the offending lookahead token; no partial tree is returned.
type Parser struct {
	lx  *Lexer
	tok Token
}

// Parse tokenizes and parses source, returning the root Program node.
func Parse(source string) (*Node, error) {
	p := &Parser{lx: NewLexer(source)}

	err := p.advance()
	if err != nil {
		return nil, err
	}

	return p.program()
}

// advance pulls the next token into the lookahead slot.
func (p *Parser) advance() error {
	tok, err := p.lx.Next()
	if err != nil {
		return err
	}

	p.tok = tok

	return nil
}

func (p *Parser) syntaxErrorf(format string, args ...any) error {
	return &SyntaxError{
		Line: p.tok.Line,
		Col:  p.tok.Col,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// isHash reports whether the lookahead is the given hashtag word.
func (p *Parser) isHash(text string) bool {
	return p.tok.Kind == KindHashWord && p.tok.Text == text
}

// matchHashWord consumes the expected hashtag word or fails the parse.
func (p *Parser) matchHashWord(expected string) error {
	if p.isHash(expected) {
		return p.advance()
	}

	return p.syntaxErrorf("expected '%s', found %s", expected, p.tok)
}

// matchKeyword consumes the expected bare keyword or fails the parse.
func (p *Parser) matchKeyword(expected string) error {
	if p.tok.Kind == KindKeyword && p.tok.Text == expected {
		return p.advance()
	}

	return p.syntaxErrorf("expected keyword '%s', found %s", expected, p.tok)
}

// skipNewlines consumes any run of newline tokens.
func (p *Parser) skipNewlines() error {
	for p.tok.Kind == KindNewline {
		err := p.advance()
		if err != nil {
			return err
		}
	}

	return nil
}

// program := #HAI body #KTHXBYE
//
// After #KTHXBYE and any trailing blank lines the token stream must be
// exhausted.
func (p *Parser) program() (*Node, error) {
	err := p.matchHashWord("#HAI")
	if err != nil {
		return nil, err
	}

	if err := p.skipNewlines(); err != nil {
		return nil, err
	}

	children, err := p.body()
	if err != nil {
		return nil, err
	}

	if err := p.skipNewlines(); err != nil {
		return nil, err
	}

	if err := p.matchHashWord("#KTHXBYE"); err != nil {
		return nil, err
	}

	if err := p.skipNewlines(); err != nil {
		return nil, err
	}

	if p.tok.Kind != KindEOF {
		return nil, p.syntaxErrorf("unexpected tokens after #KTHXBYE")
	}

	return &Node{Kind: NodeProgram, Children: children}, nil
}

// body := { section | var_decl [var_assign] | var_ref | styled_text | text }*
//
// The loop is tolerant: tokens that start no recognized construct are
// absorbed as plain text (identifiers included) or skipped outright, so the
// real problem surfaces at the caller's #KTHXBYE match.
func (p *Parser) body() ([]*Node, error) {
	var nodes []*Node

	for {
		err := p.skipNewlines()
		if err != nil {
			return nil, err
		}

		if p.tok.Kind == KindHashWord {
			switch p.tok.Text {
			case "#KTHXBYE":
				return nodes, nil

			case "#MAEK":
				n, err := p.section()
				if err != nil {
					return nil, err
				}

				nodes = append(nodes, n)

				continue

			case "#I HAZ":
				n, err := p.variableDeclaration()
				if err != nil {
					return nil, err
				}

				nodes = append(nodes, n)

				if err := p.skipNewlines(); err != nil {
					return nil, err
				}

				if p.isHash("#IT IZ") {
					n, err := p.variableAssignment()
					if err != nil {
						return nil, err
					}

					nodes = append(nodes, n)
				}

				continue

			case "#LEMME SEE":
				n, err := p.variableReference()
				if err != nil {
					return nil, err
				}

				nodes = append(nodes, n)

				continue

			case "#GIMMEH":
				n, err := p.styledText()
				if err != nil {
					return nil, err
				}

				nodes = append(nodes, n)

				continue
			}
		}

		if p.tok.Kind == KindEOF {
			return nodes, nil
		}

		switch p.tok.Kind {
		case KindText, KindVarDef:
			nodes = append(nodes, &Node{Kind: NodeText, Content: p.tok.Text})

			if err := p.advance(); err != nil {
				return nil, err
			}

		default:
			// Stray token at top level: consumed without effect.
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
}

// section := #MAEK (HEAD head_body | PARAGRAF para_body | LIST list_body) #OIC
func (p *Parser) section() (*Node, error) {
	err := p.matchHashWord("#MAEK")
	if err != nil {
		return nil, err
	}

	if err := p.skipNewlines(); err != nil {
		return nil, err
	}

	if p.tok.Kind != KindKeyword {
		return nil, p.syntaxErrorf("expected section type after #MAEK, found %s", p.tok)
	}

	switch p.tok.Text {
	case "HEAD":
		return p.headSection()
	case "PARAGRAF":
		return p.paragrafSection()
	case "LIST":
		return p.listSection()
	default:
		return nil, p.syntaxErrorf("unknown section type '%s'", p.tok.Text)
	}
}

// head_body := { #GIMMEH TITLE text_run #MKAY }*
func (p *Parser) headSection() (*Node, error) {
	err := p.matchKeyword("HEAD")
	if err != nil {
		return nil, err
	}

	if err := p.skipNewlines(); err != nil {
		return nil, err
	}

	var children []*Node

	for {
		err := p.skipNewlines()
		if err != nil {
			return nil, err
		}

		if p.isHash("#OIC") {
			break
		}

		if p.isHash("#GIMMEH") {
			n, err := p.headContent()
			if err != nil {
				return nil, err
			}

			children = append(children, n)

			continue
		}

		// Anything else ends the loop; the #OIC match reports it.
		break
	}

	if err := p.matchHashWord("#OIC"); err != nil {
		return nil, err
	}

	return &Node{Kind: NodeHeadSection, Children: children}, nil
}

// head_content := #GIMMEH TITLE text_run #MKAY
//
// Text and identifier tokens are joined with single spaces; newlines inside
// the title are skipped.
func (p *Parser) headContent() (*Node, error) {
	err := p.matchHashWord("#GIMMEH")
	if err != nil {
		return nil, err
	}

	if err := p.matchKeyword("TITLE"); err != nil {
		return nil, err
	}

	var parts []string

	for !p.isHash("#MKAY") {
		switch p.tok.Kind {
		case KindText, KindVarDef:
			parts = append(parts, p.tok.Text)
		case KindNewline:
			// Newlines inside a title are not content.
		default:
			return nil, p.syntaxErrorf("unexpected token in TITLE: %s", p.tok)
		}

		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if err := p.matchHashWord("#MKAY"); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(strings.Join(parts, " "))

	return &Node{Kind: NodeTitle, Content: content}, nil
}

// para_body := { var_decl | var_assign | var_ref | styled_text | text | newline }*
func (p *Parser) paragrafSection() (*Node, error) {
	err := p.matchKeyword("PARAGRAF")
	if err != nil {
		return nil, err
	}

	if err := p.skipNewlines(); err != nil {
		return nil, err
	}

	var children []*Node

	for !p.isHash("#OIC") {
		n, err := p.paragrafContent()
		if err != nil {
			return nil, err
		}

		children = append(children, n)

		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
	}

	if err := p.matchHashWord("#OIC"); err != nil {
		return nil, err
	}

	return &Node{Kind: NodeParagrafSection, Children: children}, nil
}

func (p *Parser) paragrafContent() (*Node, error) {
	switch p.tok.Kind {
	case KindHashWord:
		switch p.tok.Text {
		case "#I HAZ":
			return p.variableDeclaration()
		case "#IT IZ":
			return p.variableAssignment()
		case "#LEMME SEE":
			return p.variableReference()
		case "#GIMMEH":
			return p.styledText()
		case "#MAEK":
			// Sections nest inside PARAGRAF bodies.
			return p.section()
		default:
			return nil, p.syntaxErrorf("unexpected hashword in paragraf: %s", p.tok.Text)
		}

	case KindText, KindVarDef:
		n := &Node{Kind: NodeText, Content: p.tok.Text}

		err := p.advance()
		if err != nil {
			return nil, err
		}

		return n, nil

	case KindNewline:
		err := p.advance()
		if err != nil {
			return nil, err
		}

		return &Node{Kind: NodeNewline}, nil

	default:
		return nil, p.syntaxErrorf("unexpected token in paragraf content: %s", p.tok)
	}
}

// var_decl := #I HAZ identifier
func (p *Parser) variableDeclaration() (*Node, error) {
	err := p.matchHashWord("#I HAZ")
	if err != nil {
		return nil, err
	}

	if p.tok.Kind != KindVarDef {
		return nil, p.syntaxErrorf("expected variable name after #I HAZ, found %s", p.tok)
	}

	n := &Node{Kind: NodeVarDecl, Name: p.tok.Text}

	if err := p.advance(); err != nil {
		return nil, err
	}

	return n, nil
}

// var_assign := #IT IZ value_run #MKAY
//
// The assignment carries no variable name: the grammar binds it to the most
// recent declaration, which the analyzer resolves positionally.
func (p *Parser) variableAssignment() (*Node, error) {
	err := p.matchHashWord("#IT IZ")
	if err != nil {
		return nil, err
	}

	var value strings.Builder

	for !p.isHash("#MKAY") {
		if p.tok.Kind != KindText && p.tok.Kind != KindVarDef {
			break
		}

		value.WriteString(p.tok.Text)

		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if err := p.matchHashWord("#MKAY"); err != nil {
		return nil, err
	}

	return &Node{Kind: NodeVarAssign, Content: strings.TrimSpace(value.String())}, nil
}

// var_ref := #LEMME SEE identifier #MKAY
func (p *Parser) variableReference() (*Node, error) {
	err := p.matchHashWord("#LEMME SEE")
	if err != nil {
		return nil, err
	}

	if p.tok.Kind != KindVarDef {
		return nil, p.syntaxErrorf("expected variable name after #LEMME SEE, found %s", p.tok)
	}

	n := &Node{Kind: NodeVarRef, Name: p.tok.Text}

	if err := p.advance(); err != nil {
		return nil, err
	}

	if err := p.matchHashWord("#MKAY"); err != nil {
		return nil, err
	}

	return n, nil
}

// styled_text := #GIMMEH (NEWLINE
//   | (SOUNDZ|VIDZ) url_run #MKAY
//   | (BOLD|ITALICS) inline_run #MKAY)
func (p *Parser) styledText() (*Node, error) {
	err := p.matchHashWord("#GIMMEH")
	if err != nil {
		return nil, err
	}

	if p.tok.Kind != KindKeyword {
		return nil, p.syntaxErrorf("expected style keyword after #GIMMEH, found %s", p.tok)
	}

	style := p.tok.Text

	if err := p.advance(); err != nil {
		return nil, err
	}

	// NEWLINE takes no content and, unlike every other style, no #MKAY.
	if style == "NEWLINE" {
		return &Node{Kind: NodeNewline}, nil
	}

	if style == "SOUNDZ" || style == "VIDZ" {
		return p.mediaContent(style)
	}

	var children []*Node

loop:
	for !p.isHash("#MKAY") {
		switch {
		case p.isHash("#LEMME SEE"):
			n, err := p.variableReference()
			if err != nil {
				return nil, err
			}

			children = append(children, n)

		case p.tok.Kind == KindText || p.tok.Kind == KindVarDef:
			children = append(children, &Node{Kind: NodeText, Content: p.tok.Text})

			if err := p.advance(); err != nil {
				return nil, err
			}

		default:
			break loop
		}
	}

	if err := p.matchHashWord("#MKAY"); err != nil {
		return nil, err
	}

	switch style {
	case "BOLD":
		return &Node{Kind: NodeBold, Children: children}, nil
	case "ITALICS":
		return &Node{Kind: NodeItalics, Children: children}, nil
	default:
		return &Node{Kind: NodeText, Content: style + " text"}, nil
	}
}

// mediaContent accumulates url_run tokens into a single URL string.
// Newlines inside the run are skipped, not included.
func (p *Parser) mediaContent(style string) (*Node, error) {
	var url strings.Builder

loop:
	for !p.isHash("#MKAY") {
		switch p.tok.Kind {
		case KindText, KindVarDef:
			url.WriteString(p.tok.Text)

			if err := p.advance(); err != nil {
				return nil, err
			}

		case KindNewline:
			if err := p.advance(); err != nil {
				return nil, err
			}

		default:
			break loop
		}
	}

	err := p.matchHashWord("#MKAY")
	if err != nil {
		return nil, err
	}

	kind := NodeSound
	if style == "VIDZ" {
		kind = NodeVideo
	}

	return &Node{Kind: kind, Content: strings.TrimSpace(url.String())}, nil
}

// list_body := { #GIMMEH ITEM item_content #MKAY }*
func (p *Parser) listSection() (*Node, error) {
	err := p.matchKeyword("LIST")
	if err != nil {
		return nil, err
	}

	if err := p.skipNewlines(); err != nil {
		return nil, err
	}

	var items []*Node

	for !p.isHash("#OIC") {
		n, err := p.listItem()
		if err != nil {
			return nil, err
		}

		items = append(items, n)

		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
	}

	if err := p.matchHashWord("#OIC"); err != nil {
		return nil, err
	}

	return &Node{Kind: NodeListSection, Children: items}, nil
}

// item_content := { var_ref | text | identifier }*
func (p *Parser) listItem() (*Node, error) {
	err := p.matchHashWord("#GIMMEH")
	if err != nil {
		return nil, err
	}

	if err := p.matchKeyword("ITEM"); err != nil {
		return nil, err
	}

	var children []*Node

loop:
	for !p.isHash("#MKAY") {
		switch {
		case p.isHash("#LEMME SEE"):
			n, err := p.variableReference()
			if err != nil {
				return nil, err
			}

			children = append(children, n)

		case p.tok.Kind == KindText || p.tok.Kind == KindVarDef:
			children = append(children, &Node{Kind: NodeText, Content: p.tok.Text})

			if err := p.advance(); err != nil {
				return nil, err
			}

		default:
			break loop
		}
	}

	if err := p.matchHashWord("#MKAY"); err != nil {
		return nil, err
	}

	return &Node{Kind: NodeItem, Children: children}, nil
}
