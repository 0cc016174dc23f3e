package lang

import (
	"io"
	"strings"
)

// NodeKind identifies the variant of a syntax tree node.
type NodeKind int

const (
	// NodeProgram is the root: the content between #HAI and #KTHXBYE.
	NodeProgram NodeKind = iota

	// NodeHeadSection is a #MAEK HEAD ... #OIC section.
	NodeHeadSection

	// NodeParagrafSection is a #MAEK PARAGRAF ... #OIC section. It
	// introduces a lexical scope.
	NodeParagrafSection

	// NodeListSection is a #MAEK LIST ... #OIC section. It introduces a
	// lexical scope.
	NodeListSection

	// NodeVarDecl declares a variable: #I HAZ name.
	NodeVarDecl

	// NodeVarAssign assigns a value: #IT IZ value #MKAY. The grammar does
	// not carry a variable name to the assignment site; Name is back-filled
	// during analysis from the most recent declaration.
	NodeVarAssign

	// NodeVarRef reads a variable: #LEMME SEE name #MKAY.
	NodeVarRef

	// NodeTitle is a #GIMMEH TITLE ... #MKAY heading.
	NodeTitle

	// NodeText is plain text content.
	NodeText

	// NodeBold is a #GIMMEH BOLD ... #MKAY styled run.
	NodeBold

	// NodeItalics is a #GIMMEH ITALICS ... #MKAY styled run.
	NodeItalics

	// NodeItem is a #GIMMEH ITEM ... #MKAY list entry.
	NodeItem

	// NodeNewline is an explicit line break, either a #GIMMEH NEWLINE
	// style or a literal newline inside a PARAGRAF body.
	NodeNewline

	// NodeSound is a #GIMMEH SOUNDZ url #MKAY audio element.
	NodeSound

	// NodeVideo is a #GIMMEH VIDZ url #MKAY video element.
	NodeVideo
)

// String returns the node kind's name.
func (k NodeKind) String() string {
	switch k {
	case NodeProgram:
		return "Program"
	case NodeHeadSection:
		return "HeadSection"
	case NodeParagrafSection:
		return "ParagrafSection"
	case NodeListSection:
		return "ListSection"
	case NodeVarDecl:
		return "VariableDeclaration"
	case NodeVarAssign:
		return "VariableAssignment"
	case NodeVarRef:
		return "VariableReference"
	case NodeTitle:
		return "Title"
	case NodeText:
		return "Text"
	case NodeBold:
		return "Bold"
	case NodeItalics:
		return "Italics"
	case NodeItem:
		return "Item"
	case NodeNewline:
		return "Newline"
	case NodeSound:
		return "Sound"
	case NodeVideo:
		return "Video"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so node kinds render as
// names in JSON and YAML dumps.
func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Node is a syntax tree node. Each node owns its children; the tree is
// built once by the parser and is read-only afterward, except that the
// analyzer back-fills Name on assignment nodes.
type Node struct {
	Kind NodeKind `json:"kind"`

	// Name is the variable name for declaration and reference nodes, and
	// is back-filled on assignment nodes during analysis.
	Name string `json:"name,omitempty"`

	// Content holds text and title content, assignment values, and media
	// URLs, depending on Kind.
	Content string `json:"content,omitempty"`

	Children []*Node `json:"children,omitempty"`
}

// Print writes an indented listing of the tree to w.
func (n *Node) Print(w io.Writer) error {
	return n.printIndent(w, 0)
}

func (n *Node) printIndent(w io.Writer, indent int) error {
	var sb strings.Builder

	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString(n.Kind.String())

	if n.Name != "" {
		sb.WriteString(": ")
		sb.WriteString(n.Name)
	}

	if n.Content != "" {
		sb.WriteString(": ")
		sb.WriteString(n.Content)
	}

	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return err
	}

	for _, child := range n.Children {
		err := child.printIndent(w, indent+1)
		if err != nil {
			return err
		}
	}

	return nil
}

// toMap converts the node to a generic map for YAML output.
func (n *Node) toMap() map[string]any {
	m := map[string]any{"kind": n.Kind.String()}

	if n.Name != "" {
		m["name"] = n.Name
	}

	if n.Content != "" {
		m["content"] = n.Content
	}

	if len(n.Children) > 0 {
		children := make([]any, len(n.Children))
		for i, child := range n.Children {
			children[i] = child.toMap()
		}

		m["children"] = children
	}

	return m
}
