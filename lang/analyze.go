package lang

import (
	"fmt"
	"strings"
)

// Result holds the outputs of one analysis traversal.
type Result struct {
	// HTML is the generated document. It is only meaningful when Errors is
	// empty; reference sites with broken bindings render as a visible
	// placeholder rather than aborting the walk.
	HTML string

	// Errors lists every semantic error in traversal order.
	Errors []string
}

// Analyze walks the tree once with a fresh scope stack, collecting semantic
// errors and generating HTML in the same pass. Variable scoping is
// re-derived from scratch on every call; nothing is cached between
// traversals.
func Analyze(root *Node) Result {
	a := analyzer{scopes: newScopeStack()}
	html := a.walk(root)

	return Result{HTML: html, Errors: a.errs}
}

// Validate walks the tree and returns every semantic error found, in
// traversal order. An empty result means the tree is valid.
func Validate(root *Node) []string {
	return Analyze(root).Errors
}

// Generate walks the tree and returns the HTML document. It is intended to
// run only after Validate reports no errors, but it never panics on a
// broken binding: unresolved references render as "[undefined: name]".
func Generate(root *Node) string {
	return Analyze(root).HTML
}

// analyzer carries the traversal state: the scope stack and the name of the
// most recently declared variable. The grammar cannot attach a name to an
// assignment, so the binding is positional: an assignment always targets
// the declaration immediately preceding it in traversal order.
type analyzer struct {
	scopes     scopeStack
	pending    string
	hasPending bool
	errs       []string
}

func (a *analyzer) errorf(format string, args ...any) {
	a.errs = append(a.errs, fmt.Sprintf(format, args...))
}

// walk visits n and returns its HTML fragment, emitted bottom-up.
func (a *analyzer) walk(n *Node) string {
	switch n.Kind {
	case NodeProgram:
		return fmt.Sprintf("<!DOCTYPE html>\n<html>\n<head>\n"+
			"<meta charset=\"UTF-8\">\n<title>LOLCODE Markdown</title>\n"+
			"</head>\n<body>\n%s</body>\n</html>", a.walkChildren(n))

	case NodeHeadSection:
		// No scope and no wrapper tag.
		return a.walkChildren(n)

	case NodeParagrafSection:
		a.scopes.push()
		content := a.walkChildren(n)
		a.scopes.pop()

		return fmt.Sprintf("<p>\n%s</p>\n", content)

	case NodeListSection:
		a.scopes.push()
		items := a.walkChildren(n)
		a.scopes.pop()

		return fmt.Sprintf("<ul>\n%s</ul>\n", items)

	case NodeVarDecl:
		a.declare(n.Name)

		return ""

	case NodeVarAssign:
		a.assign(n)

		return ""

	case NodeVarRef:
		return a.reference(n.Name)

	case NodeTitle:
		return fmt.Sprintf("<h1>%s</h1>\n", n.Content)

	case NodeText:
		// Trailing space is the token-join separator.
		return n.Content + " "

	case NodeBold:
		return fmt.Sprintf("<b>%s</b>", a.walkChildren(n))

	case NodeItalics:
		return fmt.Sprintf("<i>%s</i>", a.walkChildren(n))

	case NodeItem:
		return fmt.Sprintf("<li>%s</li>\n", a.walkChildren(n))

	case NodeNewline:
		return "<br>\n"

	case NodeSound:
		return fmt.Sprintf("<audio controls src=%q></audio>\n", n.Content)

	case NodeVideo:
		return fmt.Sprintf("<video controls src=%q></video>\n", n.Content)

	default:
		return ""
	}
}

func (a *analyzer) walkChildren(n *Node) string {
	var sb strings.Builder

	for _, child := range n.Children {
		sb.WriteString(a.walk(child))
	}

	return sb.String()
}

// declare inserts name into the innermost scope. Redeclaring a name present
// in the same scope is an error; shadowing an ancestor scope is not. The
// declaration becomes pending either way so a following assignment still
// binds positionally.
func (a *analyzer) declare(name string) {
	cur := a.scopes.current()

	if _, ok := cur[name]; ok {
		a.errorf("Variable '%s' is already declared in this scope", name)
	} else {
		cur[name] = nil
	}

	a.pending = name
	a.hasPending = true
}

// assign binds the node's value to the pending declaration and back-fills
// the assignment node's name. An assignment with no pending declaration is
// a no-op; it cannot occur in a well-formed tree.
func (a *analyzer) assign(n *Node) {
	if !a.hasPending {
		return
	}

	n.Name = a.pending

	if !a.scopes.assign(a.pending, n.Content) {
		a.errorf("Cannot assign to undeclared variable '%s'", a.pending)
	}

	a.pending = ""
	a.hasPending = false
}

// reference resolves name against the scope stack and returns the text to
// substitute at the reference site.
func (a *analyzer) reference(name string) string {
	value, found := a.scopes.lookup(name)

	switch {
	case !found:
		a.errorf("Variable '%s' is used but never declared", name)
	case value == nil:
		a.errorf("Variable '%s' is used but never assigned a value", name)
	default:
		return *value
	}

	return fmt.Sprintf("[undefined: %s]", name)
}
