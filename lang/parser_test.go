package lang

import (
	"errors"
	"strings"
	"testing"
)

func parseOK(t *testing.T, source string) *Node {
	t.Helper()

	root, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	return root
}

func TestParse_MinimalProgram(t *testing.T) {
	root := parseOK(t, "#HAI\n#KTHXBYE\n")

	if root.Kind != NodeProgram {
		t.Errorf("root kind = %v, want Program", root.Kind)
	}

	if len(root.Children) != 0 {
		t.Errorf("got %d children, want 0", len(root.Children))
	}
}

func TestParse_HeadSection(t *testing.T) {
	root := parseOK(t, "#HAI\n#MAEK HEAD\n#GIMMEH TITLE My Page #MKAY\n#OIC\n#KTHXBYE\n")

	if len(root.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(root.Children))
	}

	head := root.Children[0]
	if head.Kind != NodeHeadSection {
		t.Fatalf("child kind = %v, want HeadSection", head.Kind)
	}

	if len(head.Children) != 1 || head.Children[0].Kind != NodeTitle {
		t.Fatalf("head children = %v, want one Title", head.Children)
	}

	if got := head.Children[0].Content; got != "My Page" {
		t.Errorf("title content = %q, want %q", got, "My Page")
	}
}

func TestParse_TitleSpansLines(t *testing.T) {
	root := parseOK(t, "#HAI\n#MAEK HEAD\n#GIMMEH TITLE My\nPage #MKAY\n#OIC\n#KTHXBYE\n")

	title := root.Children[0].Children[0]
	if title.Content != "My Page" {
		t.Errorf("title content = %q, want %q", title.Content, "My Page")
	}
}

func TestParse_DeclarationAndAssignment(t *testing.T) {
	root := parseOK(t, "#HAI\n#I HAZ pet\n#IT IZ 42 dogs #MKAY\n#KTHXBYE\n")

	if len(root.Children) != 2 {
		t.Fatalf("got %d children, want 2: %v", len(root.Children), root.Children)
	}

	decl := root.Children[0]
	if decl.Kind != NodeVarDecl || decl.Name != "pet" {
		t.Errorf("decl = %+v, want VariableDeclaration pet", decl)
	}

	assign := root.Children[1]
	if assign.Kind != NodeVarAssign {
		t.Fatalf("second child kind = %v, want VariableAssignment", assign.Kind)
	}

	if assign.Content != "42 dogs" {
		t.Errorf("assign content = %q, want %q", assign.Content, "42 dogs")
	}

	// The grammar carries no name on the assignment; analysis binds it.
	if assign.Name != "" {
		t.Errorf("assign name = %q, want empty before analysis", assign.Name)
	}
}

func TestParse_AssignmentConcatenatesWords(t *testing.T) {
	// Bare identifier tokens carry no surrounding whitespace, so adjacent
	// words in an assignment value run together.
	root := parseOK(t, "#HAI\n#I HAZ x\n#IT IZ hello world #MKAY\n#KTHXBYE\n")

	assign := root.Children[1]
	if assign.Content != "helloworld" {
		t.Errorf("assign content = %q, want %q", assign.Content, "helloworld")
	}
}

func TestParse_NewlineStyleTakesNoMkay(t *testing.T) {
	root := parseOK(t, "#HAI\n#MAEK PARAGRAF\nhi\n#GIMMEH NEWLINE\nbye\n#OIC\n#KTHXBYE\n")

	para := root.Children[0]
	if para.Kind != NodeParagrafSection {
		t.Fatalf("child kind = %v, want ParagrafSection", para.Kind)
	}

	kinds := make([]NodeKind, len(para.Children))
	for i, c := range para.Children {
		kinds[i] = c.Kind
	}

	want := []NodeKind{NodeText, NodeNewline, NodeText}
	if len(kinds) != len(want) {
		t.Fatalf("paragraf kinds = %v, want %v", kinds, want)
	}

	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("child %d kind = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestParse_MediaURLConcatenation(t *testing.T) {
	tests := []struct {
		name   string
		source string
		kind   NodeKind
		url    string
	}{
		{
			"sound",
			"#HAI\n#MAEK PARAGRAF\n#GIMMEH SOUNDZ http://x.com/a.mp3 #MKAY\n#OIC\n#KTHXBYE\n",
			NodeSound,
			"http://x.com/a.mp3",
		},
		{
			"video url split across lines",
			"#HAI\n#MAEK PARAGRAF\n#GIMMEH VIDZ http\n://x.com/b.mp4 #MKAY\n#OIC\n#KTHXBYE\n",
			NodeVideo,
			"http://x.com/b.mp4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := parseOK(t, tt.source)

			media := root.Children[0].Children[0]
			if media.Kind != tt.kind {
				t.Fatalf("media kind = %v, want %v", media.Kind, tt.kind)
			}

			if media.Content != tt.url {
				t.Errorf("url = %q, want %q", media.Content, tt.url)
			}
		})
	}
}

func TestParse_BoldWithNestedReference(t *testing.T) {
	root := parseOK(t,
		"#HAI\n#MAEK PARAGRAF\n#GIMMEH BOLD see #LEMME SEE pet #MKAY here #MKAY\n#OIC\n#KTHXBYE\n")

	bold := root.Children[0].Children[0]
	if bold.Kind != NodeBold {
		t.Fatalf("kind = %v, want Bold", bold.Kind)
	}

	want := []NodeKind{NodeText, NodeVarRef, NodeText}
	if len(bold.Children) != len(want) {
		t.Fatalf("bold children = %v, want kinds %v", bold.Children, want)
	}

	for i, k := range want {
		if bold.Children[i].Kind != k {
			t.Errorf("child %d kind = %v, want %v", i, bold.Children[i].Kind, k)
		}
	}

	if bold.Children[1].Name != "pet" {
		t.Errorf("reference name = %q, want %q", bold.Children[1].Name, "pet")
	}
}

func TestParse_SectionsNestInParagraf(t *testing.T) {
	root := parseOK(t,
		"#HAI\n#MAEK PARAGRAF\nouter\n#MAEK LIST\n#GIMMEH ITEM one #MKAY\n#OIC\n#OIC\n#KTHXBYE\n")

	para := root.Children[0]
	if len(para.Children) != 2 {
		t.Fatalf("paragraf children = %v, want 2", para.Children)
	}

	list := para.Children[1]
	if list.Kind != NodeListSection {
		t.Fatalf("nested kind = %v, want ListSection", list.Kind)
	}

	if len(list.Children) != 1 || list.Children[0].Kind != NodeItem {
		t.Errorf("list children = %v, want one Item", list.Children)
	}
}

func TestParse_ListSection(t *testing.T) {
	root := parseOK(t,
		"#HAI\n#MAEK LIST\n#GIMMEH ITEM one #MKAY\n#GIMMEH ITEM two #MKAY\n#OIC\n#KTHXBYE\n")

	list := root.Children[0]
	if list.Kind != NodeListSection || len(list.Children) != 2 {
		t.Fatalf("list = %+v, want ListSection with 2 items", list)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantMsg string
	}{
		{
			"missing HAI",
			"#KTHXBYE\n",
			"expected '#HAI'",
		},
		{
			"missing KTHXBYE",
			"#HAI\n",
			"expected '#KTHXBYE', found end of input",
		},
		{
			"trailing tokens",
			"#HAI\n#KTHXBYE\nextra\n",
			"unexpected tokens after #KTHXBYE",
		},
		{
			"unknown section type",
			"#HAI\n#MAEK TABLE\n#OIC\n#KTHXBYE\n",
			"expected section type after #MAEK",
		},
		{
			"missing variable name",
			"#HAI\n#I HAZ\n#KTHXBYE\n",
			"expected variable name after #I HAZ",
		},
		{
			"reference missing MKAY",
			"#HAI\n#LEMME SEE pet\n#KTHXBYE\n",
			"expected '#MKAY'",
		},
		{
			"unterminated head",
			"#HAI\n#MAEK HEAD\n#KTHXBYE\n",
			"expected '#OIC'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.source)
			if err == nil {
				t.Fatal("expected syntax error, got nil")
			}

			var synErr *SyntaxError
			if !errors.As(err, &synErr) {
				t.Fatalf("error type = %T, want *SyntaxError", err)
			}

			if !strings.Contains(synErr.Msg, tt.wantMsg) {
				t.Errorf("Msg = %q, want substring %q", synErr.Msg, tt.wantMsg)
			}
		})
	}
}

func TestParse_TopLevelTextAbsorbed(t *testing.T) {
	root := parseOK(t, "#HAI\nstray words here\n#KTHXBYE\n")

	if len(root.Children) == 0 {
		t.Fatal("expected text nodes at top level")
	}

	for _, c := range root.Children {
		if c.Kind != NodeText {
			t.Errorf("child kind = %v, want Text", c.Kind)
		}
	}
}
