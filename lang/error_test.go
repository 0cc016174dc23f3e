package lang

import (
	"strings"
	"testing"
)

func TestLexicalError_Error(t *testing.T) {
	err := &LexicalError{Line: 2, Col: 3, Msg: "unrecognized hashtag word '#WAT'"}

	want := "lexical error at line 2, col 3: unrecognized hashtag word '#WAT'"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSyntaxError_Error(t *testing.T) {
	err := &SyntaxError{Line: 1, Col: 1, Msg: "expected '#HAI', found end of input"}

	want := "syntax error at line 1, col 1: expected '#HAI', found end of input"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSemanticError_Error(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		want     string
	}{
		{
			"empty",
			nil,
			"semantic error",
		},
		{
			"single",
			[]string{"Variable 'x' is used but never declared"},
			"semantic error: Variable 'x' is used but never declared",
		},
		{
			"multiple",
			[]string{"first", "second"},
			"2 semantic errors: first; second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &SemanticError{Messages: tt.messages}
			if got := err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSuggestHashWord(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"GIMEH", "#GIMMEH"},
		{"gimmeh", "#GIMMEH"},
		{"KTHX", "#KTHXBYE"},
		{"QQQQ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := suggestHashWord(tt.word); got != tt.want {
				t.Errorf("suggestHashWord(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestSnippet(t *testing.T) {
	source := "#HAI\n#GIMEH TITLE\n#KTHXBYE\n"

	got := Snippet(source, 2, 1)
	want := "  2 | #GIMEH TITLE\n      ^"

	if got != want {
		t.Errorf("Snippet = %q, want %q", got, want)
	}
}

func TestSnippet_CaretColumn(t *testing.T) {
	got := Snippet("#MAEK HED\n", 1, 7)

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("Snippet = %q, want two lines", got)
	}

	caret := strings.IndexByte(lines[1], '^')
	hed := strings.Index(lines[0], "HED")

	if caret != hed {
		t.Errorf("caret at %d, token at %d:\n%s", caret, hed, got)
	}
}

func TestSnippet_OutOfRange(t *testing.T) {
	if got := Snippet("#HAI\n", 9, 1); got != "" {
		t.Errorf("Snippet = %q, want empty for out-of-range line", got)
	}
}
