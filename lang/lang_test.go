package lang

import (
	"errors"
	"strings"
	"testing"
)

func TestTokenize_IncludesEOF(t *testing.T) {
	toks, err := Tokenize("#HAI\n#KTHXBYE\n")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	if len(toks) == 0 || toks[len(toks)-1].Kind != KindEOF {
		t.Errorf("tokens = %v, want trailing EOF token", toks)
	}
}

func TestTokenize_PropagatesLexicalError(t *testing.T) {
	_, err := Tokenize("#HAI\n#WAT\n#KTHXBYE\n")
	if err == nil {
		t.Fatal("expected lexical error, got nil")
	}

	var lexErr *LexicalError
	if !errors.As(err, &lexErr) {
		t.Fatalf("error type = %T, want *LexicalError", err)
	}
}

func TestCompile_EndToEnd(t *testing.T) {
	html, err := Compile("#HAI\n#MAEK PARAGRAF\nhi there\n#OIC\n#KTHXBYE\n")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if !strings.Contains(html, "<p>\nhi there </p>\n") {
		t.Errorf("HTML = %q, want paragraph content", html)
	}
}

func TestCompile_SemanticErrorAbortsOutput(t *testing.T) {
	html, err := Compile("#HAI\n#MAEK PARAGRAF\n#LEMME SEE x #MKAY\n#OIC\n#KTHXBYE\n")
	if err == nil {
		t.Fatal("expected semantic error, got nil")
	}

	if html != "" {
		t.Errorf("HTML = %q, want empty on error", html)
	}

	var semErr *SemanticError
	if !errors.As(err, &semErr) {
		t.Fatalf("error type = %T, want *SemanticError", err)
	}

	if len(semErr.Messages) != 1 {
		t.Errorf("Messages = %v, want exactly one", semErr.Messages)
	}
}

func TestCompileCached_MemoizesByContent(t *testing.T) {
	t.Cleanup(ClearCache)
	ClearCache()

	const source = "#HAI\n#MAEK PARAGRAF\ncached\n#OIC\n#KTHXBYE\n"

	first, err := CompileCached(source)
	if err != nil {
		t.Fatalf("CompileCached failed: %v", err)
	}

	second, err := CompileCached(source)
	if err != nil {
		t.Fatalf("CompileCached failed on repeat: %v", err)
	}

	if first != second {
		t.Error("repeat compile returned a different entry")
	}

	other, err := CompileCached("#HAI\n#KTHXBYE\n")
	if err != nil {
		t.Fatalf("CompileCached failed: %v", err)
	}

	if other == first {
		t.Error("different sources share a cache entry")
	}
}

func TestCompileCached_ErrorsAreNotCached(t *testing.T) {
	t.Cleanup(ClearCache)
	ClearCache()

	const source = "#HAI\n#LEMME SEE x #MKAY\n#KTHXBYE\n"

	for range 2 {
		if _, err := CompileCached(source); err == nil {
			t.Fatal("expected semantic error, got nil")
		}
	}
}

func TestCompileReader(t *testing.T) {
	t.Cleanup(ClearCache)
	ClearCache()

	const source = "#HAI\n#MAEK PARAGRAF\nfrom a reader\n#OIC\n#KTHXBYE\n"

	compiled, err := CompileReader(strings.NewReader(source))
	if err != nil {
		t.Fatalf("CompileReader failed: %v", err)
	}

	if !strings.Contains(compiled.HTML, "from a reader") {
		t.Errorf("HTML = %q, want reader content", compiled.HTML)
	}

	cached, err := CompileCached(source)
	if err != nil {
		t.Fatalf("CompileCached failed: %v", err)
	}

	if cached != compiled {
		t.Error("reader compile missed the content cache")
	}
}

func TestClearCache(t *testing.T) {
	const source = "#HAI\n#KTHXBYE\n"

	first, err := CompileCached(source)
	if err != nil {
		t.Fatalf("CompileCached failed: %v", err)
	}

	ClearCache()

	second, err := CompileCached(source)
	if err != nil {
		t.Fatalf("CompileCached failed after clear: %v", err)
	}

	if first == second {
		t.Error("cache entry survived ClearCache")
	}
}
