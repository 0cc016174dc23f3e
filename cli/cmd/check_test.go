package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aottoma1/lolmd/lang"
)

func TestCheck_ValidSource(t *testing.T) {
	src := writeSource(t, "page.lol", validSource)

	c := &Check{Sources: []string{src}}
	if err := c.Run(context.Background()); err != nil {
		t.Errorf("Run failed: %v", err)
	}
}

func TestCheck_LexicalError(t *testing.T) {
	src := writeSource(t, "page.lol", "#HAI\n#WAT\n#KTHXBYE\n")

	c := &Check{Sources: []string{src}}

	err := c.Run(context.Background())
	if err == nil {
		t.Fatal("expected lexical error, got nil")
	}

	var lexErr *lang.LexicalError
	if !errors.As(err, &lexErr) {
		t.Errorf("error type = %T, want *LexicalError", err)
	}
}

func TestCheck_SyntaxError(t *testing.T) {
	src := writeSource(t, "page.lol", "#HAI\n")

	c := &Check{Sources: []string{src}}

	err := c.Run(context.Background())
	if err == nil {
		t.Fatal("expected syntax error, got nil")
	}

	var synErr *lang.SyntaxError
	if !errors.As(err, &synErr) {
		t.Errorf("error type = %T, want *SyntaxError", err)
	}
}

func TestCheck_CollectsAllSemanticErrors(t *testing.T) {
	src := writeSource(t, "page.lol",
		"#HAI\n#I HAZ x\n#I HAZ x\n"+
			"#MAEK PARAGRAF\n#LEMME SEE ghost #MKAY\n#OIC\n#KTHXBYE\n")

	c := &Check{Sources: []string{src}}

	err := c.Run(context.Background())
	if err == nil {
		t.Fatal("expected semantic errors, got nil")
	}

	var semErr *lang.SemanticError
	if !errors.As(err, &semErr) {
		t.Fatalf("error type = %T, want *SemanticError", err)
	}

	if len(semErr.Messages) != 2 {
		t.Errorf("Messages = %v, want both errors collected", semErr.Messages)
	}
}

func TestError_Formats(t *testing.T) {
	base := NewError("read source file")

	if got := base.Error(); got != "read source file" {
		t.Errorf("Error() = %q, want bare message", got)
	}

	wrapped := base.Wrap(errors.New("permission denied"))
	if got := wrapped.Error(); got != "read source file: permission denied" {
		t.Errorf("Error() = %q, want wrapped format", got)
	}

	if !strings.Contains(errors.Unwrap(wrapped).Error(), "permission denied") {
		t.Error("Unwrap lost the cause")
	}
}
