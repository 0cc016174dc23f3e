package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aottoma1/lolmd/lang"
	"github.com/aottoma1/lolmd/log"
)

// Check validates source files without emitting HTML.
//
// All three pipeline stages run: tokenization, parsing, and scope
// validation. The first lexical or syntax error stops the check for that
// file; semantic errors are collected and reported together.
type Check struct {
	Sources []string `arg:"" help:"Source file(s) or '-' for stdin" name:"source"`

	Tokens bool `help:"Print the token stream" short:"t"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	for _, src := range c.Sources {
		if err := c.checkOne(ctx, src); err != nil {
			return err
		}
	}

	return nil
}

func (c *Check) checkOne(ctx context.Context, src string) error {
	source, err := readSource(src)
	if err != nil {
		return ErrReadSource.With(slog.String("file", src)).Wrap(err)
	}

	tokens, err := lang.Tokenize(source)
	if err != nil {
		reportPosition(source, err)

		return err
	}

	if c.Tokens {
		for _, tok := range tokens {
			fmt.Printf("%4d:%-3d %s\n", tok.Line, tok.Col, tok)
		}
	}

	root, err := lang.Parse(source)
	if err != nil {
		reportPosition(source, err)

		return err
	}

	if msgs := lang.Validate(root); len(msgs) > 0 {
		return &lang.SemanticError{Messages: msgs}
	}

	log.InfoContext(ctx, "valid", slog.String("source", src))

	return nil
}

// reportPosition prints a caret-annotated source snippet for errors that
// carry a line and column.
func reportPosition(source string, err error) {
	var (
		lexErr *lang.LexicalError
		synErr *lang.SyntaxError
	)

	switch {
	case errors.As(err, &lexErr):
		fmt.Fprintln(os.Stderr, lang.Snippet(source, lexErr.Line, lexErr.Col))
	case errors.As(err, &synErr):
		fmt.Fprintln(os.Stderr, lang.Snippet(source, synErr.Line, synErr.Col))
	}
}
