package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/aottoma1/lolmd/lang"
)

// Fmt parses a source file and dumps its syntax tree in the chosen format.
type Fmt struct {
	AST  AST  `cmd:"" default:"withargs" help:"Format as indented syntax tree (default)."`
	JSON JSON `cmd:""                    help:"Format as JSON."`
	YAML YAML `cmd:""                    help:"Format as YAML."`
}

// AST formats input as an indented syntax tree listing.
type AST struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the ast command.
func (a *AST) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	root, err := parseSource(a.Source)
	if err != nil {
		return err
	}

	return root.Print(os.Stdout)
}

// JSON formats input as a JSON document.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	root, err := parseSource(j.Source)
	if err != nil {
		return err
	}

	return lang.FormatJSON(os.Stdout, root, j.Indent)
}

// YAML formats input as a YAML document.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	root, err := parseSource(y.Source)
	if err != nil {
		return err
	}

	return lang.FormatYAML(ctx, os.Stdout, root, y.Indent)
}

// parseSource reads and parses the given source path ("-" for stdin).
func parseSource(src string) (*lang.Node, error) {
	source, err := readSource(src)
	if err != nil {
		return nil, ErrReadSource.With(slog.String("file", src)).Wrap(err)
	}

	return lang.Parse(source)
}
