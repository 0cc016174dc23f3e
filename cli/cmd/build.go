package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/aottoma1/lolmd/lang"
	"github.com/aottoma1/lolmd/log"
)

// defaultFileMode is the permission mode for generated HTML files.
const defaultFileMode = 0o644

// Build compiles source files to HTML documents.
//
// Each source file is compiled to a sibling file with the .html extension
// unless --output or --stdout is given. Reading from stdin always writes
// to stdout.
type Build struct {
	Sources []string `arg:"" help:"Source file(s) or '-' for stdin" name:"source"`

	Output string `help:"Output file path (single source only)"          short:"o" type:"path"`
	Stdout bool   `help:"Write HTML to stdout instead of files"`
	Open   bool   `help:"Open the generated HTML in the default browser"`
}

// Run executes the build command.
func (b *Build) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if b.Output != "" && len(b.Sources) != 1 {
		return ErrManyOutputs.With(slog.Int("sources", len(b.Sources)))
	}

	for _, src := range b.Sources {
		if err := b.buildOne(ctx, src); err != nil {
			return err
		}
	}

	return nil
}

func (b *Build) buildOne(ctx context.Context, src string) error {
	if src == stdinSource {
		compiled, err := lang.CompileReader(os.Stdin)
		if err != nil {
			return err
		}

		fmt.Print(compiled.HTML)

		return nil
	}

	if !strings.EqualFold(filepath.Ext(src), ".lol") {
		return ErrSourceExt.With(slog.String("file", src))
	}

	file, err := os.Open(src)
	if err != nil {
		return ErrReadSource.With(slog.String("file", src)).Wrap(err)
	}
	defer file.Close()

	compiled, err := lang.CompileReader(bufio.NewReader(file))
	if err != nil {
		return err
	}

	if b.Stdout {
		fmt.Print(compiled.HTML)

		return nil
	}

	out := b.Output
	if out == "" {
		out = strings.TrimSuffix(src, filepath.Ext(src)) + ".html"
	}

	err = os.WriteFile(out, []byte(compiled.HTML), defaultFileMode)
	if err != nil {
		return ErrWriteOutput.With(slog.String("file", out)).Wrap(err)
	}

	log.InfoContext(ctx, "compiled",
		slog.String("source", src),
		slog.String("output", out),
	)

	if b.Open {
		if err := openBrowser(out); err != nil {
			return ErrOpenBrowser.With(slog.String("file", out)).Wrap(err)
		}
	}

	return nil
}

// openBrowser opens the given path with the platform's default handler.
func openBrowser(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", abs).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", abs).Start()
	default:
		return exec.Command("xdg-open", abs).Start()
	}
}
