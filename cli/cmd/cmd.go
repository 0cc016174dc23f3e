package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

// KongFrom retrieves the [kong.Context] stored in ctx by [WithContext].
// Returns nil if no context was stored.
func KongFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// readSource returns the entire content of the file at path, or of stdin
// when path is "-".
func readSource(path string) (string, error) {
	if path == stdinSource {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
