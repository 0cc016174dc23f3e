package lang

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// compileCache stores pipeline results keyed by source hash. Compilation
// is pure (identical input yields byte-identical output), so identical
// sources compile once.
var compileCache sync.Map

// Compiled pairs a parsed tree with its generated document.
type Compiled struct {
	Root *Node
	HTML string
}

// sourceKey derives the cache key for source text using xxh3.
func sourceKey(data []byte) string {
	return strconv.FormatUint(xxh3.Hash(data), 36)
}

// CompileCached compiles source, memoizing the result by content hash.
// Errors are not cached; a failing source is re-examined on every call.
func CompileCached(source string) (*Compiled, error) {
	key := sourceKey([]byte(source))

	if value, ok := compileCache.Load(key); ok {
		return value.(*Compiled), nil
	}

	root, err := Parse(source)
	if err != nil {
		return nil, err
	}

	res := Analyze(root)
	if len(res.Errors) > 0 {
		return nil, &SemanticError{Messages: res.Errors}
	}

	value, _ := compileCache.LoadOrStore(key, &Compiled{Root: root, HTML: res.HTML})

	return value.(*Compiled), nil
}

// CompileReader reads all of r through an async read-ahead buffer and
// compiles the result, with the same memoization as [CompileCached].
func CompileReader(r io.Reader) (*Compiled, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	return CompileCached(string(data))
}

// ClearCache removes all memoized results. Primarily useful in tests.
func ClearCache() {
	compileCache = sync.Map{}
}
