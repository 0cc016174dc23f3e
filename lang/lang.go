package lang

// Tokenize drives the lexer to EOF and returns every token produced,
// including the final EOF token. It is the lexing-only validation
// operation: a nil error means the source contains no lexical errors.
func Tokenize(source string) ([]Token, error) {
	lx := NewLexer(source)

	var toks []Token

	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)

		if tok.Kind == KindEOF {
			return toks, nil
		}
	}
}

// Compile runs the full pipeline over source: parsing (which pulls the
// lexer on demand), then a single analysis walk that validates and
// generates. Any semantic error aborts before HTML is returned; all
// collected messages ride in the *SemanticError.
func Compile(source string) (string, error) {
	root, err := Parse(source)
	if err != nil {
		return "", err
	}

	res := Analyze(root)
	if len(res.Errors) > 0 {
		return "", &SemanticError{Messages: res.Errors}
	}

	return res.HTML, nil
}
