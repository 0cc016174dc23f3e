// Package lang implements the LOLCODE-markdown compiler pipeline.
//
// Compilation is four conceptual stages over strictly forward-flowing
// data: characters → tokens → tree → HTML text.
//
//   - [Lexer] classifies raw characters into tokens with 1-indexed source
//     positions. Hashtag words ('#HAI', '#I HAZ', ...) form a closed set;
//     anything else after a '#' is a lexical error. '#OBTW' ... '#TLDR'
//     comment blocks are consumed entirely inside the lexer and are
//     invisible to the parser.
//   - [Parse] builds the syntax tree by recursive descent with one token
//     of lookahead, pulling tokens on demand.
//   - [Analyze] walks the tree once with a stack of lexical scopes,
//     collecting declare-before-use violations and generating the HTML
//     document in the same traversal. [Validate] and [Generate] expose
//     the two halves independently; each runs its own walk with a fresh
//     scope stack.
//
// [Compile] ties the stages together, and [CompileCached] and
// [CompileReader] add content-hash memoization on top. All failures are
// returned as values ([*LexicalError], [*SyntaxError], [*SemanticError])
// for the caller to report; nothing in this package terminates the
// process.
package lang
