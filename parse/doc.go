// Package parse builds span-preserving document trees from structured
// text.
//
// # Usage
//
//	tree := parse.New()
//	if err := tree.Parse(data); err != nil {
//	    return err // discard the tree on error
//	}
//	for _, doc := range tree.Docs() {
//	    fmt.Println(ast.Render(doc, tree))
//	}
//
// Parsing is a single synchronous pass: the whole input is tokenized
// eagerly, a line/column index is derived over the token buffer, and a
// recursive-descent parser reconstructs the indentation-sensitive block
// grammar and the bracketed flow grammar from it.  Every node keeps an
// inclusive token-index span, so the exact source text of any node is
// recoverable through (*Tree).GetRaw.
//
// Scalar content is always preserved as text; nothing is coerced to
// numbers, booleans or dates.
//
// # Related Packages
//
//   - github.com/sjinzh/zig-yaml/token - tokenization
//   - github.com/sjinzh/zig-yaml/ast - document tree and rendering
package parse
