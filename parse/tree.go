package parse

import (
	"github.com/sjinzh/zig-yaml/ast"
	"github.com/sjinzh/zig-yaml/debug"
	"github.com/sjinzh/zig-yaml/token"
)

// Tree owns one parse: the source, the token buffer, the derived line/col
// index, and the top-level documents.  The buffers are created once during
// Parse and are immutable afterwards; a Tree is not safe for concurrent
// Parse calls.
type Tree struct {
	src      []byte
	toks     []token.Token
	lineCols []LineCol
	docs     []*ast.Node
}

func New() *Tree {
	return &Tree{}
}

// Docs returns the parsed top-level documents in source order.
func (t *Tree) Docs() []*ast.Node {
	return t.docs
}

// Tokens returns the token buffer, terminated by a TEof token.
func (t *Tree) Tokens() []token.Token {
	return t.toks
}

// LineCol returns the line/column of the token at index i.
func (t *Tree) LineCol(i int) LineCol {
	return t.lineCols[i]
}

// GetRaw returns the exact source substring spanned by tokens start..end
// inclusive.
func (t *Tree) GetRaw(start, end int) string {
	return string(t.src[t.toks[start].Start:t.toks[end].End])
}

// Parse tokenizes src, builds the position index, and parses the document
// sequence.  On error the Tree must be discarded: the token buffer may be
// populated but the document list is not usable.
func (t *Tree) Parse(src []byte, opts ...Option) error {
	o := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	t.prepare(src)
	if debug.Tokens() {
		for i := range t.toks {
			lc := t.lineCols[i]
			debug.Logf("token %d: %s line=%d col=%d", i, t.toks[i].Info(), lc.Line, lc.Col)
		}
	}
	p := &parser{
		tree: t,
		cur:  &cursor{toks: t.toks},
		opts: o,
	}
	for {
		p.eatCommentsAndSpace()
		tok := p.cur.peek()
		if tok == nil || tok.Type == token.TEof {
			break
		}
		doc, err := p.document()
		if err != nil {
			t.docs = nil
			return err
		}
		t.docs = append(t.docs, doc)
	}
	if debug.Parse() {
		debug.Logf("parsed %d document(s) from %d token(s)", len(t.docs), len(t.toks))
	}
	return nil
}

// prepare runs the token source to completion and builds the position
// index; split from Parse so tests can drive parser routines directly.
func (t *Tree) prepare(src []byte) {
	t.src = src
	t.toks = token.Tokenize(src)
	t.lineCols = lineCols(t.toks)
	t.docs = nil
}
