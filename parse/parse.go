package parse

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sjinzh/zig-yaml/ast"
	"github.com/sjinzh/zig-yaml/debug"
	"github.com/sjinzh/zig-yaml/token"
)

type parser struct {
	tree  *Tree
	cur   *cursor
	opts  *parseOpts
	depth int
}

func (p *parser) push() error {
	p.depth++
	if p.depth > p.opts.maxDepth {
		return fmt.Errorf("%w (%d)", ErrMaxDepth, p.opts.maxDepth)
	}
	return nil
}

func (p *parser) pop() {
	p.depth--
}

// at renders the line/col of token index i for error messages.
func (p *parser) at(i int) string {
	if i >= len(p.tree.lineCols) {
		i = len(p.tree.lineCols) - 1
	}
	lc := p.tree.lineCols[i]
	return fmt.Sprintf("line=%d col=%d", lc.Line, lc.Col)
}

// document parses one logical document, optionally delimited by an
// explicit start marker with an optional "!" directive header.
func (p *parser) document() (*ast.Node, error) {
	node := &ast.Node{Type: ast.DocumentType, Start: p.cur.pos}
	explicit := false
	if idx := p.eatToken(token.TDocStart); idx >= 0 {
		explicit = true
		node.Start = idx
		if p.eatToken(token.TTagInd) >= 0 {
			dir, err := p.expectToken(token.TLiteral)
			if err != nil {
				return nil, err
			}
			node.Directive = &dir
		}
	}
	if debug.Parse() {
		debug.Logf("document at token %d explicit=%v", node.Start, explicit)
	}

	p.eatCommentsAndSpace()
	tok := p.cur.next()
	if tok == nil {
		return nil, fmt.Errorf("%w: document value", ErrUnexpectedEOF)
	}
	switch tok.Type {
	case token.TLiteral:
		if nxt := p.cur.peek(); nxt != nil && nxt.Type == token.TMapValueInd {
			return nil, fmt.Errorf("%w: mapping at document root (%s)", ErrUnhandled, p.at(p.cur.pos-1))
		}
		p.cur.seekBy(-1)
		value, err := p.leafValue()
		if err != nil {
			return nil, err
		}
		node.Value = value
	case token.TSingleQuote, token.TDoubleQuote:
		p.cur.seekBy(-1)
		value, err := p.leafValue()
		if err != nil {
			return nil, err
		}
		node.Value = value
	default:
		// other document roots are not implemented; leave the value
		// empty and let the footer check report the token
		p.cur.seekBy(-1)
	}

	p.eatCommentsAndSpace()
	ftok := p.cur.next()
	if ftok == nil {
		return nil, fmt.Errorf("%w: document footer", ErrUnexpectedEOF)
	}
	fidx := p.cur.pos - 1
	switch ftok.Type {
	case token.TDocStart:
		if !explicit {
			return nil, fmt.Errorf("%w: %s ends an implicit document (%s)", ErrUnexpectedToken, ftok.Type, p.at(fidx))
		}
		// starts the next document
		p.cur.seekBy(-1)
	case token.TDocEnd:
		if !explicit {
			return nil, fmt.Errorf("%w: %s ends an implicit document (%s)", ErrUnexpectedToken, ftok.Type, p.at(fidx))
		}
	case token.TEof:
		p.cur.seekBy(-1)
	default:
		return nil, fmt.Errorf("%w: %s in document footer (%s)", ErrUnexpectedToken, ftok.Type, p.at(fidx))
	}
	node.End = fidx - 1
	return node, nil
}

// mapping parses a block mapping whose keys all start at column col.
func (p *parser) mapping(col int) (*ast.Node, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()
	node := &ast.Node{Type: ast.MapType, Start: p.cur.pos}
	for {
		p.eatCommentsAndSpace()
		key := p.cur.peek()
		if key == nil || p.tree.lineCols[p.cur.pos].Col != col {
			// this line belongs to an enclosing or sibling construct
			break
		}
		if key.Type != token.TLiteral {
			if len(node.Entries) == 0 {
				// reached only through value recursion on a quoted token;
				// erroring here keeps empty mappings impossible and the
				// span invariant intact
				return nil, fmt.Errorf("%w: %s as mapping key (%s)", ErrUnexpectedToken, key.Type, p.at(p.cur.pos))
			}
			break
		}
		keyIdx := p.cur.pos
		p.cur.seekBy(1)
		if _, err := p.expectToken(token.TMapValueInd, token.TNewLine); err != nil {
			return nil, err
		}
		p.eatCommentsAndSpace()
		val := p.cur.peek()
		if val == nil {
			return nil, fmt.Errorf("%w: value for key %q", ErrUnexpectedEOF, p.tree.GetRaw(keyIdx, keyIdx))
		}
		var (
			child *ast.Node
			err   error
		)
		switch val.Type {
		case token.TLiteral, token.TSingleQuote, token.TDoubleQuote:
			// any scalar-looking token opens a nested mapping at its
			// column, even an inline value on the key's own line; the
			// nested call then fails on the missing value indicator or
			// on the quote token standing where a key must be
			child, err = p.mapping(p.tree.lineCols[p.cur.pos].Col)
		case token.TSeqItemInd:
			child, err = p.list(p.tree.lineCols[p.cur.pos].Col)
		case token.TFlowSeqStart:
			child, err = p.listBracketed()
		case token.TEof:
			err = fmt.Errorf("%w: value for key %q", ErrUnexpectedEOF, p.tree.GetRaw(keyIdx, keyIdx))
		default:
			err = fmt.Errorf("%w: %s as map value (%s)", ErrUnhandled, val.Type, p.at(p.cur.pos))
		}
		if err != nil {
			return nil, err
		}
		node.Entries = append(node.Entries, ast.Entry{Key: keyIdx, Value: child})
		p.eatToken(token.TNewLine)
	}
	node.End = p.cur.pos - 1
	return node, nil
}

// list parses a block list whose items all start at column col.
func (p *parser) list(col int) (*ast.Node, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()
	node := &ast.Node{Type: ast.ListType, Start: p.cur.pos}
	for {
		p.eatCommentsAndSpace()
		tok := p.cur.peek()
		if tok == nil || p.tree.lineCols[p.cur.pos].Col != col {
			break
		}
		// a line without a sequence indicator is not part of this list
		if tok.Type != token.TSeqItemInd {
			break
		}
		p.cur.seekBy(1)
		p.eatCommentsAndSpace()
		val := p.cur.peek()
		if val == nil {
			return nil, fmt.Errorf("%w: list item value", ErrUnexpectedEOF)
		}
		var (
			child *ast.Node
			err   error
		)
		switch val.Type {
		case token.TLiteral, token.TSingleQuote, token.TDoubleQuote:
			valIdx := p.cur.pos
			p.cur.seekBy(1)
			if nxt := p.cur.peek(); nxt != nil && nxt.Type == token.TMapValueInd {
				p.cur.seekBy(-1)
				child, err = p.mapping(p.tree.lineCols[valIdx].Col)
			} else {
				p.cur.seekBy(-1)
				child, err = p.leafValue()
			}
		case token.TFlowSeqStart:
			child, err = p.listBracketed()
		case token.TEof:
			err = fmt.Errorf("%w: list item value", ErrUnexpectedEOF)
		default:
			err = fmt.Errorf("%w: %s as list item (%s)", ErrUnhandled, val.Type, p.at(p.cur.pos))
		}
		if err != nil {
			return nil, err
		}
		node.Values = append(node.Values, child)
		p.eatToken(token.TNewLine)
	}
	node.End = p.cur.pos - 1
	return node, nil
}

// listBracketed parses a flow list: bracket/comma delimited and
// indentation-insensitive within the brackets.
func (p *parser) listBracketed() (*ast.Node, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()
	start, err := p.expectToken(token.TFlowSeqStart)
	if err != nil {
		return nil, err
	}
	node := &ast.Node{Type: ast.ListType, Start: start}
	for {
		p.eatCommentsAndSpace()
		tok := p.cur.next()
		if tok == nil {
			return nil, fmt.Errorf("%w: unterminated flow sequence (%s)", ErrUnexpectedEOF, p.at(start))
		}
		idx := p.cur.pos - 1
		var child *ast.Node
		switch tok.Type {
		case token.TFlowSeqStart:
			p.cur.seekBy(-1)
			child, err = p.listBracketed()
		case token.TFlowSeqEnd:
			node.End = idx
			return node, nil
		case token.TLiteral, token.TSingleQuote, token.TDoubleQuote:
			p.cur.seekBy(-1)
			child, err = p.leafValue()
		case token.TEof:
			return nil, fmt.Errorf("%w: unterminated flow sequence (%s)", ErrUnexpectedEOF, p.at(start))
		default:
			return nil, fmt.Errorf("%w: %s in flow sequence (%s)", ErrUnhandled, tok.Type, p.at(idx))
		}
		if err != nil {
			return nil, err
		}
		node.Values = append(node.Values, child)
		p.eatToken(token.TComma)
	}
}

// leafValue decodes one scalar from the current cursor position.
func (p *parser) leafValue() (*ast.Node, error) {
	tok := p.cur.next()
	if tok == nil {
		return nil, fmt.Errorf("%w: scalar expected", ErrUnexpectedEOF)
	}
	idx := p.cur.pos - 1
	switch tok.Type {
	case token.TSingleQuote, token.TDoubleQuote:
		return p.quoted(idx, tok.Type)
	case token.TLiteral:
		return p.bareScalar(idx)
	default:
		return nil, fmt.Errorf("%w: %s cannot begin a scalar (%s)", ErrUnexpectedToken, tok.Type, p.at(idx))
	}
}

// quoted decodes a quoted scalar opened at token openIdx.  Single-quoted
// escape tokens contribute their second source byte verbatim; double-
// quoted escapes are interpreted (n, t, ") with all other payload bytes
// decoding to nothing.  A line break before the closing quote is an error.
func (p *parser) quoted(openIdx int, quote token.TokenType) (*ast.Node, error) {
	node := &ast.Node{Type: ast.ScalarType, Start: openIdx + 1}
	var b strings.Builder
	for {
		tok := p.cur.next()
		if tok == nil {
			return nil, fmt.Errorf("%w: unterminated quoted scalar (%s)", ErrUnexpectedEOF, p.at(openIdx))
		}
		idx := p.cur.pos - 1
		switch tok.Type {
		case quote:
			node.End = idx - 1
			if node.End < node.Start {
				// empty content: span the quote pair itself so that
				// Start <= End holds
				node.Start, node.End = openIdx, idx
			}
			node.String = b.String()
			return node, nil
		case token.TNewLine:
			return nil, fmt.Errorf("%w: line break before closing quote (%s)", ErrUnexpectedToken, p.at(idx))
		case token.TEscapeSeq:
			raw := p.tree.GetRaw(idx, idx)
			if len(raw) < 2 {
				break
			}
			if quote == token.TSingleQuote {
				b.WriteByte(raw[1])
				break
			}
			switch raw[1] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"':
				b.WriteByte('"')
			}
			// other escape payloads decode to nothing
		default:
			b.WriteString(p.tree.GetRaw(idx, idx))
		}
	}
}

// bareScalar accumulates an unquoted scalar starting at token firstIdx.
// Spaces are internal separators only when another word follows; a
// structural token ends the scalar at the preceding token.  The decoded
// value is the raw span with trailing whitespace trimmed; bare scalars
// never span lines.
func (p *parser) bareScalar(firstIdx int) (*ast.Node, error) {
	node := &ast.Node{Type: ast.ScalarType, Start: firstIdx}
	end := firstIdx
loop:
	for {
		tok := p.cur.next()
		if tok == nil {
			break
		}
		switch tok.Type {
		case token.TLiteral:
			end = p.cur.pos - 1
		case token.TSpace:
			j := p.cur.pos
			for j < len(p.cur.toks) && (p.cur.toks[j].Type == token.TSpace || p.cur.toks[j].Type == token.TComment) {
				j++
			}
			if j >= len(p.cur.toks) || p.cur.toks[j].Type != token.TLiteral {
				break loop
			}
		default:
			p.cur.seekBy(-1)
			break loop
		}
	}
	node.End = end
	node.String = p.tree.GetRaw(node.Start, end)
	return node, nil
}

// eatCommentsAndSpace advances past comment, space and newline tokens; a
// kind listed in exclusions stops the skip before consuming it, which
// lets callers distinguish "still on this line" from "moved on".
func (p *parser) eatCommentsAndSpace(exclusions ...token.TokenType) {
	for {
		tok := p.cur.peek()
		if tok == nil {
			return
		}
		switch tok.Type {
		case token.TComment, token.TSpace, token.TNewLine:
			if slices.Contains(exclusions, tok.Type) {
				return
			}
			p.cur.seekBy(1)
		default:
			return
		}
	}
}

// eatToken skips comments and space (honoring exclusions, plus kind
// itself so a sought newline is not skipped over), then consumes the next
// token when it matches kind, returning its index; -1 otherwise.
func (p *parser) eatToken(kind token.TokenType, exclusions ...token.TokenType) int {
	p.eatCommentsAndSpace(append(exclusions, kind)...)
	tok := p.cur.peek()
	if tok == nil || tok.Type != kind {
		return -1
	}
	idx := p.cur.pos
	p.cur.seekBy(1)
	return idx
}

// expectToken is eatToken with absence turned into an error.
func (p *parser) expectToken(kind token.TokenType, exclusions ...token.TokenType) (int, error) {
	if idx := p.eatToken(kind, exclusions...); idx >= 0 {
		return idx, nil
	}
	tok := p.cur.peek()
	if tok == nil || tok.Type == token.TEof {
		return 0, fmt.Errorf("%w: expected %s", ErrUnexpectedEOF, kind)
	}
	return 0, fmt.Errorf("%w: expected %s, found %s (%s)", ErrUnexpectedToken, kind, tok.Type, p.at(p.cur.pos))
}
