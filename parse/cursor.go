package parse

import "github.com/sjinzh/zig-yaml/token"

// cursor is a seekable view over the immutable token buffer.  It is the
// only mutable state threaded through parsing; it never modifies the
// buffer.
type cursor struct {
	toks []token.Token
	pos  int
}

// next returns the token at the current position and advances by one, or
// nil when the buffer is exhausted (past the trailing TEof token).
func (c *cursor) next() *token.Token {
	if c.pos >= len(c.toks) {
		return nil
	}
	t := &c.toks[c.pos]
	c.pos++
	return t
}

// peek returns the token at the current position without advancing.
func (c *cursor) peek() *token.Token {
	if c.pos >= len(c.toks) {
		return nil
	}
	return &c.toks[c.pos]
}

func (c *cursor) seekTo(pos int) {
	c.pos = pos
}

// seekBy moves the position by a relative delta; used to back up after a
// failed look-ahead.
func (c *cursor) seekBy(delta int) {
	c.pos += delta
	if c.pos < 0 {
		c.pos = 0
	}
}
