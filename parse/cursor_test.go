package parse

import (
	"testing"

	"github.com/sjinzh/zig-yaml/token"
)

func TestCursor(t *testing.T) {
	toks := token.Tokenize([]byte("a: b"))
	c := &cursor{toks: toks}
	first := c.next()
	if first == nil || first.Type != token.TLiteral {
		t.Fatalf("first = %+v", first)
	}
	if pk := c.peek(); pk == nil || pk.Type != token.TMapValueInd {
		t.Fatalf("peek = %+v", pk)
	}
	if c.pos != 1 {
		t.Errorf("pos = %d after peek, want 1", c.pos)
	}
	c.seekBy(-1)
	if pk := c.peek(); pk.Type != token.TLiteral {
		t.Errorf("seekBy(-1) peek = %s", pk.Type)
	}
	c.seekBy(-10)
	if c.pos != 0 {
		t.Errorf("seekBy clamps at 0, pos = %d", c.pos)
	}
	c.seekTo(len(toks))
	if pk := c.next(); pk != nil {
		t.Errorf("next past buffer = %+v, want nil", pk)
	}
}
