package ast

import (
	"fmt"
	"strings"
)

// Render conventions: maps render as "{ k => v, ... }", lists as
// "[ v, ... ]", scalars as their decoded text.  The output is a debug
// view for diagnostics and diffing, not a round-trippable encoding.

type renderOpts struct {
	colors *Colors
	spans  bool
}

type RenderOption func(*renderOpts)

// RenderColors renders with the given color scheme.
func RenderColors(c *Colors) RenderOption {
	return func(o *renderOpts) { o.colors = c }
}

// RenderSpans annotates every node with its token-index span.
func RenderSpans(v bool) RenderOption {
	return func(o *renderOpts) { o.spans = v }
}

func Render(n *Node, src Source, opts ...RenderOption) string {
	o := &renderOpts{}
	for _, f := range opts {
		f(o)
	}
	if o.colors == nil {
		o.colors = plainColors()
	}
	var b strings.Builder
	render(&b, n, src, o)
	return b.String()
}

func render(b *strings.Builder, n *Node, src Source, o *renderOpts) {
	if n == nil {
		return
	}
	c := o.colors
	switch n.Type {
	case DocumentType:
		if n.Directive != nil {
			b.WriteString(c.Marker("--- !%s ", src.GetRaw(*n.Directive, *n.Directive)))
		}
		render(b, n.Value, src, o)
	case MapType:
		if len(n.Entries) == 0 {
			b.WriteString(c.Sep("{ }"))
			break
		}
		b.WriteString(c.Sep("{ "))
		for i := range n.Entries {
			if i > 0 {
				b.WriteString(c.Sep(", "))
			}
			b.WriteString(c.Key("%s", src.GetRaw(n.Entries[i].Key, n.Entries[i].Key)))
			b.WriteString(c.Sep(" => "))
			render(b, n.Entries[i].Value, src, o)
		}
		b.WriteString(c.Sep(" }"))
	case ListType:
		if len(n.Values) == 0 {
			b.WriteString(c.Sep("[ ]"))
			break
		}
		b.WriteString(c.Sep("[ "))
		for i, v := range n.Values {
			if i > 0 {
				b.WriteString(c.Sep(", "))
			}
			render(b, v, src, o)
		}
		b.WriteString(c.Sep(" ]"))
	case ScalarType:
		b.WriteString(c.Scalar("%s", n.String))
	}
	if o.spans {
		b.WriteString(fmt.Sprintf(" [%d, %d]", n.Start, n.End))
	}
}
