package ast

import "testing"

// fakeSource resolves single-token spans from a table; good enough for
// rendering keys and directives.
type fakeSource map[int]string

func (s fakeSource) GetRaw(start, end int) string {
	return s[start]
}

func scalar(s string, at int) *Node {
	return &Node{Type: ScalarType, Start: at, End: at, String: s}
}

func TestRenderMapAndList(t *testing.T) {
	src := fakeSource{0: "name", 4: "ports"}
	n := &Node{
		Type: MapType,
		Entries: []Entry{
			{Key: 0, Value: scalar("db", 2)},
			{Key: 4, Value: &Node{
				Type:   ListType,
				Values: []*Node{scalar("5432", 6), scalar("5433", 8)},
			}},
		},
	}
	want := "{ name => db, ports => [ 5432, 5433 ] }"
	if got := Render(n, src); got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderEmptyComposites(t *testing.T) {
	src := fakeSource{}
	if got := Render(&Node{Type: MapType}, src); got != "{ }" {
		t.Errorf("empty map = %q", got)
	}
	if got := Render(&Node{Type: ListType}, src); got != "[ ]" {
		t.Errorf("empty list = %q", got)
	}
}

func TestRenderDocumentDirective(t *testing.T) {
	src := fakeSource{1: "tapi"}
	d := 1
	n := &Node{Type: DocumentType, Directive: &d, Value: scalar("v", 3)}
	if got := Render(n, src); got != "--- !tapi v" {
		t.Errorf("Render = %q", got)
	}
}

func TestRenderSpans(t *testing.T) {
	src := fakeSource{}
	n := scalar("x", 3)
	if got := Render(n, src, RenderSpans(true)); got != "x [3, 3]" {
		t.Errorf("Render = %q", got)
	}
}

func TestVisitOrder(t *testing.T) {
	n := &Node{
		Type: MapType,
		Entries: []Entry{
			{Key: 0, Value: scalar("1", 2)},
			{Key: 4, Value: scalar("2", 6)},
		},
	}
	var pre, post []string
	err := n.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			post = append(post, n.Type.String())
		} else {
			pre = append(pre, n.Type.String())
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(pre) != 3 || pre[0] != "Map" || pre[1] != "Scalar" || pre[2] != "Scalar" {
		t.Errorf("pre-order = %v", pre)
	}
	if len(post) != 3 || post[2] != "Map" {
		t.Errorf("post-order = %v", post)
	}
}
