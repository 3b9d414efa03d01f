// Package ast provides the document tree built by the parse package.
//
// A tree is a closed sum over four variants discriminated by the Type
// field: Document, Map, List and Scalar.  Every node carries an inclusive
// [Start, End] token-index span locating the tokens it was built from;
// resolving a span back to source text goes through a Source (normally the
// parse.Tree that owns the token buffer).  Nodes contain no raw text of
// their own apart from the decoded Scalar string, making the tree cheap to
// hold while the source and token buffer remain the single authority on
// bytes.
//
// Ownership is strictly single-parent: a Document owns its value, a Map
// owns the values of its entries, a List owns its elements.  Nodes are
// mutated only while being built and are never shared between parents.
package ast

// Entry is one map entry: the index of the key token and the value node
// owned by it.  Keys are always literal tokens, so the index alone (plus a
// Source) recovers the key text.
type Entry struct {
	Key   int
	Value *Node
}

// Node is one node of the document tree.  Start and End are inclusive
// token-index bounds; Start <= End always holds.  Only the fields of the
// variant selected by Type are meaningful.
type Node struct {
	Type  Type
	Start int
	End   int

	// DocumentType.  Directive is the token index of the literal following
	// an explicit "--- !" header, nil when absent.  Value is the document
	// root value, nil when the document carries none.
	Directive *int
	Value     *Node

	// MapType.  Entries preserve source order.
	Entries []Entry

	// ListType.  Values preserve source order.
	Values []*Node

	// ScalarType.  String holds the decoded content: escape-decoded for
	// quoted scalars, trimmed raw text for bare ones.
	String string
}

// Source resolves token spans back to raw source text.
type Source interface {
	GetRaw(start, end int) string
}

// Visit walks the node and its owned descendants in source order, calling
// f before (isPost false) and after (isPost true) each node's children.
// Returning false from a pre-order call skips the node's children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.children() {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(n, true)
	return err
}

func (n *Node) children() []*Node {
	switch n.Type {
	case DocumentType:
		if n.Value == nil {
			return nil
		}
		return []*Node{n.Value}
	case MapType:
		res := make([]*Node, 0, len(n.Entries))
		for i := range n.Entries {
			res = append(res, n.Entries[i].Value)
		}
		return res
	case ListType:
		return n.Values
	default:
		return nil
	}
}
