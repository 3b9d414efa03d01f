package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sjinzh/zig-yaml/ast"
)

func testParser(t *testing.T, src string) *parser {
	t.Helper()
	tree := New()
	tree.prepare([]byte(src))
	return &parser{
		tree: tree,
		cur:  &cursor{toks: tree.toks},
		opts: &parseOpts{maxDepth: DefaultMaxDepth},
	}
}

func TestParseEmptyInputs(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n", "# only a comment\n", "  # c\n\n"} {
		tree := New()
		if err := tree.Parse([]byte(in)); err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if len(tree.Docs()) != 0 {
			t.Errorf("Parse(%q): %d docs, want 0", in, len(tree.Docs()))
		}
	}
}

func TestParseScalarDocument(t *testing.T) {
	tree := New()
	if err := tree.Parse([]byte("hello")); err != nil {
		t.Fatal(err)
	}
	want := []*ast.Node{{
		Type:  ast.DocumentType,
		Start: 0,
		End:   0,
		Value: &ast.Node{Type: ast.ScalarType, Start: 0, End: 0, String: "hello"},
	}}
	if d := cmp.Diff(want, tree.Docs()); d != "" {
		t.Errorf("docs mismatch (-want +got):\n%s", d)
	}
}

func TestParseBareScalarInternalSpaces(t *testing.T) {
	tree := New()
	if err := tree.Parse([]byte("hello   world  \n")); err != nil {
		t.Fatal(err)
	}
	doc := tree.Docs()[0]
	got := doc.Value.String
	if got != "hello   world" {
		t.Errorf("decoded = %q", got)
	}
	// byte-for-byte against the raw span
	if raw := tree.GetRaw(doc.Value.Start, doc.Value.End); raw != got {
		t.Errorf("raw span %q != decoded %q", raw, got)
	}
}

func TestParseQuotedScalars(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `'it''s'`, want: "it's"},
		{in: `"a\nb"`, want: "a\nb"},
		{in: `"a\tb"`, want: "a\tb"},
		{in: `"say \"hi\""`, want: `say "hi"`},
		// unknown escape payloads decode to nothing
		{in: `"a\zb"`, want: "ab"},
		{in: `''`, want: ""},
		{in: `""`, want: ""},
		{in: `'plain'`, want: "plain"},
	}
	for _, tt := range tests {
		tree := New()
		if err := tree.Parse([]byte(tt.in)); err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		v := tree.Docs()[0].Value
		if v == nil || v.Type != ast.ScalarType {
			t.Fatalf("Parse(%q): no scalar value", tt.in)
		}
		if v.String != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, v.String, tt.want)
		}
		if v.Start > v.End {
			t.Errorf("Parse(%q): inverted span [%d, %d]", tt.in, v.Start, v.End)
		}
	}
}

func TestParseExplicitDocument(t *testing.T) {
	tree := New()
	if err := tree.Parse([]byte("--- !tapi 'x'\n...\n")); err != nil {
		t.Fatal(err)
	}
	docs := tree.Docs()
	if len(docs) != 1 {
		t.Fatalf("%d docs, want 1", len(docs))
	}
	doc := docs[0]
	if doc.Directive == nil {
		t.Fatal("directive missing")
	}
	if raw := tree.GetRaw(*doc.Directive, *doc.Directive); raw != "tapi" {
		t.Errorf("directive = %q", raw)
	}
	if doc.Value == nil || doc.Value.String != "x" {
		t.Errorf("value = %+v", doc.Value)
	}
}

func TestParseExplicitDocumentNoDirective(t *testing.T) {
	tree := New()
	if err := tree.Parse([]byte("--- v\n...\n")); err != nil {
		t.Fatal(err)
	}
	doc := tree.Docs()[0]
	if doc.Directive != nil {
		t.Errorf("unexpected directive %d", *doc.Directive)
	}
	if doc.Value == nil || doc.Value.String != "v" {
		t.Errorf("value = %+v", doc.Value)
	}
}

func TestParseBackToBackDocuments(t *testing.T) {
	// the first document has no end marker; its span must stop right
	// before the second start marker
	tree := New()
	if err := tree.Parse([]byte("--- a\n--- b\n")); err != nil {
		t.Fatal(err)
	}
	docs := tree.Docs()
	if len(docs) != 2 {
		t.Fatalf("%d docs, want 2", len(docs))
	}
	var secondStart int
	for i, tok := range tree.Tokens() {
		if i > 0 && tok.Start == 6 { // byte offset of the second ---
			secondStart = i
			break
		}
	}
	if docs[0].End != secondStart-1 {
		t.Errorf("first doc ends at token %d, want %d", docs[0].End, secondStart-1)
	}
	if docs[1].Value == nil || docs[1].Value.String != "b" {
		t.Errorf("second doc value = %+v", docs[1].Value)
	}
}

func TestParseFooterErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		// end marker without an explicit start
		{in: "a\n...\n", want: ErrUnexpectedToken},
		// a second start marker cannot end an implicit document
		{in: "a\n--- b\n", want: ErrUnexpectedToken},
		// sequence item at document root is not a scalar value; the
		// footer reports it
		{in: "- a\n", want: ErrUnexpectedToken},
	}
	for _, tt := range tests {
		tree := New()
		err := tree.Parse([]byte(tt.in))
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestParseRootMapUnhandled(t *testing.T) {
	tree := New()
	err := tree.Parse([]byte("key: x\n"))
	if !errors.Is(err, ErrUnhandled) {
		t.Errorf("Parse = %v, want %v", err, ErrUnhandled)
	}
}

func TestParseUnterminatedQuote(t *testing.T) {
	// a raw line break before the closing quote
	tree := New()
	if err := tree.Parse([]byte("'abc\n")); !errors.Is(err, ErrUnexpectedToken) {
		t.Errorf("newline in quote = %v, want %v", err, ErrUnexpectedToken)
	}
	// input ends before the closing quote
	tree = New()
	if err := tree.Parse([]byte("'abc")); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("eof in quote = %v, want %v", err, ErrUnexpectedEOF)
	}
	// a backslash does not license a line break before the closing quote
	tree = New()
	if err := tree.Parse([]byte("\"a\\\nb\"")); !errors.Is(err, ErrUnexpectedToken) {
		t.Errorf("escaped newline in quote = %v, want %v", err, ErrUnexpectedToken)
	}
}

func TestDocumentFooterExhaustion(t *testing.T) {
	// simulate a token stream that runs out mid-footer by dropping the
	// terminal eof token
	tree := New()
	tree.prepare([]byte("--- abc"))
	p := &parser{
		tree: tree,
		cur:  &cursor{toks: tree.toks[:len(tree.toks)-1]},
		opts: &parseOpts{maxDepth: DefaultMaxDepth},
	}
	if _, err := p.document(); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("document = %v, want %v", err, ErrUnexpectedEOF)
	}
}

func TestParseSpansHold(t *testing.T) {
	inputs := []string{
		"hello",
		"'a b c'\n",
		"--- !t v\n...\n",
		"--- a\n--- b\n",
	}
	for _, in := range inputs {
		tree := New()
		if err := tree.Parse([]byte(in)); err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		n := len(tree.Tokens())
		for _, doc := range tree.Docs() {
			err := doc.Visit(func(node *ast.Node, isPost bool) (bool, error) {
				if isPost {
					return true, nil
				}
				if node.Start > node.End {
					t.Errorf("Parse(%q): inverted span [%d, %d]", in, node.Start, node.End)
				}
				if node.End >= n {
					t.Errorf("Parse(%q): span end %d out of range", in, node.End)
				}
				return true, nil
			})
			if err != nil {
				t.Fatal(err)
			}
		}
	}
}

func TestMappingOfLists(t *testing.T) {
	p := testParser(t, "a:\n  - 1\n  - 2\nb:\n  - 3\n")
	node, err := p.mapping(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(node.Entries) != 2 {
		t.Fatalf("%d entries, want 2", len(node.Entries))
	}
	// source order preserved
	if k := p.tree.GetRaw(node.Entries[0].Key, node.Entries[0].Key); k != "a" {
		t.Errorf("first key = %q", k)
	}
	if k := p.tree.GetRaw(node.Entries[1].Key, node.Entries[1].Key); k != "b" {
		t.Errorf("second key = %q", k)
	}
	first := node.Entries[0].Value
	if first.Type != ast.ListType || len(first.Values) != 2 {
		t.Fatalf("first value = %+v", first)
	}
	if first.Values[0].String != "1" || first.Values[1].String != "2" {
		t.Errorf("list values = %q, %q", first.Values[0].String, first.Values[1].String)
	}
}

func TestMapInlineScalarRecursesAsNestedMap(t *testing.T) {
	// a bare literal after ':' on the same line opens a nested mapping
	// at the literal's column instead of becoming the key's leaf value;
	// the nested mapping then fails to find a value indicator.  This is
	// long-standing observable behavior, kept on purpose.
	p := testParser(t, "a: b\n")
	_, err := p.mapping(0)
	if !errors.Is(err, ErrUnexpectedToken) {
		t.Errorf("mapping = %v, want %v", err, ErrUnexpectedToken)
	}

	// the same applies one level down
	p = testParser(t, "x:\n  y: z\n")
	_, err = p.mapping(0)
	if !errors.Is(err, ErrUnexpectedToken) {
		t.Errorf("nested mapping = %v, want %v", err, ErrUnexpectedToken)
	}
}

func TestMapQuotedValueRejectedAsNestedMapKey(t *testing.T) {
	// a quoted token in value position opens a nested mapping too, but a
	// quote can never be a mapping key; the parse fails instead of
	// returning an empty map with an inverted span
	for _, in := range []string{"a: 'q'\n", "a:\n  'q'\n", "a: \"q\"\n"} {
		p := testParser(t, in)
		node, err := p.mapping(0)
		if !errors.Is(err, ErrUnexpectedToken) {
			t.Errorf("mapping(%q) = %+v, %v, want %v", in, node, err, ErrUnexpectedToken)
		}
	}
}

func TestMappingValueMissing(t *testing.T) {
	p := testParser(t, "a:")
	_, err := p.mapping(0)
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("mapping = %v, want %v", err, ErrUnexpectedEOF)
	}
}

func TestMappingKeyWithoutIndicator(t *testing.T) {
	p := testParser(t, "a\n")
	_, err := p.mapping(0)
	if !errors.Is(err, ErrUnexpectedToken) {
		t.Errorf("mapping = %v, want %v", err, ErrUnexpectedToken)
	}
}

func TestListOrderAndSpans(t *testing.T) {
	p := testParser(t, "- a\n- b\n- c\n")
	node, err := p.list(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(node.Values) != 3 {
		t.Fatalf("%d items, want 3", len(node.Values))
	}
	for i, want := range []string{"a", "b", "c"} {
		if node.Values[i].String != want {
			t.Errorf("item %d = %q, want %q", i, node.Values[i].String, want)
		}
	}
	if node.Start > node.End {
		t.Errorf("inverted span [%d, %d]", node.Start, node.End)
	}
}

func TestListOfMappings(t *testing.T) {
	p := testParser(t, "- k:\n    - 1\n")
	node, err := p.list(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(node.Values) != 1 {
		t.Fatalf("%d items, want 1", len(node.Values))
	}
	m := node.Values[0]
	if m.Type != ast.MapType || len(m.Entries) != 1 {
		t.Fatalf("item = %+v", m)
	}
	if k := p.tree.GetRaw(m.Entries[0].Key, m.Entries[0].Key); k != "k" {
		t.Errorf("key = %q", k)
	}
	inner := m.Entries[0].Value
	if inner.Type != ast.ListType || len(inner.Values) != 1 || inner.Values[0].String != "1" {
		t.Errorf("inner = %+v", inner)
	}
}

func TestListStopsAtDifferentColumn(t *testing.T) {
	p := testParser(t, "- a\n  - b\n")
	node, err := p.list(0)
	if err != nil {
		t.Fatal(err)
	}
	// the indented item belongs to something else
	if len(node.Values) != 1 {
		t.Errorf("%d items, want 1", len(node.Values))
	}
}

func TestListBracketed(t *testing.T) {
	p := testParser(t, "[1, [2, 3], 4]")
	node, err := p.listBracketed()
	if err != nil {
		t.Fatal(err)
	}
	if len(node.Values) != 3 {
		t.Fatalf("%d items, want 3", len(node.Values))
	}
	nested := node.Values[1]
	if nested.Type != ast.ListType || len(nested.Values) != 2 {
		t.Fatalf("nested = %+v", nested)
	}
	if nested.Values[0].String != "2" || nested.Values[1].String != "3" {
		t.Errorf("nested values = %q, %q", nested.Values[0].String, nested.Values[1].String)
	}
	if node.Values[2].String != "4" {
		t.Errorf("last = %q", node.Values[2].String)
	}
}

func TestListBracketedMultiline(t *testing.T) {
	p := testParser(t, "[\n  a,\n  b,\n]")
	node, err := p.listBracketed()
	if err != nil {
		t.Fatal(err)
	}
	if len(node.Values) != 2 {
		t.Fatalf("%d items, want 2", len(node.Values))
	}
}

func TestListBracketedErrors(t *testing.T) {
	p := testParser(t, "[1")
	if _, err := p.listBracketed(); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("unterminated = %v, want %v", err, ErrUnexpectedEOF)
	}
	p = testParser(t, "[:]")
	if _, err := p.listBracketed(); !errors.Is(err, ErrUnhandled) {
		t.Errorf("flow map = %v, want %v", err, ErrUnhandled)
	}
}

func TestMaxDepth(t *testing.T) {
	p := testParser(t, "[[[[[[1]]]]]]")
	p.opts = &parseOpts{maxDepth: 3}
	_, err := p.listBracketed()
	if !errors.Is(err, ErrMaxDepth) {
		t.Errorf("listBracketed = %v, want %v", err, ErrMaxDepth)
	}
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("ErrMaxDepth must classify as %v", ErrMalformed)
	}
}

func TestLineCols(t *testing.T) {
	tree := New()
	tree.prepare([]byte("a:\n b"))
	want := []LineCol{
		{Line: 0, Col: 0}, // a
		{Line: 0, Col: 1}, // :
		{Line: 0, Col: 2}, // newline
		{Line: 1, Col: 0}, // space
		{Line: 1, Col: 1}, // b
		{Line: 1, Col: 2}, // eof
	}
	got := make([]LineCol, len(tree.toks))
	for i := range tree.toks {
		got[i] = tree.LineCol(i)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("line/col mismatch (-want +got):\n%s", d)
	}
}

func TestGetRaw(t *testing.T) {
	tree := New()
	if err := tree.Parse([]byte("--- hello world\n")); err != nil {
		t.Fatal(err)
	}
	v := tree.Docs()[0].Value
	if raw := tree.GetRaw(v.Start, v.End); raw != "hello world" {
		t.Errorf("GetRaw = %q", raw)
	}
}
