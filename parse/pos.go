package parse

import "github.com/sjinzh/zig-yaml/token"

// LineCol locates a token for indentation decisions.  Line counts the
// newline tokens consumed before the token; Col is the byte offset of the
// token's start relative to the end of the previous newline token (or to
// the buffer start on the first line).
type LineCol struct {
	Line int
	Col  int
}

// lineCols builds the total token-index -> LineCol mapping in one
// left-to-right pass over the token buffer.
func lineCols(toks []token.Token) []LineCol {
	res := make([]LineCol, len(toks))
	line, prevLineEnd := 0, 0
	for i := range toks {
		t := &toks[i]
		res[i] = LineCol{Line: line, Col: t.Start - prevLineEnd}
		if t.Type == token.TNewLine {
			line++
			prevLineEnd = t.End
		}
	}
	return res
}
