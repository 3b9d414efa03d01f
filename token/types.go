package token

import "fmt"

type TokenType int

const (
	TEof TokenType = iota
	TNewLine
	TSpace
	TComment
	TLiteral
	TSingleQuote
	TDoubleQuote
	TEscapeSeq
	TDocStart
	TDocEnd
	TTagInd
	TMapValueInd
	TSeqItemInd
	TFlowSeqStart
	TFlowSeqEnd
	TComma
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEof:          "TEof",
		TNewLine:      "TNewLine",
		TSpace:        "TSpace",
		TComment:      "TComment",
		TLiteral:      "TLiteral",
		TSingleQuote:  "TSingleQuote",
		TDoubleQuote:  "TDoubleQuote",
		TEscapeSeq:    "TEscapeSeq",
		TDocStart:     "TDocStart",
		TDocEnd:       "TDocEnd",
		TTagInd:       "TTagInd",
		TMapValueInd:  "TMapValueInd",
		TSeqItemInd:   "TSeqItemInd",
		TFlowSeqStart: "TFlowSeqStart",
		TFlowSeqEnd:   "TFlowSeqEnd",
		TComma:        "TComma",
	}[t]
}

// Token is one classified unit of source text.  Start and End are byte
// offsets into the original source, End exclusive.  The final token of any
// tokenization is always TEof with Start == End == len(src).
type Token struct {
	Type  TokenType
	Start int
	End   int
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s [%d, %d)", t.Type, t.Start, t.End)
}
