// Package token turns raw source bytes into a flat, ordered sequence of
// classified tokens carrying byte spans.  It knows nothing about nesting:
// structure and scalar decoding belong to the parse package.
package token

// Tokenize classifies src into a token sequence.  It is total: any input
// produces a deterministic slice terminated by a TEof token spanning
// [len(src), len(src)).  Quote context is tracked only far enough to emit
// TEscapeSeq for doubled quotes inside single-quoted runs and for
// backslash sequences inside double-quoted runs; it resets at line breaks.
func Tokenize(src []byte) []Token {
	var (
		toks     []Token
		i        int
		inSingle bool
		inDouble bool
	)
	n := len(src)
	for i < n {
		c := src[i]
		if inSingle {
			switch {
			case c == '\'' && i+1 < n && src[i+1] == '\'':
				toks = append(toks, Token{TEscapeSeq, i, i + 2})
				i += 2
			case c == '\'':
				toks = append(toks, Token{TSingleQuote, i, i + 1})
				inSingle = false
				i++
			case c == '\n' || c == '\r':
				i = lineBreak(&toks, src, i)
				inSingle = false
			default:
				j := i
				for j < n && src[j] != '\'' && src[j] != '\n' && src[j] != '\r' {
					j++
				}
				toks = append(toks, Token{TLiteral, i, j})
				i = j
			}
			continue
		}
		if inDouble {
			switch {
			case c == '\\':
				j := min(i+2, n)
				if j == i+2 && (src[i+1] == '\n' || src[i+1] == '\r') {
					// the payload never crosses a line break; the break is
					// tokenized on its own next iteration
					j = i + 1
				}
				toks = append(toks, Token{TEscapeSeq, i, j})
				i = j
			case c == '"':
				toks = append(toks, Token{TDoubleQuote, i, i + 1})
				inDouble = false
				i++
			case c == '\n' || c == '\r':
				i = lineBreak(&toks, src, i)
				inDouble = false
			default:
				j := i
				for j < n && src[j] != '"' && src[j] != '\\' && src[j] != '\n' && src[j] != '\r' {
					j++
				}
				toks = append(toks, Token{TLiteral, i, j})
				i = j
			}
			continue
		}
		switch {
		case c == '\n' || c == '\r':
			i = lineBreak(&toks, src, i)
		case c == ' ' || c == '\t':
			j := i
			for j < n && (src[j] == ' ' || src[j] == '\t') {
				j++
			}
			toks = append(toks, Token{TSpace, i, j})
			i = j
		case c == '#':
			j := i
			for j < n && src[j] != '\n' && src[j] != '\r' {
				j++
			}
			toks = append(toks, Token{TComment, i, j})
			i = j
		case c == '\'':
			toks = append(toks, Token{TSingleQuote, i, i + 1})
			inSingle = true
			i++
		case c == '"':
			toks = append(toks, Token{TDoubleQuote, i, i + 1})
			inDouble = true
			i++
		case c == '!':
			toks = append(toks, Token{TTagInd, i, i + 1})
			i++
		case c == ':':
			toks = append(toks, Token{TMapValueInd, i, i + 1})
			i++
		case c == ',':
			toks = append(toks, Token{TComma, i, i + 1})
			i++
		case c == '[':
			toks = append(toks, Token{TFlowSeqStart, i, i + 1})
			i++
		case c == ']':
			toks = append(toks, Token{TFlowSeqEnd, i, i + 1})
			i++
		case c == '-' && marker(src, i, '-'):
			toks = append(toks, Token{TDocStart, i, i + 3})
			i += 3
		case c == '.' && marker(src, i, '.'):
			toks = append(toks, Token{TDocEnd, i, i + 3})
			i += 3
		case c == '-' && (i+1 == n || isBlank(src[i+1])):
			toks = append(toks, Token{TSeqItemInd, i, i + 1})
			i++
		default:
			j := i
			for j < n && !isDelim(src[j]) {
				j++
			}
			toks = append(toks, Token{TLiteral, i, j})
			i = j
		}
	}
	return append(toks, Token{TEof, n, n})
}

func lineBreak(toks *[]Token, src []byte, i int) int {
	if src[i] == '\r' && i+1 < len(src) && src[i+1] == '\n' {
		*toks = append(*toks, Token{TNewLine, i, i + 2})
		return i + 2
	}
	*toks = append(*toks, Token{TNewLine, i, i + 1})
	return i + 1
}

// marker reports whether src[i:] begins a three-byte document marker
// (--- or ...) ending at a blank, a line break, or end of input.
func marker(src []byte, i int, ch byte) bool {
	if i+3 > len(src) || src[i+1] != ch || src[i+2] != ch {
		return false
	}
	return i+3 == len(src) || isBlank(src[i+3]) || src[i+3] == '\n' || src[i+3] == '\r'
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDelim(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '#', '\'', '"', ':', ',', '[', ']':
		return true
	}
	return false
}
