package pdfdrawing

import (
	"strconv"
	"strings"
)

// tokenKind discriminates content-stream tokens.
type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenString
	tokenName
	tokenOperator
	tokenArrayStart
	tokenArrayEnd
)

// token is one lexical element of a PDF content stream.
type token struct {
	kind tokenKind
	num  float64
	str  string // string contents, name, or operator text
}

// tokenizer is a minimal content-stream lexer. It understands the token kinds
// the drawing walk needs: numbers, names, literal and hex strings, array
// brackets and operators. Dictionaries and inline images do not occur in the
// vector drawings this package reads; their delimiters are skipped.
type tokenizer struct {
	data []byte
	pos  int
}

func newTokenizer(data []byte) *tokenizer {
	return &tokenizer{data: data}
}

func isWhitespace(c byte) bool {
	switch c {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// next returns the next token; ok is false at the end of the stream.
func (t *tokenizer) next() (token, bool) {
	for t.pos < len(t.data) {
		c := t.data[t.pos]

		switch {
		case isWhitespace(c):
			t.pos++

		case c == '%':
			// Comment runs to end of line.
			for t.pos < len(t.data) && t.data[t.pos] != '\n' && t.data[t.pos] != '\r' {
				t.pos++
			}

		case c == '[':
			t.pos++
			return token{kind: tokenArrayStart}, true

		case c == ']':
			t.pos++
			return token{kind: tokenArrayEnd}, true

		case c == '(':
			t.pos++
			return token{kind: tokenString, str: t.readLiteralString()}, true

		case c == '<':
			if t.pos+1 < len(t.data) && t.data[t.pos+1] == '<' {
				t.pos += 2 // dictionary start, not used by the walk
				continue
			}
			t.pos++
			return token{kind: tokenString, str: t.readHexString()}, true

		case c == '>':
			t.pos++ // stray dictionary end
			if t.pos < len(t.data) && t.data[t.pos] == '>' {
				t.pos++
			}

		case c == '/':
			t.pos++
			return token{kind: tokenName, str: t.readRegular()}, true

		case c == '{' || c == '}':
			t.pos++

		case c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9'):
			text := t.readRegular()
			n, err := strconv.ParseFloat(text, 64)
			if err != nil {
				// Malformed number; treat as an unknown operator so the walk
				// just drops it.
				return token{kind: tokenOperator, str: text}, true
			}
			return token{kind: tokenNumber, num: n}, true

		default:
			return token{kind: tokenOperator, str: t.readRegular()}, true
		}
	}
	return token{}, false
}

// readRegular consumes a run of non-delimiter, non-whitespace characters.
func (t *tokenizer) readRegular() string {
	start := t.pos
	for t.pos < len(t.data) && !isWhitespace(t.data[t.pos]) && !isDelimiter(t.data[t.pos]) {
		t.pos++
	}
	return string(t.data[start:t.pos])
}

// readLiteralString consumes a (...) string after the opening parenthesis,
// honoring nested parentheses and the common escape sequences.
func (t *tokenizer) readLiteralString() string {
	var sb strings.Builder
	depth := 1
	for t.pos < len(t.data) {
		c := t.data[t.pos]
		t.pos++
		switch c {
		case '\\':
			if t.pos >= len(t.data) {
				return sb.String()
			}
			e := t.data[t.pos]
			t.pos++
			switch e {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case 'b', 'f':
				// Ignored control escapes.
			case '\n':
				// Line continuation.
			default:
				sb.WriteByte(e)
			}
		case '(':
			depth++
			sb.WriteByte(c)
		case ')':
			depth--
			if depth == 0 {
				return sb.String()
			}
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// readHexString consumes a <...> string after the opening bracket. An odd
// final digit is padded with a trailing zero.
func (t *tokenizer) readHexString() string {
	var digits []byte
	for t.pos < len(t.data) {
		c := t.data[t.pos]
		t.pos++
		if c == '>' {
			break
		}
		if isHexDigit(c) {
			digits = append(digits, c)
		}
	}
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}

	var sb strings.Builder
	for i := 0; i+1 < len(digits); i += 2 {
		hi := hexValue(digits[i])
		lo := hexValue(digits[i+1])
		sb.WriteByte(hi<<4 | lo)
	}
	return sb.String()
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
