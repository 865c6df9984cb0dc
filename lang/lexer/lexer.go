// Package lexer converts options expression source text into tokens.
//
// The lexer is a single hand-written pass over the source characters. It is a
// total function: every input produces a token sequence terminated by one
// [token.EOF] token, and characters that cannot start a token become
// [token.Error] tokens that the grammar rejects only if it needs to consume
// them.
package lexer

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/ardnew/optexpr/lang/token"
)

// lexer holds the scanning state for a single pass.
type lexer struct {
	src    []rune
	pos    int
	tokens []token.Token
}

// Lex scans text and returns its tokens in source order.
//
// Token offsets and lengths count Unicode code points. They match UTF-16
// code unit positions for text within the Basic Multilingual Plane; each
// supplementary character counts once here and twice in UTF-16.
func Lex(text string) []token.Token {
	src := []rune(text)

	l := &lexer{
		src:    src,
		tokens: make([]token.Token, 0, len(src)/2+1),
	}

	l.run()

	return l.tokens
}

func (l *lexer) run() {
	for l.pos < len(l.src) {
		start := l.pos
		r := l.src[start]

		switch {
		case isWhitespace(r), isLineTerminator(r):
			l.pos++

		case r == '\'' || r == '"':
			l.scanString(start, r)

		case isDigit(r):
			l.scanNumber(start)

		case r == '.':
			if isDigit(at(l.src, start+1)) {
				l.scanNumber(start)
			} else {
				l.punctuator(start, token.Dot)
			}

		case r == '+' || r == '-':
			next := at(l.src, start+1)
			if isDigit(next) || (next == '.' && isDigit(at(l.src, start+2))) {
				l.scanNumber(start)
			} else {
				l.fail(start, start+1)
			}

		case isIdentifierStart(r) || r == '\\':
			l.scanIdentifier(start)

		default:
			if typ, ok := token.Punctuator(r); ok {
				l.punctuator(start, typ)
			} else {
				l.fail(start, start+1)
			}
		}
	}

	l.tokens = append(l.tokens, token.Token{
		Type:   token.EOF,
		Offset: len(l.src),
	})
}

func (l *lexer) emit(typ token.Type, start int, lit token.Literal, kw bool) {
	l.tokens = append(l.tokens, token.Token{
		Type:    typ,
		Offset:  start,
		Length:  l.pos - start,
		Literal: lit,
		Keyword: kw,
	})
}

func (l *lexer) punctuator(start int, typ token.Type) {
	l.pos = start + 1
	l.emit(typ, start, token.Literal{}, false)
}

// fail emits an error token spanning src[start:end] and resumes at end.
func (l *lexer) fail(start, end int) {
	if end <= start {
		end = start + 1
	}

	l.pos = end
	l.emit(token.Error, start, token.String(string(l.src[start:end])), false)
}

func (l *lexer) scanNumber(start int) {
	pos := start
	negative := false

	if r := l.src[pos]; r == '+' || r == '-' {
		negative = r == '-'
		pos++
	}

	var value float64

	if l.src[pos] == '0' && (at(l.src, pos+1)|0x20) == 'x' &&
		isHexDigit(at(l.src, pos+2)) {
		pos += 2
		for isHexDigit(at(l.src, pos)) {
			value = value*16 + float64(hexValue(l.src[pos]))
			pos++
		}
	} else {
		digits := pos

		for isDigit(at(l.src, pos)) {
			pos++
		}

		if at(l.src, pos) == '.' && isDigit(at(l.src, pos+1)) {
			pos++
			for isDigit(at(l.src, pos)) {
				pos++
			}
		}

		if e := at(l.src, pos); e == 'e' || e == 'E' {
			j := pos + 1
			if s := at(l.src, j); s == '+' || s == '-' {
				j++
			}

			if isDigit(at(l.src, j)) {
				pos = j
				for isDigit(at(l.src, pos)) {
					pos++
				}
			}
		}

		// Out-of-range literals saturate to ±Inf, matching the host language.
		value, _ = strconv.ParseFloat(string(l.src[digits:pos]), 64)
	}

	if negative {
		value = -value
	}

	l.pos = pos
	l.emit(token.NumberLiteral, start, token.Number(value), false)
}

func (l *lexer) scanString(start int, quote rune) {
	for pos := start + 1; pos < len(l.src); pos++ {
		r := l.src[pos]
		if r == quote {
			l.pos = pos + 1
			l.emit(token.StringLiteral, start,
				token.String(string(l.src[start+1:pos])), false)

			return
		}

		if r == '\\' || isLineTerminator(r) {
			break
		}
	}

	l.decodeString(start, quote)
}

// decodeString scans a string literal that contains escapes or is not
// terminated. Malformed escapes and unterminated literals produce a single
// error token over the consumed span.
func (l *lexer) decodeString(start int, quote rune) {
	var sb strings.Builder

	pos := start + 1
	bad := false

	for {
		r := at(l.src, pos)

		switch {
		case r < 0 || isLineTerminator(r):
			l.fail(start, pos)

			return

		case r == quote:
			l.pos = pos + 1
			if bad {
				l.fail(start, l.pos)
			} else {
				l.emit(token.StringLiteral, start, token.String(sb.String()), false)
			}

			return

		case r == '\\':
			var ok bool

			pos, ok = l.decodeEscape(&sb, pos+1)
			bad = bad || !ok

		default:
			sb.WriteRune(r)

			pos++
		}
	}
}

// decodeEscape decodes the escape sequence following a backslash at
// src[pos-1] and returns the index just past it.
func (l *lexer) decodeEscape(sb *strings.Builder, pos int) (int, bool) {
	r := at(l.src, pos)

	switch r {
	case -1:
		return pos, true // reported as unterminated by the caller
	case '\n', 0x2028, 0x2029:
		return pos + 1, true
	case '\r':
		if at(l.src, pos+1) == '\n' {
			return pos + 2, true
		}

		return pos + 1, true
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'v':
		sb.WriteByte('\v')
	case '0':
		sb.WriteByte(0)
	case 'x':
		hi, lo := at(l.src, pos+1), at(l.src, pos+2)
		if !isHexDigit(hi) || !isHexDigit(lo) {
			return pos + 1, false
		}

		sb.WriteRune(hexValue(hi)<<4 | hexValue(lo))

		return pos + 3, true
	case 'u':
		u, next, ok := readUnicodeEscape(l.src, pos)
		if !ok {
			return next, false
		}

		// Join a UTF-16 surrogate pair written as two escapes.
		if utf16.IsSurrogate(u) && u < 0xDC00 &&
			at(l.src, next) == '\\' && at(l.src, next+1) == 'u' {
			if lo, after, ok := readUnicodeEscape(l.src, next+1); ok {
				if pair := utf16.DecodeRune(u, lo); pair != 0xFFFD {
					sb.WriteRune(pair)

					return after, true
				}
			}
		}

		sb.WriteRune(u)

		return next, true
	default:
		sb.WriteRune(r)
	}

	return pos + 1, true
}

func (l *lexer) scanIdentifier(start int) {
	var sb strings.Builder

	pos := start
	first := true

	valid := func(r rune) bool {
		if first {
			return isIdentifierStart(r)
		}

		return isIdentifierPart(r)
	}

	for pos < len(l.src) {
		r := l.src[pos]

		if r == '\\' {
			if at(l.src, pos+1) != 'u' {
				if first {
					l.fail(start, pos+1)

					return
				}

				break
			}

			u, next, ok := readUnicodeEscape(l.src, pos+1)
			if !ok || !valid(u) {
				l.fail(start, next)

				return
			}

			sb.WriteRune(u)

			pos = next
			first = false

			continue
		}

		if !valid(r) {
			break
		}

		sb.WriteRune(r)

		pos++
		first = false
	}

	l.pos = pos
	typ, lit, kw := token.LookupWord(sb.String())
	l.emit(typ, start, lit, kw)
}
