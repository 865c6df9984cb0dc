// Package token defines the lexical tokens of the options expression
// language.
package token

//go:generate go tool stringer --linecomment --type Type --output type_string.go

import (
	"strconv"
	"strings"
)

// Type is the type of a token.
type Type int

// The closed set of token types. Separator is reserved and never emitted by
// the lexer.
const (
	LeftBrace Type = iota // leftBrace
	RightBrace            // rightBrace
	LeftBracket           // leftBracket
	RightBracket          // rightBracket
	Separator             // separator
	Colon                 // colon
	Semicolon             // semicolon
	Comma                 // comma
	Dot                   // dot
	NullLiteral           // nullLiteral
	TrueLiteral           // trueLiteral
	FalseLiteral          // falseLiteral
	NumberLiteral         // numberLiteral
	StringLiteral         // stringLiteral
	Identifier            // identifier
	ReservedWord          // reservedWord
	ThisKeyword           // thisKeyword
	LeftParentheses       // leftParentheses
	RightParentheses      // rightParentheses
	EOF                   // eof
	Error                 // error
)

// Kind identifies which field of a [Literal] is meaningful.
type Kind uint8

const (
	KindNone Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
)

// Literal is the decoded value carried by a token.
type Literal struct {
	Kind   Kind
	Bool   bool
	Number float64
	String string
}

// Null returns the literal of a null token.
func Null() Literal { return Literal{Kind: KindNull} }

// Bool returns a boolean literal.
func Bool(v bool) Literal { return Literal{Kind: KindBool, Bool: v} }

// Number returns a numeric literal.
func Number(v float64) Literal { return Literal{Kind: KindNumber, Number: v} }

// String returns a string literal. Identifier names and the offending text of
// error tokens are also carried as string literals.
func String(v string) Literal { return Literal{Kind: KindString, String: v} }

// Value returns the literal as a Go value: nil, bool, float64 or string.
// A literal of kind [KindNone] also returns nil.
func (l Literal) Value() any {
	switch l.Kind {
	case KindBool:
		return l.Bool
	case KindNumber:
		return l.Number
	case KindString:
		return l.String
	default:
		return nil
	}
}

// Token represents a lexical token.
//
// Offset and Length count characters (Unicode code points), not bytes.
type Token struct {
	Type    Type
	Offset  int
	Length  int
	Literal Literal
	Keyword bool
}

// End returns the character offset just past the token.
func (t Token) End() int { return t.Offset + t.Length }

// Text returns the source characters spanned by the token.
func (t Token) Text(src []rune) string {
	if t.Offset < 0 || t.End() > len(src) {
		return ""
	}

	return string(src[t.Offset:t.End()])
}

// String renders the token for diagnostics.
func (t Token) String() string {
	var sb strings.Builder

	sb.WriteString(t.Type.String())

	switch t.Literal.Kind {
	case KindString:
		sb.WriteByte('(')
		sb.WriteString(strconv.Quote(t.Literal.String))
		sb.WriteByte(')')
	case KindNumber:
		sb.WriteByte('(')
		sb.WriteString(strconv.FormatFloat(t.Literal.Number, 'g', -1, 64))
		sb.WriteByte(')')
	}

	sb.WriteString("@")
	sb.WriteString(strconv.Itoa(t.Offset))
	sb.WriteByte('+')
	sb.WriteString(strconv.Itoa(t.Length))

	return sb.String()
}

// Punctuator returns the token type of a single-character punctuator.
func Punctuator(r rune) (Type, bool) {
	switch r {
	case '{':
		return LeftBrace, true
	case '}':
		return RightBrace, true
	case '[':
		return LeftBracket, true
	case ']':
		return RightBracket, true
	case '(':
		return LeftParentheses, true
	case ')':
		return RightParentheses, true
	case ':':
		return Colon, true
	case ';':
		return Semicolon, true
	case ',':
		return Comma, true
	case '.':
		return Dot, true
	}

	return Error, false
}
