package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ardnew/optexpr/lang/token"
)

func TestLookupWord(t *testing.T) {
	tests := []struct {
		word    string
		typ     token.Type
		value   any
		keyword bool
	}{
		{"null", token.NullLiteral, nil, true},
		{"true", token.TrueLiteral, true, true},
		{"false", token.FalseLiteral, false, true},
		{"this", token.ThisKeyword, "this", true},
		{"typeof", token.ReservedWord, "typeof", true},
		{"with", token.ReservedWord, "with", true},
		{"orientation", token.Identifier, "orientation", false},
		{"select", token.Identifier, "select", false},
		{"undefined", token.Identifier, "undefined", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			typ, lit, kw := token.LookupWord(tt.word)
			require.Equal(t, tt.typ, typ)
			require.Equal(t, tt.value, lit.Value())
			require.Equal(t, tt.keyword, kw)
		})
	}
}

func TestReservedWordsAreReserved(t *testing.T) {
	words := token.ReservedWords()
	require.Len(t, words, 32)

	for _, w := range words {
		typ, _, kw := token.LookupWord(w)
		require.Equal(t, token.ReservedWord, typ, w)
		require.True(t, kw, w)
	}
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "leftBrace", token.LeftBrace.String())
	require.Equal(t, "rightParentheses", token.RightParentheses.String())
	require.Equal(t, "eof", token.EOF.String())
	require.Equal(t, "Type(99)", token.Type(99).String())
	require.Equal(t, "Type(-1)", token.Type(-1).String())

	want := []string{
		"leftBrace", "rightBrace", "leftBracket", "rightBracket", "separator",
		"colon", "semicolon", "comma", "dot", "nullLiteral", "trueLiteral",
		"falseLiteral", "numberLiteral", "stringLiteral", "identifier",
		"reservedWord", "thisKeyword", "leftParentheses", "rightParentheses",
		"eof", "error",
	}
	for i, name := range want {
		require.Equal(t, name, token.Type(i).String())
	}
}

func TestTokenText(t *testing.T) {
	src := []rune("{ ä: 1 }")
	tok := token.Token{Type: token.Identifier, Offset: 2, Length: 1}
	require.Equal(t, "ä", tok.Text(src))
	require.Equal(t, 3, tok.End())

	bad := token.Token{Offset: 7, Length: 4}
	require.Empty(t, bad.Text(src))
}

func TestPunctuator(t *testing.T) {
	for r, want := range map[rune]token.Type{
		'{': token.LeftBrace, '}': token.RightBrace,
		'[': token.LeftBracket, ']': token.RightBracket,
		'(': token.LeftParentheses, ')': token.RightParentheses,
		':': token.Colon, ';': token.Semicolon,
		',': token.Comma, '.': token.Dot,
	} {
		got, ok := token.Punctuator(r)
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	_, ok := token.Punctuator('#')
	require.False(t, ok)
}
