package token

// reserved lists the words that cannot be used as identifiers.
//
//nolint:gochecknoglobals
var reserved = map[string]struct{}{
	"break": {}, "case": {}, "catch": {}, "class": {}, "const": {},
	"continue": {}, "debugger": {}, "default": {}, "delete": {}, "do": {},
	"else": {}, "enum": {}, "export": {}, "extends": {}, "finally": {},
	"for": {}, "function": {}, "if": {}, "import": {}, "in": {},
	"instanceof": {}, "new": {}, "return": {}, "super": {}, "switch": {},
	"throw": {}, "try": {}, "typeof": {}, "var": {}, "void": {},
	"while": {}, "with": {},
}

// ReservedWords returns the reserved words in no particular order.
func ReservedWords() []string {
	words := make([]string, 0, len(reserved))
	for w := range reserved {
		words = append(words, w)
	}

	return words
}

// LookupWord classifies a decoded identifier name.
//
// It returns the token type, the literal the token carries and whether the
// word is a keyword. null, true, false and this have dedicated types; the
// reserved words yield [ReservedWord]; everything else is an [Identifier].
func LookupWord(name string) (Type, Literal, bool) {
	switch name {
	case "null":
		return NullLiteral, Null(), true
	case "true":
		return TrueLiteral, Bool(true), true
	case "false":
		return FalseLiteral, Bool(false), true
	case "this":
		return ThisKeyword, String(name), true
	}

	if _, ok := reserved[name]; ok {
		return ReservedWord, String(name), true
	}

	return Identifier, String(name), false
}

// ValueStart lists the token types that may begin a value.
func ValueStart() []Type {
	return []Type{
		NullLiteral,
		TrueLiteral,
		FalseLiteral,
		NumberLiteral,
		StringLiteral,
		LeftBrace,
		LeftBracket,
		Identifier,
		ThisKeyword,
	}
}
