package lexer

// isWhitespace reports whether r is skipped as inter-token whitespace.
func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\v', '\f', ' ', 0x00A0, 0xFEFF,
		0x1680, 0x180E, 0x202F, 0x205F, 0x3000:
		return true
	}

	return r >= 0x2000 && r <= 0x200A
}

// isLineTerminator reports whether r ends a line.
func isLineTerminator(r rune) bool {
	switch r {
	case '\n', '\r', 0x2028, 0x2029:
		return true
	}

	return false
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexValue(r rune) rune {
	switch {
	case r >= 'a':
		return r - 'a' + 10
	case r >= 'A':
		return r - 'A' + 10
	default:
		return r - '0'
	}
}

func isIdentifierStart(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '$', r == '_':
		return true
	case r > 0x7F:
		return !isWhitespace(r) && !isLineTerminator(r)
	}

	return false
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || isDigit(r)
}

// at returns src[i], or -1 when i is out of range.
func at(src []rune, i int) rune {
	if i < 0 || i >= len(src) {
		return -1
	}

	return src[i]
}

// readUnicodeEscape decodes the escape whose 'u' is at src[i], in either the
// \uXXXX or the \u{X...} form. It returns the decoded rune and the index just
// past the escape. When the escape is malformed, ok is false and next is the
// index just past the consumed characters.
func readUnicodeEscape(src []rune, i int) (r rune, next int, ok bool) {
	j := i + 1

	if at(src, j) == '{' {
		j++
		digits := 0

		for isHexDigit(at(src, j)) {
			r = r<<4 | hexValue(src[j])
			if r > 0x10FFFF {
				return 0, j + 1, false
			}

			j++
			digits++
		}

		if digits == 0 || at(src, j) != '}' {
			return 0, j, false
		}

		return r, j + 1, true
	}

	for k := 0; k < 4; k++ {
		if !isHexDigit(at(src, j)) {
			return 0, j, false
		}

		r = r<<4 | hexValue(src[j])
		j++
	}

	return r, j, true
}
