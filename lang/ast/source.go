package ast

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Source renders a value tree in compact options expression syntax.
//
// Object keys are sorted so that the output is deterministic. The rendering
// parses back to an equal tree, except for opaque host values, which are
// rendered as strings.
func Source(v any) string {
	var sb strings.Builder

	writeSource(&sb, v)

	return sb.String()
}

func writeSource(sb *strings.Builder, v any) {
	switch v := v.(type) {
	case nil:
		sb.WriteString("null")
	case bool:
		sb.WriteString(strconv.FormatBool(v))
	case float64:
		sb.WriteString(sourceNumber(v))
	case int:
		sb.WriteString(strconv.Itoa(v))
	case string:
		sb.WriteString(Quote(v))
	case Undefined:
		sb.WriteString("undefined")
	case Node:
		sb.WriteString(v.String())
	case []any:
		sb.WriteByte('[')

		for i, e := range v {
			if i > 0 {
				sb.WriteString(", ")
			}

			if _, hole := e.(Undefined); !hole {
				writeSource(sb, e)
			}
		}

		// A trailing comma alone does not make a hole.
		if n := len(v); n > 0 {
			if _, hole := v[n-1].(Undefined); hole {
				sb.WriteByte(',')
			}
		}

		sb.WriteByte(']')
	case map[string]any:
		sb.WriteByte('{')

		for i, k := range SortedKeys(v) {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(PropertyName(k))
			sb.WriteString(": ")
			writeSource(sb, v[k])
		}

		sb.WriteByte('}')
	default:
		sb.WriteString(Quote(fmt.Sprint(v)))
	}
}

// SortedKeys returns the keys of m in lexical order.
func SortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// PropertyName renders k as an object key, bare when it is a valid
// identifier name and quoted otherwise.
func PropertyName(k string) string {
	if IsIdentifierName(k) {
		return k
	}

	return Quote(k)
}

// sourceNumber renders f so that it lexes back to the same value.
func sourceNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "1e999"
	case math.IsInf(f, -1):
		return "-1e999"
	}

	return FormatNumber(f)
}

// FormatNumber converts f to a string the way a JavaScript engine converts a
// number used as a property name.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// Exponent form without the zero padding Go adds: 1e+21, 1.5e-7.
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")

	return mant + "e" + sign + digits
}

// Quote renders s as a single-quoted string literal.
func Quote(s string) string {
	var sb strings.Builder

	sb.Grow(len(s) + 2)
	sb.WriteByte('\'')

	for _, r := range s {
		switch r {
		case '\'':
			sb.WriteString(`\'`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\v':
			sb.WriteString(`\v`)
		default:
			if r < 0x20 || r == 0x7F || r == 0x2028 || r == 0x2029 {
				fmt.Fprintf(&sb, `\u%04X`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}

	sb.WriteByte('\'')

	return sb.String()
}

// IsIdentifierName reports whether s can be written as a bare property name
// or dotted member. Reserved words qualify in those positions.
func IsIdentifierName(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '$', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			// Non-ASCII names are valid but quoted to keep rendering portable.
			return false
		}
	}

	return true
}
