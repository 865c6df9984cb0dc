package lang

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/ardnew/optexpr/lang/ast"
)

// Names bound in the environment of generated programs.
const (
	identFunc    = "__ident"
	callFunc     = "__call"
	undefinedVar = "__undefined"
)

// Generate translates a tree returned by [ParseToAST] into expr-lang source.
//
// Objects and arrays become map and array literals, numbers become float
// literals and elision holes become __undefined. An identifier expression
// becomes a call __ident(root, keys...) and an object query a call
// __call(name, arg, keys...); a [Program] binds both to the same resolution
// and gate rules [Evaluate] uses.
func Generate(tree any) (string, error) {
	var sb strings.Builder

	if err := generate(&sb, tree); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func generate(sb *strings.Builder, v any) error {
	switch v := v.(type) {
	case nil:
		sb.WriteString("nil")

	case bool:
		sb.WriteString(strconv.FormatBool(v))

	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrGenerate.With(
				slog.String("issue", "non-finite number"),
				slog.Float64("value", v),
			)
		}

		s := strconv.FormatFloat(v, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}

		sb.WriteString(s)

	case string:
		sb.WriteString(strconv.Quote(v))

	case Undefined:
		sb.WriteString(undefinedVar)

	case []any:
		sb.WriteByte('[')

		for i, e := range v {
			if i > 0 {
				sb.WriteString(", ")
			}

			if err := generate(sb, e); err != nil {
				return err
			}
		}

		sb.WriteByte(']')

	case map[string]any:
		sb.WriteByte('{')

		for i, k := range ast.SortedKeys(v) {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(strconv.Quote(k))
			sb.WriteString(": ")

			if err := generate(sb, v[k]); err != nil {
				return err
			}
		}

		sb.WriteByte('}')

	case *ast.CallExpression:
		return generateCall(sb, callFunc, v.Target, v.Arg, nil)

	case *ast.IdentifierExpression:
		if len(v.Parts) == 0 {
			return ErrGenerate.With(slog.String("issue", "empty identifier expression"))
		}

		switch root := v.Parts[0].(type) {
		case *ast.CallExpression:
			return generateCall(sb, callFunc, root.Target, root.Arg, v.Parts[1:])
		case string:
			return generateCall(sb, identFunc, root, "", v.Parts[1:])
		default:
			return ErrGenerate.With(
				slog.String("issue", "invalid identifier root"),
				slog.String("type", resultTypeName(root)),
			)
		}

	default:
		return ErrGenerate.With(
			slog.String("issue", "unsupported value"),
			slog.String("type", resultTypeName(v)),
		)
	}

	return nil
}

// generateCall writes fn(name[, arg], keys...). The argument is omitted for
// identifier expressions.
func generateCall(
	sb *strings.Builder,
	fn, name, arg string,
	keys []any,
) error {
	sb.WriteString(fn)
	sb.WriteByte('(')
	sb.WriteString(strconv.Quote(name))

	if fn == callFunc {
		sb.WriteString(", ")
		sb.WriteString(strconv.Quote(arg))
	}

	for _, key := range keys {
		sb.WriteString(", ")

		if err := generate(sb, key); err != nil {
			return err
		}
	}

	sb.WriteByte(')')

	return nil
}
