package lang

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ardnew/optexpr/lang/ast"
	"github.com/ardnew/optexpr/log"
)

// interpreter resolves identifier expressions and object queries while the
// grammar is walked, producing a plain value tree.
type interpreter struct {
	ctx    context.Context //nolint:containedctx
	scope  any
	funcs  map[string]any
	gate   Gate
	logger log.Logger
}

func newInterpreter(ctx context.Context, c config) *interpreter {
	return &interpreter{
		ctx:    ctx,
		scope:  c.scope,
		funcs:  c.funcs,
		gate:   c.gate,
		logger: c.logger,
	}
}

func (in *interpreter) identifierExpression(parts []any) (any, error) {
	root, _ := parts[0].(string)

	var v any
	if root == "this" {
		v = in.scope
	} else if in.scope != nil {
		v, _ = index(Unmark(in.scope), root)
	} else {
		v = Undefined{}
	}

	v, err := in.access(v, root, parts[1:])
	if err != nil {
		return nil, err
	}

	if !in.gate.Supported(v) {
		path := pathString(parts)

		in.logger.TraceContext(in.ctx, "access denied",
			slog.String("path", path))

		return nil, &AccessError{Name: path}
	}

	return Unmark(v), nil
}

func (in *interpreter) objectQuery(
	name, arg string,
	access []any,
) (any, error) {
	fn, ok := in.funcs[name]
	if !ok {
		return nil, ErrFunctionNotFound.With(slog.String("name", name))
	}

	if !in.gate.Supported(fn) {
		in.logger.TraceContext(in.ctx, "access denied",
			slog.String("function", name))

		return nil, &AccessError{Name: name}
	}

	call, ok := callable(fn)
	if !ok {
		return nil, ErrCall.With(
			slog.String("name", name),
			slog.String("issue", "not a function"),
		)
	}

	in.logger.TraceContext(in.ctx, "object query",
		slog.String("name", name),
		slog.String("arg", arg),
	)

	v, err := call(arg)
	if err != nil {
		return nil, ErrCall.Wrap(err).With(
			slog.String("name", name),
			slog.String("arg", arg),
		)
	}

	return in.access(v, name+"()", access)
}

// access applies each member access to v in turn.
func (in *interpreter) access(v any, path string, keys []any) (any, error) {
	for _, key := range keys {
		v = Unmark(v)

		switch v.(type) {
		case nil, Undefined:
			return nil, ErrMemberAccess.With(
				slog.String("path", path),
				slog.String("key", PropertyKey(key)),
			)
		}

		v, _ = index(v, Unmark(key))
		path += "." + PropertyKey(key)
	}

	return v, nil
}

// pathString renders the parts of an identifier expression for messages.
func pathString(parts []any) string {
	var sb strings.Builder

	for i, p := range parts {
		if i > 0 {
			sb.WriteByte('.')
		}

		switch p := p.(type) {
		case *ast.CallExpression:
			sb.WriteString(p.String())
		default:
			sb.WriteString(PropertyKey(p))
		}
	}

	return sb.String()
}
