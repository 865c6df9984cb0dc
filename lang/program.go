package lang

import (
	"context"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Program is an options record compiled to an expr-lang program. It can be
// run many times against different scopes without parsing the source again.
type Program struct {
	source  string
	code    string
	program *vm.Program
}

// Compile parses text and compiles the generated expr-lang source.
func Compile(ctx context.Context, text string, opts ...Option) (*Program, error) {
	cfg := makeConfig(opts...)

	tree, err := ParseToAST(ctx, text, opts...)
	if err != nil {
		return nil, err
	}

	code, err := Generate(tree)
	if err != nil {
		return nil, err
	}

	program, err := expr.Compile(code, expr.Env(programEnv(nil, nil)))
	if err != nil {
		return nil, ErrCompile.Wrap(err).
			With(slog.String("code", code))
	}

	cfg.logger.TraceContext(ctx, "compile complete",
		slog.Int("source_length", len(text)),
		slog.Int("code_length", len(code)),
	)

	return &Program{source: text, code: code, program: program}, nil
}

// Source returns the options record the program was compiled from.
func (p *Program) Source() string { return p.source }

// Code returns the generated expr-lang source.
func (p *Program) Code() string { return p.code }

// Run evaluates the program. Only [WithScope], [WithFuncs], [WithGate] and
// [WithLogger] are meaningful here.
func (p *Program) Run(ctx context.Context, opts ...Option) (any, error) {
	cfg := makeConfig(opts...)
	in := newInterpreter(ctx, cfg)

	// Errors raised by resolution are reported as is rather than through the
	// error type of the expr runtime.
	var cause error

	out, err := expr.Run(p.program, programEnv(in, &cause))
	if cause != nil {
		return nil, cause
	}

	if err != nil {
		return nil, ErrRun.Wrap(err).
			With(slog.String("code", p.code))
	}

	cfg.logger.TraceContext(ctx, "run complete",
		slog.String("result_type", resultTypeName(out)))

	return out, nil
}

// programEnv binds the names used by generated code to in. A nil
// interpreter yields an environment usable only for type checking.
func programEnv(in *interpreter, cause *error) map[string]any {
	fail := func(err error) (any, error) {
		if cause != nil && *cause == nil {
			*cause = err
		}

		return nil, err
	}

	return map[string]any{
		undefinedVar: Undefined{},

		identFunc: func(parts ...any) (any, error) {
			if in == nil {
				return nil, nil //nolint:nilnil
			}

			if len(parts) == 0 {
				return fail(ErrRun.With(slog.String("issue", "missing identifier")))
			}

			if _, ok := parts[0].(string); !ok {
				return fail(ErrRun.With(slog.String("issue", "invalid identifier")))
			}

			v, err := in.identifierExpression(parts)
			if err != nil {
				return fail(err)
			}

			return v, nil
		},

		callFunc: func(args ...any) (any, error) {
			if in == nil {
				return nil, nil //nolint:nilnil
			}

			if len(args) < 2 { //nolint:mnd
				return fail(ErrRun.With(slog.String("issue", "missing call target")))
			}

			name, ok1 := args[0].(string)
			arg, ok2 := args[1].(string)

			if !ok1 || !ok2 {
				return fail(ErrRun.With(slog.String("issue", "invalid call target")))
			}

			v, err := in.objectQuery(name, arg, args[2:])
			if err != nil {
				return fail(err)
			}

			return v, nil
		},
	}
}
