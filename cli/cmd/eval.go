package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/optexpr/lang"
	"github.com/ardnew/optexpr/log"
)

// Eval evaluates an options record against a scope.
type Eval struct {
	Input
	Scope
	Output

	Compiled bool `help:"Evaluate through a compiled expr program instead of the interpreter."`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	text, err := e.read(ctx)
	if err != nil {
		return err
	}

	env, err := e.load(ctx)
	if err != nil {
		return err
	}

	logger := log.With(slog.String("command", "eval"))
	opts := env.options(logger)

	var v any

	if e.Compiled {
		var prog *lang.Program

		prog, err = lang.Compile(ctx, text, lang.WithLogger(logger))
		if err == nil {
			v, err = prog.Run(ctx, opts...)
		}
	} else {
		v, err = lang.Evaluate(ctx, text, opts...)
	}

	if err != nil {
		if hint := suggest(err, env.funcs); hint != "" {
			return lang.WrapError(err).With(slog.String("did_you_mean", hint))
		}

		return err
	}

	return e.write(ctx, stdoutFrom(ctx), v)
}
