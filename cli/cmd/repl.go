package cmd

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/ardnew/optexpr/cli/cmd/repl"
	"github.com/ardnew/optexpr/log"
)

// Repl starts an interactive evaluation session.
type Repl struct {
	Scope

	NoHistory bool `help:"Do not read or write the history file."`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	env, err := r.load(ctx)
	if err != nil {
		return err
	}

	var path string

	if ktx := kongContextFrom(ctx); ktx != nil && !r.NoHistory {
		if dir, ok := ktx.Model.Vars()[CacheIdentifier]; ok {
			path = filepath.Join(dir, repl.BaseHistory)
		}
	}

	return repl.Run(ctx,
		repl.Env{
			Scope:  env.scope,
			Funcs:  env.funcs,
			Logger: log.With(slog.String("command", "repl")),
		},
		repl.NewHistory(path),
	)
}
