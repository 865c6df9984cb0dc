package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/optexpr/lang"
)

// Gen prints the expr-lang program generated from an options record.
type Gen struct {
	Input
}

// Run executes the gen command.
func (g *Gen) Run(ctx context.Context) error {
	text, err := g.read(ctx)
	if err != nil {
		return err
	}

	prog, err := lang.Compile(ctx, text)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(stdoutFrom(ctx), prog.Code()); err != nil {
		return ErrOutput.Wrap(err)
	}

	return nil
}
