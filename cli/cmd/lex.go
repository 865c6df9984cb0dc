package cmd

import (
	"context"

	"github.com/ardnew/optexpr/lang/lexer"
)

// Lex prints the token stream of an options record.
type Lex struct {
	Input
}

// Run executes the lex command.
func (l *Lex) Run(ctx context.Context) error {
	text, err := l.read(ctx)
	if err != nil {
		return err
	}

	if err := lexer.Dump(stdoutFrom(ctx), text, lexer.Lex(text)); err != nil {
		return ErrOutput.Wrap(err)
	}

	return nil
}
