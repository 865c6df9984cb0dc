package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/optexpr/lang"
)

// Output selects how a value tree is written.
type Output struct {
	Output string `default:"native" enum:"native,json,yaml" help:"Output format (${enum})." short:"o"`
	Indent int    `default:"0"                              help:"Indent width; 0 writes a single line." short:"i"`
}

func (o Output) write(ctx context.Context, w io.Writer, v any) error {
	var err error

	switch o.Output {
	case "json":
		err = lang.FormatJSON(w, v, o.Indent)
	case "yaml":
		indent := o.Indent
		if indent <= 0 {
			indent = 2
		}

		err = lang.FormatYAML(ctx, w, v, indent)
	default:
		err = lang.Format(w, v, o.Indent)
	}

	if err != nil {
		return ErrOutput.Wrap(err).With(slog.String("format", o.Output))
	}

	return nil
}
