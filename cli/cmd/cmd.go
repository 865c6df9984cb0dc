package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/optexpr/lang"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	stdinKey  struct{}
	stdoutKey struct{}
)

// WithStdio returns a new context.Context whose commands read standard input
// from in and write results to out. A nil reader or writer keeps the
// process default.
func WithStdio(ctx context.Context, in io.Reader, out io.Writer) context.Context {
	if in != nil {
		ctx = context.WithValue(ctx, stdinKey{}, in)
	}

	if out != nil {
		ctx = context.WithValue(ctx, stdoutKey{}, out)
	}

	return ctx
}

func stdinFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(stdinKey{}).(io.Reader); ok {
		return r
	}

	// An interactive terminal is never treated as piped input.
	if info, err := os.Stdin.Stat(); err == nil &&
		info.Mode()&os.ModeCharDevice != 0 {
		return nil
	}

	return os.Stdin
}

func stdoutFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(stdoutKey{}).(io.Writer); ok {
		return w
	}

	return os.Stdout
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// Input selects where a command reads its options record from.
type Input struct {
	Text string `arg:"" help:"Options record text. Read from --file when omitted." optional:""`
	File string `       help:"Source file or '-' for stdin."                        default:"-" short:"f" type:"path"`
}

// read returns the options record text.
func (in Input) read(ctx context.Context) (string, error) {
	if in.Text != "" {
		return in.Text, nil
	}

	var r io.Reader

	if in.File == "" || in.File == stdinSource {
		r = stdinFrom(ctx)
		if r == nil {
			return "", ErrNoInput
		}
	} else {
		file, err := os.Open(in.File)
		if err != nil {
			return "", ErrReadInput.Wrap(err).With(slog.String("file", in.File))
		}
		defer file.Close()

		r = file
	}

	text, err := lang.ReadSource(r)
	if err != nil {
		return "", ErrReadInput.Wrap(err).With(slog.String("file", in.File))
	}

	return text, nil
}
