package lang

import (
	"context"
	"io"
	"log/slog"

	"github.com/klauspost/readahead"

	"github.com/ardnew/optexpr/lang/lexer"
)

// Evaluate interprets text as an options record and returns its value tree.
//
// Identifier expressions resolve against the scope (see [WithScope]) and
// object queries call functions from the function table (see [WithFuncs]).
// Resolved values and called functions must pass the gate (see [WithGate]).
// Grammar errors are returned as [*ParseError]; denied values as
// [*AccessError].
func Evaluate(ctx context.Context, text string, opts ...Option) (any, error) {
	cfg := makeConfig(opts...)

	return run(ctx, cfg, text, newInterpreter(ctx, cfg), "evaluate")
}

// ParseToAST parses text as an options record without resolving anything.
// Identifier expressions and object queries are returned as
// [*ast.IdentifierExpression] and [*ast.CallExpression] nodes.
func ParseToAST(ctx context.Context, text string, opts ...Option) (any, error) {
	cfg := makeConfig(opts...)

	return run(ctx, cfg, text, builder{}, "parse")
}

// Resolve evaluates a tree returned by [ParseToAST] as [Evaluate] would have
// evaluated its source. Object members are resolved in no particular order.
func Resolve(ctx context.Context, tree any, opts ...Option) (any, error) {
	cfg := makeConfig(opts...)

	v, err := newInterpreter(ctx, cfg).resolve(tree)
	if err != nil {
		return nil, err
	}

	cfg.logger.TraceContext(ctx, "resolve complete",
		slog.String("result_type", resultTypeName(v)))

	return v, nil
}

func run(
	ctx context.Context,
	cfg config,
	text string,
	s strategy,
	mode string,
) (any, error) {
	src := []rune(text)
	tokens := lexer.Lex(text)

	cfg.logger.TraceContext(ctx, "lex complete",
		slog.String("mode", mode),
		slog.Int("source_length", len(src)),
		slog.Int("tokens", len(tokens)),
	)

	v, err := newWalker(src, tokens, s, cfg.maxDepth).readOptionsLiteral()
	if err != nil {
		cfg.logger.TraceContext(ctx, mode+" failed", slog.Any("error", err))

		return nil, err
	}

	cfg.logger.TraceContext(ctx, mode+" complete",
		slog.String("result_type", resultTypeName(v)))

	return v, nil
}

// ReadSource reads an options record from r.
func ReadSource(r io.Reader) (string, error) {
	// Wrap reader with async read-ahead for concurrent I/O.
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return "", ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	return string(data), nil
}
