package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ardnew/optexpr/lang"
	"github.com/ardnew/optexpr/lang/ast"
)

// Parse builds the syntax tree of an options record without resolving it.
type Parse struct {
	Input
	Output

	Tree   bool `help:"Print an indented node tree instead of the formatted record."`
	Cached bool `help:"Parse through the process-wide parse cache."`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	text, err := p.read(ctx)
	if err != nil {
		return err
	}

	parse := lang.ParseToAST
	if p.Cached {
		parse = lang.ParseToASTCached
	}

	tree, err := parse(ctx, text)
	if err != nil {
		return err
	}

	out := stdoutFrom(ctx)

	if p.Tree {
		var sb strings.Builder

		writeTree(&sb, "", tree, 0)

		if _, err := io.WriteString(out, sb.String()); err != nil {
			return ErrOutput.Wrap(err)
		}

		return nil
	}

	return p.write(ctx, out, tree)
}

// writeTree writes one line per node, children indented below their parent.
func writeTree(sb *strings.Builder, label string, v any, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))

	if label != "" {
		sb.WriteString(label)
		sb.WriteString(": ")
	}

	switch v := v.(type) {
	case map[string]any:
		fmt.Fprintf(sb, "Object (%d)\n", len(v))

		for _, k := range ast.SortedKeys(v) {
			writeTree(sb, ast.PropertyName(k), v[k], depth+1)
		}

	case []any:
		fmt.Fprintf(sb, "Array (%d)\n", len(v))

		for i, e := range v {
			writeTree(sb, fmt.Sprintf("[%d]", i), e, depth+1)
		}

	case *ast.IdentifierExpression:
		fmt.Fprintf(sb, "IdentifierExpression %s\n", v)

	case *ast.CallExpression:
		fmt.Fprintf(sb, "CallExpression %s\n", v)

	case lang.Undefined:
		sb.WriteString("Hole\n")

	default:
		fmt.Fprintf(sb, "Literal %s\n", ast.Source(v))
	}
}
