package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/optexpr/lang/ast"
)

// FormatResult renders a value tree on a single line in options record
// syntax.
func FormatResult(v any) string { return ast.Source(v) }

// Format writes a value tree in options record syntax to the writer.
// With a positive indent, objects and arrays are spread over multiple lines.
// The output parses back to an equal tree.
func Format(w io.Writer, v any, indent int) error {
	var sb strings.Builder

	if indent > 0 {
		formatValue(&sb, v, strings.Repeat(" ", indent), 0)
	} else {
		sb.WriteString(ast.Source(v))
	}

	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())

	return err
}

func formatValue(sb *strings.Builder, v any, indent string, depth int) {
	pad := func(d int) {
		for range d {
			sb.WriteString(indent)
		}
	}

	switch v := v.(type) {
	case []any:
		if len(v) == 0 {
			sb.WriteString("[]")

			return
		}

		sb.WriteString("[\n")

		for i, e := range v {
			pad(depth + 1)

			_, hole := e.(Undefined)
			if !hole {
				formatValue(sb, e, indent, depth+1)
			}

			// A hole in last position needs its own comma.
			if i < len(v)-1 || hole {
				sb.WriteByte(',')
			}

			sb.WriteByte('\n')
		}

		pad(depth)
		sb.WriteByte(']')

	case map[string]any:
		if len(v) == 0 {
			sb.WriteString("{}")

			return
		}

		sb.WriteString("{\n")

		keys := ast.SortedKeys(v)
		for i, k := range keys {
			pad(depth + 1)
			sb.WriteString(ast.PropertyName(k))
			sb.WriteString(": ")
			formatValue(sb, v[k], indent, depth+1)

			if i < len(keys)-1 {
				sb.WriteByte(',')
			}

			sb.WriteByte('\n')
		}

		pad(depth)
		sb.WriteByte('}')

	default:
		sb.WriteString(ast.Source(v))
	}
}

// FormatJSON writes a value tree as JSON to the writer.
// Undefined values are written as null and AST nodes as tagged objects.
func FormatJSON(w io.Writer, v any, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(v)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes a value tree as YAML to the writer.
// A zero indent selects flow style.
func FormatYAML(ctx context.Context, w io.Writer, v any, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, v, opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}
