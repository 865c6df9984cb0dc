package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/optexpr/lang"
	"github.com/ardnew/optexpr/lang/ast"
	"github.com/ardnew/optexpr/log"
)

// resolve returns a [kong.ConfigurationLoader] for config files written as
// an options record.
//
// Nested objects are flattened into flag names joined by hyphens, so
//
//	{
//	  log: { level: 'debug', pretty: false },
//	  pprof: { mode: 'cpu' },
//	}
//
// is applied as --log-level=debug --no-log-pretty --pprof-mode=cpu.
// Underscores may stand in for hyphens in key names. Identifiers in the file
// resolve against an empty scope and no functions are available.
// A file that fails to evaluate is logged and ignored.
//
// Command-line flags override config file values.
func resolve(ctx context.Context) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		text, err := lang.ReadSource(r)
		if err != nil {
			return nil, err
		}

		v, err := lang.Evaluate(ctx, text, lang.WithScope(map[string]any{}))
		if err != nil {
			log.WarnContext(ctx, "ignoring configuration file",
				slog.Any("error", err))

			return config{}, nil
		}

		m, ok := v.(map[string]any)
		if !ok {
			return config{}, nil
		}

		cfg := config{}
		cfg.flatten("", m)

		return cfg, nil
	}
}

// config implements [kong.Resolver] over flattened flag names.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	return nil, nil
}

// flatten stores the members of m under prefix. Kong parses numbers and
// lists from their string forms.
func (c config) flatten(prefix string, m map[string]any) {
	for k, v := range m {
		name := prefix + strings.ReplaceAll(k, "_", "-")

		switch v := v.(type) {
		case map[string]any:
			c.flatten(name+"-", v)

		case nil, lang.Undefined:

		case float64:
			c[name] = ast.FormatNumber(v)

		case []any:
			items := make([]string, 0, len(v))

			for _, e := range v {
				switch e := e.(type) {
				case nil, lang.Undefined:
				case string:
					items = append(items, e)
				default:
					items = append(items, lang.PropertyKey(e))
				}
			}

			c[name] = strings.Join(items, ",")

		default:
			c[name] = v
		}
	}
}
