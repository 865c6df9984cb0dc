package cmd

import (
	"context"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/optexpr/lang"
	"github.com/ardnew/optexpr/log"
)

// Scope selects the values identifier expressions resolve against.
type Scope struct {
	Scope string            `help:"YAML or JSON document providing identifier values." placeholder:"FILE" type:"existingfile"`
	Set   map[string]string `help:"Define a string value in the scope."                 placeholder:"KEY=VALUE" short:"D"`
}

// environment is a loaded scope together with the host functions bound to it.
type environment struct {
	doc   []byte
	scope map[string]any
	funcs map[string]any
}

// load reads the scope document and applies the --set definitions.
func (s Scope) load(ctx context.Context) (*environment, error) {
	env := &environment{scope: map[string]any{}}

	if s.Scope != "" {
		doc, err := os.ReadFile(s.Scope)
		if err != nil {
			return nil, ErrLoadScope.Wrap(err).With(slog.String("file", s.Scope))
		}

		var v any
		if err := yaml.UnmarshalContext(ctx, doc, &v); err != nil {
			return nil, ErrLoadScope.Wrap(err).With(slog.String("file", s.Scope))
		}

		switch m := normalize(v).(type) {
		case map[string]any:
			env.scope = m
		case nil:
		default:
			return nil, ErrLoadScope.With(
				slog.String("file", s.Scope),
				slog.String("issue", "document is not a mapping"),
			)
		}

		env.doc = doc
	}

	for _, key := range slices.Sorted(maps.Keys(s.Set)) {
		env.scope[key] = s.Set[key]
	}

	env.funcs = hostFuncs(env)

	log.TraceContext(ctx, "scope loaded",
		slog.String("file", s.Scope),
		slog.Int("keys", len(env.scope)),
	)

	return env, nil
}

// options returns the evaluation options for the environment.
func (env *environment) options(logger log.Logger) []lang.Option {
	return []lang.Option{
		lang.WithScope(env.scope),
		lang.WithFuncs(env.funcs),
		lang.WithLogger(logger),
	}
}

// normalize converts decoded YAML into the engine's value model: numbers
// become float64 and mappings become map[string]any.
func normalize(v any) any {
	switch v := v.(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case float32:
		return float64(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = normalize(e)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = normalize(e)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[lang.PropertyKey(normalize(k))] = normalize(e)
		}

		return out
	default:
		return v
	}
}
