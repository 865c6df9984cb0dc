package cmd

import (
	"bytes"
	"errors"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/ardnew/mung"
	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/optexpr/lang"
)

// hostFuncs returns the functions available to object queries, bound to env.
// All of them are marked supported for declarative processing.
func hostFuncs(env *environment) map[string]any {
	return map[string]any{
		"select":   lang.Mark(lang.Func(env.selectPath)),
		"expr":     lang.Mark(lang.Func(env.evalExpr)),
		"env":      lang.Mark(lookupEnv),
		"pathlist": lang.Mark(pathList),
	}
}

// selectPath reads the value at a YAML path ("$.a.b[0]") from the scope
// document. The leading "$." may be omitted.
func (env *environment) selectPath(path string) (any, error) {
	if !strings.HasPrefix(path, "$") {
		path = "$." + path
	}

	p, err := yaml.PathString(path)
	if err != nil {
		return nil, ErrSelect.Wrap(err).With(slog.String("path", path))
	}

	if len(env.doc) == 0 {
		return lang.Undefined{}, nil
	}

	var v any
	if err := p.Read(bytes.NewReader(env.doc), &v); err != nil {
		if errors.Is(err, yaml.ErrNotFoundNode) {
			return lang.Undefined{}, nil
		}

		return nil, ErrSelect.Wrap(err).With(slog.String("path", path))
	}

	return normalize(v), nil
}

// evalExpr evaluates an expr-lang expression with the scope as environment.
func (env *environment) evalExpr(source string) (any, error) {
	v, err := expr.Eval(source, env.scope)
	if err != nil {
		return nil, ErrExpr.Wrap(err).With(slog.String("source", source))
	}

	return normalize(v), nil
}

// lookupEnv returns the value of an environment variable, or undefined.
func lookupEnv(name string) any {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}

	return lang.Undefined{}
}

// pathList returns the value of the named PATH-like variable with empty and
// duplicate entries removed, or undefined if the variable is not set.
func pathList(name string) any {
	value, ok := os.LookupEnv(name)
	if !ok {
		return lang.Undefined{}
	}

	return mung.Make(
		mung.WithSubjectItems(value),
		mung.WithDelim(string(os.PathListSeparator)),
	).String()
}

// suggest returns the closest function name when err reports an unknown
// function, or "" otherwise.
func suggest(err error, funcs map[string]any) string {
	var le *lang.Error
	if !errors.Is(err, lang.ErrFunctionNotFound) || !errors.As(err, &le) {
		return ""
	}

	var name string

	for _, a := range le.Attrs() {
		if a.Key == "name" {
			name = a.Value.String()
		}
	}

	if name == "" {
		return ""
	}

	matches := fuzzy.Find(name, slices.Sorted(maps.Keys(funcs)))
	if len(matches) == 0 {
		return ""
	}

	return matches[0].Str
}
