package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/optexpr/lang"
	"github.com/ardnew/optexpr/log"
	"github.com/ardnew/optexpr/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// Init generates a configuration file from the current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ErrWriteConfig.With(slog.String("issue", "no command context"))
	}

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		return ErrWriteConfig.With(slog.String("issue", "config path undefined"))
	}

	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath), slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	file, err := os.Create(confPath)
	if err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}
	defer file.Close()

	if err := lang.Format(file, configRecord(ktx), defaultConfigIndent); err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath))

	return nil
}

// configRecord builds the options record of the application-level flags.
// A flag named "log-level" is stored as { log: { level: ... } }.
func configRecord(ktx *kong.Context) map[string]any {
	record := map[string]any{}

	ignore := []string{"help", profile.Tag}

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(ignore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		v, ok := recordValue(ktx.FlagValue(flag))
		if !ok {
			continue
		}

		group, name, nested := strings.Cut(flag.Name, "-")
		if !nested {
			record[flag.Name] = v

			continue
		}

		sub, _ := record[group].(map[string]any)
		if sub == nil {
			sub = map[string]any{}
			record[group] = sub
		}

		sub[name] = v
	}

	return record
}

// recordValue converts a flag value to the engine's value model.
// Empty strings and empty lists are omitted.
func recordValue(v any) (any, bool) {
	switch v := v.(type) {
	case nil:
		return nil, false
	case bool:
		return v, true
	case string:
		return v, v != ""
	case fmt.Stringer:
		s := v.String()

		return s, s != ""
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.String:
		return rv.String(), rv.Len() > 0
	case reflect.Slice:
		if rv.Len() == 0 {
			return nil, false
		}

		out := make([]any, 0, rv.Len())

		for i := range rv.Len() {
			if e, ok := recordValue(rv.Index(i).Interface()); ok {
				out = append(out, e)
			}
		}

		return out, true
	default:
		return fmt.Sprint(v), true
	}
}
