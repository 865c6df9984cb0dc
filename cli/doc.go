// Package cli contains the command line interface for optexpr.
//
// # Usage
//
// Evaluate is the default command:
//
//	optexpr "{ color: theme.accent }" --scope scope.yaml
//	optexpr parse --tree -f record.opts
//	optexpr repl --scope scope.yaml
//
// # Configuration
//
// Flag defaults are read from two files in the user configuration directory
// ($XDG_CONFIG_HOME/optexpr): config.json, in the form kong reads natively,
// and config, written as an options record. Nested objects in the record
// name hyphenated flags:
//
//	{ log: { level: 'info', pretty: false } }
//
// The init command writes the current flag values to config.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp layout (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//   - --log-tee: Also append JSON log records to a file
//
// # Profiling Options
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default
//     ~/.cache/optexpr/pprof)
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o optexpr .
package cli
