// Package log provides a simplified structured logging interface based on
// [log/slog].
//
// A [Logger] is an immutable value. Options such as [WithLevel] and
// [WithFormat] are applied when it is created with [Make] or derived with
// [Logger.Wrap]; the zero value discards everything, so packages can hold
// a Logger field without checking for nil.
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatJSON))
//	logger.Info("evaluated", slog.String("source", "inline"))
//
// In addition to the four slog levels, [LevelTrace] sits below Debug and is
// used for the per-step evaluation records of the expression engine.
//
// # Tee Output
//
// [WithTee] copies every emitted record as JSON to a second writer, which
// lets a terminal session keep colorized output while a file collects
// machine-readable records.
//
// # Package Logger
//
// The package-level functions ([Info], [Error] and so on) write through a
// default logger that starts on standard error with [DefaultLevel] and is
// reconfigured with [Config].
package log
