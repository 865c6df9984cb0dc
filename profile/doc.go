// Package profile provides optional runtime profiling through
// [github.com/pkg/profile].
//
// Profiling must be enabled at build time with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Modes] is empty and [Profiler.Start] returns a no-op
// controller, so callers never need their own build constraints.
//
//	p := profile.Make(profile.WithMode("cpu"), profile.WithPath(dir))
//	defer p.Start().Stop()
//
// Profile files are written to the configured directory with names matching
// the mode (cpu.pprof, mem.pprof, and so on) and can be inspected with
// "go tool pprof".
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
