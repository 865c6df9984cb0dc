package lang

import (
	"github.com/ardnew/optexpr/log"
)

// DefaultMaxDepth is the default maximum nesting depth of values in an
// options record. Users may modify this before parsing to change the default.
//
//nolint:gochecknoglobals
var DefaultMaxDepth = 256

// config holds the settings of a single evaluation or parse.
type config struct {
	scope    any
	funcs    map[string]any
	gate     Gate
	logger   log.Logger
	maxDepth int
}

// Option configures parsing or evaluation behavior.
type Option func(*config)

// WithScope sets the object that identifier expressions resolve against.
// The expression this evaluates to the scope itself. If not provided,
// [Globals] is used.
func WithScope(scope any) Option {
	return func(c *config) {
		c.scope = scope
	}
}

// WithFuncs sets the table of functions available to object queries.
// Entries must pass the gate, usually by wrapping them with [Mark].
func WithFuncs(funcs map[string]any) Option {
	return func(c *config) {
		c.funcs = funcs
	}
}

// WithGate replaces [DefaultGate]. A nil gate restores the default.
func WithGate(gate Gate) Option {
	return func(c *config) {
		c.gate = gate
	}
}

// WithMaxDepth sets the maximum nesting depth of values.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func makeConfig(opts ...Option) config {
	c := config{
		scope:    Globals,
		gate:     DefaultGate,
		maxDepth: DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(&c)
	}

	if c.gate == nil {
		c.gate = DefaultGate
	}

	if c.funcs == nil {
		c.funcs = map[string]any{}
	}

	return c
}
