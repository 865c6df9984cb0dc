package lang

import "reflect"

// Gate decides whether a value resolved from an options record may be
// handed to the consumer. Object queries also consult the gate before a
// function is invoked.
type Gate interface {
	Supported(v any) bool
}

// GateFunc adapts a function to the [Gate] interface.
type GateFunc func(v any) bool

// Supported calls f(v).
func (f GateFunc) Supported(v any) bool { return f(v) }

// Processable is implemented by host values that decide for themselves
// whether they may be used from an options record.
type Processable interface {
	SupportedForProcessing() bool
}

// marked wraps a value the host has explicitly allowed.
type marked struct{ v any }

// Mark returns v wrapped as supported for declarative processing. Marked
// values pass [DefaultGate] and are unwrapped when resolved, so a marked
// function may be stored in a scope or function table and still be called.
func Mark(v any) any {
	if _, ok := v.(marked); ok {
		return v
	}

	return marked{v: v}
}

// IsMarked reports whether v was wrapped by [Mark].
func IsMarked(v any) bool {
	_, ok := v.(marked)

	return ok
}

// Unmark returns the value wrapped by [Mark], or v itself.
func Unmark(v any) any {
	if m, ok := v.(marked); ok {
		return m.v
	}

	return v
}

// DefaultGate allows data and rejects functions that were not marked.
//
// A marked value is always allowed. A [Processable] value is allowed when it
// says so. Any other Go function, including a [Func], is rejected. All other
// values are allowed.
//
//nolint:gochecknoglobals
var DefaultGate Gate = GateFunc(defaultSupported)

func defaultSupported(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case marked:
		return true
	case Processable:
		return v.SupportedForProcessing()
	}

	return reflect.TypeOf(v).Kind() != reflect.Func
}

// AllowAll is a [Gate] that accepts every value.
//
//nolint:gochecknoglobals
var AllowAll Gate = GateFunc(func(any) bool { return true })

// Func is the shape of a function invoked by an object query such as
// select('#id'). Plain func(string) any and func(string) (any, error) values
// are accepted as well.
type Func func(arg string) (any, error)

// callable converts a resolved function table entry to a [Func].
func callable(v any) (Func, bool) {
	switch f := Unmark(v).(type) {
	case Func:
		return f, f != nil
	case func(string) (any, error):
		return f, f != nil
	case func(string) any:
		if f == nil {
			return nil, false
		}

		return func(arg string) (any, error) { return f(arg), nil }, true
	case func(string) string:
		if f == nil {
			return nil, false
		}

		return func(arg string) (any, error) { return f(arg), nil }, true
	}

	return nil, false
}
