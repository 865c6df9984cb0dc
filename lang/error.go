package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ardnew/optexpr/lang/token"
)

// Predefined errors (sentinel values).
var (
	ErrParse            = NewError("invalid options record")
	ErrMaxDepthExceeded = NewError("maximum nesting depth exceeded")
	ErrAccessDenied     = NewError("access denied")
	ErrFunctionNotFound = NewError("function not found")
	ErrMemberAccess     = NewError("cannot read property of undefined or null")
	ErrCall             = NewError("function call failed")
	ErrGenerate         = NewError("code generation failed")
	ErrCompile          = NewError("program compilation failed")
	ErrRun              = NewError("program evaluation failed")
	ErrReadInput        = NewError("failed to read input")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
	kind  *Error      // Sentinel this error was derived from
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from, so that
// errors.Is(ErrCall.Wrap(err), ErrCall) holds.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && e.root() == t.root()
}

func (e *Error) root() *Error {
	if e.kind != nil {
		return e.kind
	}

	return e
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.Any("cause", e.err))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
		kind:  e.root(),
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
		kind:  e.root(),
	}
}

// Attrs returns the structured attributes attached to the error.
func (e *Error) Attrs() []slog.Attr { return e.attrs }

// ParseError reports a token the grammar could not accept.
type ParseError struct {
	Token    token.Token  // The offending token
	Expected []token.Type // Token types that would have been accepted
	Offset   int          // Character offset just past the offending token
	Line     int          // 1-based line of the offending token
	Column   int          // 1-based column of the offending token
	Source   string       // The original source input
}

func newParseError(src []rune, tok token.Token, expected ...token.Type) *ParseError {
	line, col := 1, 1

	for i := 0; i < tok.Offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	return &ParseError{
		Token:    tok,
		Expected: expected,
		Offset:   tok.End(),
		Line:     line,
		Column:   col,
		Source:   string(src),
	}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return ErrParse.msg + ": '" + e.Source + "', " + e.Detail()
}

// Detail describes the offending token and what was expected instead.
func (e *ParseError) Detail() string {
	var sb strings.Builder

	sb.WriteString("unexpected ")
	sb.WriteString(e.Encountered())
	sb.WriteString(" at offset ")
	sb.WriteString(strconv.Itoa(e.Offset))

	switch len(e.Expected) {
	case 0:
	case 1:
		sb.WriteString(", expected ")
		sb.WriteString(e.Expected[0].String())
	default:
		sb.WriteString(", expected one of ")

		for i, t := range e.Expected {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(t.String())
		}
	}

	return sb.String()
}

// Encountered names the offending token. Error tokens are named by the
// characters they span.
func (e *ParseError) Encountered() string {
	switch e.Token.Type {
	case token.Error:
		return strconv.Quote(e.Token.Literal.String)
	case token.EOF:
		return "end of input"
	default:
		return e.Token.Type.String()
	}
}

// Is reports whether target is [ErrParse].
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.root() == ErrParse
}

// Snippet renders the offending source line with a caret under the token.
func (e *ParseError) Snippet() string {
	lines := strings.Split(e.Source, "\n")
	if e.Line < 1 || e.Line > len(lines) {
		return ""
	}

	var src strings.Builder

	num := strconv.Itoa(e.Line)

	src.WriteString("  ")
	src.WriteString(num)
	src.WriteString(" | ")
	src.WriteString(lines[e.Line-1])
	src.WriteRune('\n')

	// 2 leading spaces + " | " (3 chars)
	src.WriteString(strings.Repeat(" ", len(num)+5+e.Column-1))
	src.WriteString("^\n")

	return src.String()
}

// LogValue implements slog.LogValuer.
func (e *ParseError) LogValue() slog.Value {
	expected := make([]string, len(e.Expected))
	for i, t := range e.Expected {
		expected[i] = t.String()
	}

	return slog.GroupValue(
		slog.String("error", ErrParse.msg),
		slog.String("unexpected", e.Encountered()),
		slog.Int("offset", e.Offset),
		slog.Int("line", e.Line),
		slog.Int("column", e.Column),
		slog.Any("expected", expected),
	)
}

// AccessError reports a value or function the capability gate rejected.
type AccessError struct {
	Name string // Name or path of the rejected value
}

// Error implements the error interface.
func (e *AccessError) Error() string {
	return ErrAccessDenied.msg + ": '" + e.Name +
		"' is not supported for declarative processing"
}

// Unwrap returns [ErrAccessDenied].
func (e *AccessError) Unwrap() error { return ErrAccessDenied }

// LogValue implements slog.LogValuer.
func (e *AccessError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", ErrAccessDenied.msg),
		slog.String("name", e.Name),
	)
}
