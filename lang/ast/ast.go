// Package ast defines the nodes produced by parsing an options expression in
// AST mode.
//
// A parsed tree has the same shape as an evaluated one (nil, bool, float64,
// string, []any and map[string]any) except that identifier expressions and
// object queries appear as [*IdentifierExpression] and [*CallExpression]
// nodes in value positions. Nodes are immutable once built.
package ast

import (
	"encoding/json"
	"strings"
)

// Node is implemented by the expression nodes of a parsed tree.
type Node interface {
	// String renders the node in options expression syntax.
	String() string

	node()
}

// IdentifierExpression is a chain of member accesses rooted at a name, at
// this, or at the result of an object query.
//
// Parts[0] is the root: a string name ("this" for the scope object) or a
// [*CallExpression]. Each following part is the key of one access: the string
// of a dotted name, or the parsed tree of a bracketed value.
type IdentifierExpression struct {
	Parts []any
}

// Root returns the first part of the expression.
func (e *IdentifierExpression) Root() any {
	if len(e.Parts) == 0 {
		return nil
	}

	return e.Parts[0]
}

func (*IdentifierExpression) node() {}

func (e *IdentifierExpression) String() string {
	var sb strings.Builder

	for i, part := range e.Parts {
		if i == 0 {
			switch root := part.(type) {
			case string:
				sb.WriteString(root)
			case *CallExpression:
				sb.WriteString(root.String())
			default:
				sb.WriteString(Source(root))
			}

			continue
		}

		if name, ok := part.(string); ok && IsIdentifierName(name) {
			sb.WriteByte('.')
			sb.WriteString(name)

			continue
		}

		sb.WriteByte('[')
		sb.WriteString(Source(part))
		sb.WriteByte(']')
	}

	return sb.String()
}

// MarshalJSON encodes the node as a tagged JSON object.
func (e *IdentifierExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.tagged())
}

// MarshalYAML encodes the node as a tagged YAML mapping.
func (e *IdentifierExpression) MarshalYAML() (any, error) {
	return e.tagged(), nil
}

func (e *IdentifierExpression) tagged() map[string]any {
	parts := e.Parts
	if parts == nil {
		parts = []any{}
	}

	return map[string]any{
		"type":  "IdentifierExpression",
		"parts": parts,
	}
}

// CallExpression is an object query: a named function applied to a single
// string argument.
type CallExpression struct {
	Target string
	Arg    string
}

func (*CallExpression) node() {}

func (c *CallExpression) String() string {
	return c.Target + "(" + Quote(c.Arg) + ")"
}

// MarshalJSON encodes the node as a tagged JSON object.
func (c *CallExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.tagged())
}

// MarshalYAML encodes the node as a tagged YAML mapping.
func (c *CallExpression) MarshalYAML() (any, error) {
	return c.tagged(), nil
}

func (c *CallExpression) tagged() map[string]any {
	return map[string]any{
		"type":   "CallExpression",
		"target": c.Target,
		"arg":    c.Arg,
	}
}

// Undefined is the value of an array elision hole and of a name or member
// that does not exist.
type Undefined struct{}

func (Undefined) String() string { return "undefined" }

// MarshalJSON encodes Undefined as null.
func (Undefined) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// MarshalYAML encodes Undefined as null.
func (Undefined) MarshalYAML() (any, error) { return nil, nil } //nolint:nilnil
