package ast

import (
	"encoding/json"
	"math"
	"testing"
)

func TestIdentifierExpressionString(t *testing.T) {
	tests := []struct {
		name string
		expr *IdentifierExpression
		want string
	}{
		{"root", &IdentifierExpression{Parts: []any{"a"}}, "a"},
		{"dotted", &IdentifierExpression{Parts: []any{"a", "b", "c"}}, "a.b.c"},
		{"this", &IdentifierExpression{Parts: []any{"this", "x"}}, "this.x"},
		{"index", &IdentifierExpression{Parts: []any{"a", 0.0}}, "a[0]"},
		{"quoted key", &IdentifierExpression{Parts: []any{"a", "b c"}}, "a['b c']"},
		{"keyword member", &IdentifierExpression{Parts: []any{"a", "default"}}, "a.default"},
		{
			"call root",
			&IdentifierExpression{Parts: []any{
				&CallExpression{Target: "select", Arg: "#src"},
				"winControl",
			}},
			"select('#src').winControl",
		},
		{
			"nested index",
			&IdentifierExpression{Parts: []any{
				"a",
				&IdentifierExpression{Parts: []any{"b", "c"}},
			}},
			"a[b.c]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSource(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"null", nil, "null"},
		{"bool", true, "true"},
		{"integer", 42.0, "42"},
		{"negative", -1.5, "-1.5"},
		{"infinity", math.Inf(1), "1e999"},
		{"string", "it's\n", `'it\'s\n'`},
		{"control", "\x01", `'\u0001'`},
		{"holes", []any{1.0, Undefined{}, 3.0}, "[1, , 3]"},
		{"trailing hole", []any{1.0, Undefined{}}, "[1, ,]"},
		{"only hole", []any{Undefined{}}, "[,]"},
		{"empty array", []any{}, "[]"},
		{
			"object",
			map[string]any{"b": "x", "a": 1.0, "1": true, "c d": nil},
			"{'1': true, a: 1, b: 'x', 'c d': null}",
		},
		{"call", &CallExpression{Target: "f", Arg: "x"}, "f('x')"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Source(tt.value); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1"},
		{1.5, "1.5"},
		{-0.0, "0"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-7"},
		{0.000001, "0.000001"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	tree := map[string]any{
		"x": &IdentifierExpression{Parts: []any{
			&CallExpression{Target: "select", Arg: "#a"},
			"b",
		}},
		"y": []any{Undefined{}},
	}

	got, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	want := `{"x":{"parts":[{"arg":"#a","target":"select","type":"CallExpression"},"b"],` +
		`"type":"IdentifierExpression"},"y":[null]}`
	if string(got) != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestIsIdentifierName(t *testing.T) {
	for s, want := range map[string]bool{
		"a": true, "_a1": true, "$": true, "with": true,
		"": false, "1a": false, "a-b": false, "é": false,
	} {
		if got := IsIdentifierName(s); got != want {
			t.Errorf("IsIdentifierName(%q): expected %v, got %v", s, want, got)
		}
	}
}
