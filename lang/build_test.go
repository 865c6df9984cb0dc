package lang

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ardnew/optexpr/lang/ast"
)

func TestParseToAST_Nodes(t *testing.T) {
	input := "{ x: select('#src').winControl.itemDataSource, y: a.b[0], " +
		"z: this, w: f('q'), v: m[n.o] }"

	got, err := ParseToAST(t.Context(), input)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	want := map[string]any{
		"x": &ast.IdentifierExpression{Parts: []any{
			&ast.CallExpression{Target: "select", Arg: "#src"},
			"winControl",
			"itemDataSource",
		}},
		"y": &ast.IdentifierExpression{Parts: []any{"a", "b", 0.0}},
		"z": &ast.IdentifierExpression{Parts: []any{"this"}},
		"w": &ast.CallExpression{Target: "f", Arg: "q"},
		"v": &ast.IdentifierExpression{Parts: []any{
			"m",
			&ast.IdentifierExpression{Parts: []any{"n", "o"}},
		}},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %#v, got %#v", want, got)
	}
}

func TestParseToAST_NoResolution(t *testing.T) {
	calls := 0
	funcs := map[string]any{
		"f": Func(func(string) (any, error) {
			calls++

			return nil, nil //nolint:nilnil
		}),
	}

	// Neither the unmarked function nor the missing name is an error when
	// only parsing.
	_, err := ParseToAST(t.Context(), "[f('x'), missing.member]", WithFuncs(funcs))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if calls != 0 {
		t.Errorf("function was called %d times", calls)
	}
}

func TestParseToAST_ParseError(t *testing.T) {
	_, err := ParseToAST(t.Context(), "{ a: }")

	var pe *ParseError
	if !errors.As(err, &pe) || pe.Offset != 6 {
		t.Fatalf("expected *ParseError at offset 6, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	scope := map[string]any{
		"a":   map[string]any{"b": []any{"first"}},
		"idx": 0.0,
	}
	funcs := map[string]any{
		"select": Mark(func(arg string) any {
			return map[string]any{"id": arg}
		}),
	}

	inputs := []string{
		"{ x: select('#s').id, y: a.b[idx], z: [1, , this.idx] }",
		"select('#t')",
		"a['b']",
		"'plain'",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			want, err := Evaluate(t.Context(), input, WithScope(scope), WithFuncs(funcs))
			if err != nil {
				t.Fatalf("evaluate error: %v", err)
			}

			tree, err := ParseToAST(t.Context(), input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			got, err := Resolve(t.Context(), tree, WithScope(scope), WithFuncs(funcs))
			if err != nil {
				t.Fatalf("resolve error: %v", err)
			}

			if !reflect.DeepEqual(got, want) {
				t.Errorf("expected %#v, got %#v", want, got)
			}
		})
	}
}

func TestResolve_Denied(t *testing.T) {
	tree, err := ParseToAST(t.Context(), "f('x')")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	_, err = Resolve(t.Context(), tree,
		WithFuncs(map[string]any{"f": func(string) any { return nil }}))
	if !errors.Is(err, ErrAccessDenied) {
		t.Errorf("expected ErrAccessDenied, got %v", err)
	}
}
