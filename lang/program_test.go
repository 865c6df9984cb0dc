package lang

import (
	"errors"
	"reflect"
	"testing"
)

func TestGenerate(t *testing.T) {
	tree, err := ParseToAST(t.Context(),
		"{ a: [1, , 'x'], b: select('#s').c, d: this.e[0], f: null, g: -2.5 }")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	got, err := Generate(tree)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	want := `{"a": [1.0, __undefined, "x"], "b": __call("select", "#s", "c"), ` +
		`"d": __ident("this", "e", 0.0), "f": nil, "g": -2.5}`
	if got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestGenerate_NonFinite(t *testing.T) {
	tree, err := ParseToAST(t.Context(), "[1e999]")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if _, err := Generate(tree); !errors.Is(err, ErrGenerate) {
		t.Errorf("expected ErrGenerate, got %v", err)
	}
}

func TestProgram_MatchesEvaluate(t *testing.T) {
	scope := map[string]any{
		"a":   map[string]any{"b": map[string]any{"c": 42.0}},
		"arr": []any{10.0, 20.0},
	}
	funcs := map[string]any{
		"select": Mark(func(arg string) any {
			return map[string]any{"id": arg, "n": []any{1.0, 2.0}}
		}),
	}

	inputs := []string{
		"null",
		"'text'",
		"{ a: 1, b: [true, , 'x'], c: {} }",
		"a.b.c",
		"arr[1]",
		"this.arr.length",
		"{ x: select('#foo').id, y: select('#bar').n[1] }",
		"[missing, a.b]",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			want, err := Evaluate(t.Context(), input, WithScope(scope), WithFuncs(funcs))
			if err != nil {
				t.Fatalf("evaluate error: %v", err)
			}

			prog, err := Compile(t.Context(), input)
			if err != nil {
				t.Fatalf("compile error: %v", err)
			}

			got, err := prog.Run(t.Context(), WithScope(scope), WithFuncs(funcs))
			if err != nil {
				t.Fatalf("run error: %v", err)
			}

			if !reflect.DeepEqual(got, want) {
				t.Errorf("expected %#v, got %#v", want, got)
			}
		})
	}
}

func TestProgram_Errors(t *testing.T) {
	prog, err := Compile(t.Context(), "{ x: select('#a') }")
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	calls := 0
	unmarked := func(string) any {
		calls++

		return nil
	}

	_, err = prog.Run(t.Context(), WithFuncs(map[string]any{"select": unmarked}))
	if !errors.Is(err, ErrAccessDenied) {
		t.Errorf("expected ErrAccessDenied, got %v", err)
	}

	if calls != 0 {
		t.Errorf("denied function was called %d times", calls)
	}

	_, err = prog.Run(t.Context())
	if !errors.Is(err, ErrFunctionNotFound) {
		t.Errorf("expected ErrFunctionNotFound, got %v", err)
	}

	if _, err := Compile(t.Context(), "{ a: }"); !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}

func TestProgram_Accessors(t *testing.T) {
	prog, err := Compile(t.Context(), "[x]")
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	if prog.Source() != "[x]" {
		t.Errorf("unexpected source %q", prog.Source())
	}

	if prog.Code() != `[__ident("x")]` {
		t.Errorf("unexpected code %q", prog.Code())
	}
}
