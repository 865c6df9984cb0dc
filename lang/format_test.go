package lang

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestFormat_RoundTrip(t *testing.T) {
	inputs := []string{
		"{ orientation: 'horizontal', size: 3, 'a b': [1, , 3], nested: { x: null } }",
		"[1, , ]",
		"[,]",
		"{ 'it\\'s': '\\u2028\\n', default: -0.5, big: 1e21 }",
		"[]",
		"{}",
	}

	for _, input := range inputs {
		want, err := Evaluate(t.Context(), input)
		if err != nil {
			t.Fatalf("evaluate error: %v", err)
		}

		for _, indent := range []int{0, 2} {
			var buf bytes.Buffer
			if err := Format(&buf, want, indent); err != nil {
				t.Fatalf("format error: %v", err)
			}

			got, err := Evaluate(t.Context(), buf.String())
			if err != nil {
				t.Fatalf("re-evaluate %q: %v", buf.String(), err)
			}

			if !reflect.DeepEqual(got, want) {
				t.Errorf("indent %d: expected %#v, got %#v (from %q)",
					indent, want, got, buf.String())
			}
		}
	}
}

func TestFormat_Indented(t *testing.T) {
	v := map[string]any{"b": []any{1.0, Undefined{}}, "a": "x"}

	var buf bytes.Buffer
	if err := Format(&buf, v, 2); err != nil {
		t.Fatalf("format error: %v", err)
	}

	want := "{\n  a: 'x',\n  b: [\n    1,\n    ,\n  ]\n}\n"
	if buf.String() != want {
		t.Errorf("expected\n%s\ngot\n%s", want, buf.String())
	}
}

func TestFormat_AST(t *testing.T) {
	const input = "{ x: select('#s').a['b c'], y: this }"

	tree, err := ParseToAST(t.Context(), input)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	got := FormatResult(tree)

	want := "{x: select('#s').a['b c'], y: this}"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	again, err := ParseToAST(t.Context(), got)
	if err != nil {
		t.Fatalf("re-parse error: %v", err)
	}

	if !reflect.DeepEqual(again, tree) {
		t.Errorf("AST did not round-trip: %#v", again)
	}
}

func TestFormatJSON(t *testing.T) {
	tree, err := ParseToAST(t.Context(), "{ a: [1, , f('x')] }")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	var buf bytes.Buffer
	if err := FormatJSON(&buf, tree, 0); err != nil {
		t.Fatalf("format error: %v", err)
	}

	want := `{"a":[1,null,{"arg":"x","target":"f","type":"CallExpression"}]}` + "\n"
	if buf.String() != want {
		t.Errorf("expected %s, got %s", want, buf.String())
	}
}

func TestFormatYAML(t *testing.T) {
	v, err := Evaluate(t.Context(), "{ name: 'x', items: [1, 2] }")
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	var buf bytes.Buffer
	if err := FormatYAML(t.Context(), &buf, v, 2); err != nil {
		t.Fatalf("format error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"name: x", "items:", "- 1", "- 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}
