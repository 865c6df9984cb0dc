package lang

import (
	"errors"
	"reflect"
	"testing"
)

func FuzzParseToAST(f *testing.F) {
	for _, seed := range []string{
		"{ orientation: 'horizontal', itemDataSource: select('#src').winControl.itemDataSource }",
		"[1, , 3]", "[,]", "{ a: 1, a: 2 }", "this['a b'][0].null",
		"{ 1e21: -0x10, 'q': .5 }", "{ a: }", "'\\u{1F600}'", "f('x')[g('y')]",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		tree, err := ParseToAST(t.Context(), input)
		if err != nil {
			var pe *ParseError
			if !errors.As(err, &pe) && !errors.Is(err, ErrMaxDepthExceeded) {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}

			return
		}

		// The rendering of a parsed tree parses back to the same tree.
		source := FormatResult(tree)

		again, err := ParseToAST(t.Context(), source)
		if err != nil {
			t.Fatalf("re-parse of %q failed: %v", source, err)
		}

		if !reflect.DeepEqual(again, tree) {
			t.Fatalf("tree of %q changed after rendering as %q", input, source)
		}

		// Evaluation must not panic, whatever it resolves to.
		_, _ = Evaluate(t.Context(), input, WithScope(map[string]any{}))
	})
}
