package lang_test

import (
	"context"
	"fmt"

	"github.com/ardnew/optexpr/lang"
)

func ExampleEvaluate() {
	scope := map[string]any{
		"theme": map[string]any{"accent": "teal"},
	}

	funcs := map[string]any{
		"select": lang.Mark(func(id string) any {
			return map[string]any{"winControl": map[string]any{"id": id}}
		}),
	}

	v, err := lang.Evaluate(
		context.Background(),
		"{ orientation: 'horizontal', color: theme.accent, source: select('#src').winControl.id }",
		lang.WithScope(scope),
		lang.WithFuncs(funcs),
	)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(lang.FormatResult(v))
	// Output:
	// {color: 'teal', orientation: 'horizontal', source: '#src'}
}

func ExampleParseToAST() {
	tree, err := lang.ParseToAST(context.Background(), "{ a: items[0].name, b: [1, , 3] }")
	if err != nil {
		fmt.Println(err)

		return
	}

	code, err := lang.Generate(tree)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(lang.FormatResult(tree))
	fmt.Println(code)
	// Output:
	// {a: items[0].name, b: [1, , 3]}
	// {"a": __ident("items", 0.0, "name"), "b": [1.0, __undefined, 3.0]}
}

func ExampleEvaluate_parseError() {
	_, err := lang.Evaluate(context.Background(), "{ a: }")
	fmt.Println(err)
	// Output:
	// invalid options record: '{ a: }', unexpected rightBrace at offset 6, expected one of nullLiteral, trueLiteral, falseLiteral, numberLiteral, stringLiteral, leftBrace, leftBracket, identifier, thisKeyword
}
