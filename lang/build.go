package lang

import "github.com/ardnew/optexpr/lang/ast"

// builder records identifier expressions and object queries as AST nodes
// instead of resolving them.
type builder struct{}

func (builder) identifierExpression(parts []any) (any, error) {
	return &ast.IdentifierExpression{Parts: parts}, nil
}

func (builder) objectQuery(name, arg string, access []any) (any, error) {
	call := &ast.CallExpression{Target: name, Arg: arg}
	if len(access) == 0 {
		return call, nil
	}

	parts := make([]any, 0, len(access)+1)
	parts = append(parts, call)

	return &ast.IdentifierExpression{Parts: append(parts, access...)}, nil
}

// resolve evaluates a parsed tree with the interpreter, producing the same
// result the interpreter would have produced from the source.
func (in *interpreter) resolve(tree any) (any, error) {
	switch node := tree.(type) {
	case *ast.CallExpression:
		return in.objectQuery(node.Target, node.Arg, nil)

	case *ast.IdentifierExpression:
		if len(node.Parts) == 0 {
			return Undefined{}, nil
		}

		keys := make([]any, len(node.Parts)-1)
		for i, part := range node.Parts[1:] {
			key, err := in.resolve(part)
			if err != nil {
				return nil, err
			}

			keys[i] = key
		}

		if call, ok := node.Parts[0].(*ast.CallExpression); ok {
			return in.objectQuery(call.Target, call.Arg, keys)
		}

		return in.identifierExpression(append([]any{node.Parts[0]}, keys...))

	case map[string]any:
		obj := make(map[string]any, len(node))
		for k, v := range node {
			rv, err := in.resolve(v)
			if err != nil {
				return nil, err
			}

			obj[k] = rv
		}

		return obj, nil

	case []any:
		arr := make([]any, len(node))
		for i, v := range node {
			rv, err := in.resolve(v)
			if err != nil {
				return nil, err
			}

			arr[i] = rv
		}

		return arr, nil

	default:
		return tree, nil
	}
}
