package lang

import (
	"log/slog"
	"slices"

	"github.com/ardnew/optexpr/lang/ast"
	"github.com/ardnew/optexpr/lang/token"
)

// strategy decides what the identifier expression and object query
// productions yield. The rest of the grammar is shared by every mode.
type strategy interface {
	// identifierExpression receives the root name (or "this") followed by the
	// keys of each member access.
	identifierExpression(parts []any) (any, error)
	// objectQuery receives the function name, its string argument and the
	// keys of the member accesses that follow the call.
	objectQuery(name, arg string, access []any) (any, error)
}

// walker is a recursive descent cursor over the tokens of one source.
type walker struct {
	tokens   []token.Token
	pos      int
	current  token.Token
	src      []rune
	strategy strategy
	depth    int
	maxDepth int
}

func newWalker(
	src []rune,
	tokens []token.Token,
	s strategy,
	maxDepth int,
) *walker {
	return &walker{
		tokens:   tokens,
		current:  tokens[0],
		src:      src,
		strategy: s,
		maxDepth: maxDepth,
	}
}

// next moves to the following token. It stays put at EOF.
func (w *walker) next() {
	if w.current.Type != token.EOF && w.pos+1 < len(w.tokens) {
		w.pos++
		w.current = w.tokens[w.pos]
	}
}

// fail reports the current token as unexpected.
func (w *walker) fail(expected ...token.Type) *ParseError {
	return newParseError(w.src, w.current, expected...)
}

// advance moves past the current token if it is one of expected, or
// unconditionally when nothing is expected.
func (w *walker) advance(expected ...token.Type) error {
	if len(expected) > 0 && !slices.Contains(expected, w.current.Type) {
		return w.fail(expected...)
	}

	w.next()

	return nil
}

// peek returns the token after the current one without moving. When
// expected is given, it reports false unless the current token is one of
// them.
func (w *walker) peek(expected ...token.Type) (token.Token, bool) {
	if len(expected) > 0 && !slices.Contains(expected, w.current.Type) {
		return token.Token{}, false
	}

	if w.pos+1 < len(w.tokens) {
		return w.tokens[w.pos+1], true
	}

	return w.current, true
}

// name returns the decoded name of an identifier, reserved word or keyword
// token.
func name(tok token.Token) string {
	switch tok.Type {
	case token.NullLiteral:
		return "null"
	case token.TrueLiteral:
		return "true"
	case token.FalseLiteral:
		return "false"
	default:
		return tok.Literal.String
	}
}

// readOptionsLiteral reads a complete options record: one value followed by
// the end of input.
func (w *walker) readOptionsLiteral() (any, error) {
	v, err := w.readValue()
	if err != nil {
		return nil, err
	}

	if w.current.Type != token.EOF {
		return nil, w.fail(token.EOF)
	}

	return v, nil
}

func (w *walker) readValue() (any, error) {
	w.depth++
	defer func() { w.depth-- }()

	if w.maxDepth > 0 && w.depth > w.maxDepth {
		return nil, ErrMaxDepthExceeded.With(
			slog.Int("max_depth", w.maxDepth),
			slog.Int("offset", w.current.Offset),
		)
	}

	switch w.current.Type {
	case token.NullLiteral, token.TrueLiteral, token.FalseLiteral,
		token.NumberLiteral, token.StringLiteral:
		v := w.current.Literal.Value()
		w.next()

		return v, nil

	case token.LeftBrace:
		return w.readObjectLiteral()

	case token.LeftBracket:
		return w.readArrayLiteral()

	case token.Identifier:
		if next, _ := w.peek(); next.Type == token.LeftParentheses {
			return w.readObjectQueryExpression()
		}

		fallthrough

	case token.ThisKeyword:
		parts, err := w.readIdentifierExpression()
		if err != nil {
			return nil, err
		}

		return w.strategy.identifierExpression(parts)

	default:
		return nil, w.fail(token.ValueStart()...)
	}
}

func (w *walker) readObjectLiteral() (any, error) {
	if err := w.advance(token.LeftBrace); err != nil {
		return nil, err
	}

	obj := make(map[string]any)

	for w.current.Type != token.RightBrace {
		key, err := w.readPropertyName()
		if err != nil {
			return nil, err
		}

		if err := w.advance(token.Colon); err != nil {
			return nil, err
		}

		v, err := w.readValue()
		if err != nil {
			return nil, err
		}

		obj[key] = v

		if w.current.Type != token.Comma {
			break
		}

		w.next()
	}

	if w.current.Type != token.RightBrace {
		return nil, w.fail(token.Comma, token.RightBrace)
	}

	w.next()

	return obj, nil
}

func (w *walker) readPropertyName() (string, error) {
	tok := w.current

	switch {
	case tok.Type == token.StringLiteral:
		w.next()

		return tok.Literal.String, nil

	case tok.Type == token.NumberLiteral:
		w.next()

		return ast.FormatNumber(tok.Literal.Number), nil

	case tok.Type == token.Identifier, tok.Keyword:
		w.next()

		return name(tok), nil
	}

	return "", w.fail(token.StringLiteral, token.NumberLiteral, token.Identifier, token.ReservedWord)
}

func (w *walker) readArrayLiteral() (any, error) {
	if err := w.advance(token.LeftBracket); err != nil {
		return nil, err
	}

	arr := make([]any, 0)

	for w.current.Type != token.RightBracket {
		if w.current.Type == token.Comma {
			arr = append(arr, Undefined{})
			w.next()

			continue
		}

		v, err := w.readValue()
		if err != nil {
			return nil, err
		}

		arr = append(arr, v)

		if w.current.Type == token.Comma {
			w.next()

			continue
		}

		if w.current.Type != token.RightBracket {
			return nil, w.fail(token.Comma, token.RightBracket)
		}
	}

	w.next()

	return arr, nil
}

func (w *walker) readIdentifier() (string, error) {
	tok := w.current
	if err := w.advance(token.Identifier); err != nil {
		return "", err
	}

	return tok.Literal.String, nil
}

func (w *walker) readIdentifierExpression() ([]any, error) {
	var root string

	if w.current.Type == token.ThisKeyword {
		root = "this"

		w.next()
	} else {
		id, err := w.readIdentifier()
		if err != nil {
			return nil, err
		}

		root = id
	}

	return w.readAccessExpressions([]any{root})
}

// readAccessExpressions appends the key of each .name or [Value] suffix to
// parts.
func (w *walker) readAccessExpressions(parts []any) ([]any, error) {
	for {
		switch w.current.Type {
		case token.Dot:
			w.next()

			tok := w.current
			if tok.Type != token.Identifier && !tok.Keyword {
				return nil, w.fail(token.Identifier, token.ReservedWord)
			}

			w.next()

			parts = append(parts, name(tok))

		case token.LeftBracket:
			w.next()

			v, err := w.readValue()
			if err != nil {
				return nil, err
			}

			if err := w.advance(token.RightBracket); err != nil {
				return nil, err
			}

			parts = append(parts, v)

		default:
			return parts, nil
		}
	}
}

func (w *walker) readObjectQueryExpression() (any, error) {
	target, err := w.readIdentifier()
	if err != nil {
		return nil, err
	}

	if err := w.advance(token.LeftParentheses); err != nil {
		return nil, err
	}

	tok := w.current
	if err := w.advance(token.StringLiteral); err != nil {
		return nil, err
	}

	if err := w.advance(token.RightParentheses); err != nil {
		return nil, err
	}

	access, err := w.readAccessExpressions(nil)
	if err != nil {
		return nil, err
	}

	return w.strategy.objectQuery(target, tok.Literal.String, access)
}
