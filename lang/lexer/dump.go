package lexer

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/ardnew/optexpr/lang/token"
)

// Dump writes a tabular listing of tokens scanned from text to w.
func Dump(w io.Writer, text string, tokens []token.Token) error {
	src := []rune(text)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "OFFSET\tLENGTH\tTYPE\tKEYWORD\tLITERAL\tTEXT"); err != nil {
		return err
	}

	for _, tok := range tokens {
		lit := "-"

		switch tok.Literal.Kind {
		case token.KindNull:
			lit = "null"
		case token.KindBool:
			lit = strconv.FormatBool(tok.Literal.Bool)
		case token.KindNumber:
			lit = strconv.FormatFloat(tok.Literal.Number, 'g', -1, 64)
		case token.KindString:
			lit = strconv.Quote(tok.Literal.String)
		}

		_, err := fmt.Fprintf(tw, "%d\t%d\t%s\t%t\t%s\t%s\n",
			tok.Offset, tok.Length, tok.Type, tok.Keyword, lit,
			strconv.Quote(tok.Text(src)))
		if err != nil {
			return err
		}
	}

	return tw.Flush()
}
