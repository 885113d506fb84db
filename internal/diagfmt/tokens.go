package diagfmt

import (
	"fmt"
	"io"

	"tagwise/internal/source"
	"tagwise/internal/token"
)

type TokenOutput struct {
	Kind string      `json:"kind"`
	Text string      `json:"text"`
	Span source.Span `json:"span"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, file *source.File) error {
	for i, tok := range tokens {
		start, end := file.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%3d: %-12s %q at %d:%d-%d:%d\n",
			i+1, tok.Kind.String(), tok.Text,
			start.Line, start.Col, end.Line, end.Col,
		); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenOutput{Kind: tok.Kind.String(), Text: tok.Text, Span: tok.Span})
	}
	return writeJSON(w, out)
}
