package lexer

import (
	"tagwise/internal/source"
	"tagwise/internal/token"
)

// Lexer splits a markup document into tokens. Whitespace inside tags is
// emitted as tokens so that completion code can reason about adjacency.
type Lexer struct {
	file   *source.File
	cursor Cursor
	inTag  bool // между '<' и '>'
	// wantName is set right after '<' or '</' until the element name is read.
	wantName bool
}

func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Tokenize returns every token of file, terminated by a single EOF token.
func Tokenize(file *source.File) []token.Token {
	lx := New(file)
	tokens := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: source.Span{Start: lx.cursor.Off, End: lx.cursor.Off},
		}
	}
	if lx.inTag {
		return lx.scanInsideTag()
	}
	return lx.scanContent()
}

func (lx *Lexer) make(kind token.Kind, m Mark) token.Token {
	span := lx.cursor.SpanFrom(m)
	return token.Token{
		Kind: kind,
		Span: span,
		Text: lx.file.Text(span),
	}
}
