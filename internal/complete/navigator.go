package complete

import (
	"tagwise/internal/source"
	"tagwise/internal/token"
)

// Navigator exposes the tokens around a cursor position.
type Navigator interface {
	// Cursor returns the cursor byte offset.
	Cursor() uint32
	// Token returns the token under the cursor: the token t with
	// t.Span.Start < cursor <= t.Span.End.
	Token() (token.Token, bool)
	// Walk returns a Walker positioned on the cursor token.
	Walk() Walker
	// EnclosingTag returns the innermost element that is open where the
	// cursor's tag begins. Inside an end tag the element being closed is
	// skipped, so the result is the parent of that element.
	EnclosingTag() (string, bool)
}

// Walker steps through tokens one at a time, whitespace included.
type Walker interface {
	Next() (token.Token, bool)
	Prev() (token.Token, bool)
}

// StreamNavigator implements Navigator over a lexed token slice.
//
// When the cursor sits right after '<', StreamNavigator reports an empty
// TagName token at the cursor so that a freshly typed bracket already
// produces tag-name completion.
type StreamNavigator struct {
	tokens []token.Token
	cursor uint32
	idx    int // -1 when no token is under the cursor
}

// NewStreamNavigator positions a navigator at cursor. tokens must be in
// document order; a trailing EOF token is allowed.
func NewStreamNavigator(tokens []token.Token, cursor uint32) *StreamNavigator {
	nav := &StreamNavigator{tokens: tokens, cursor: cursor, idx: -1}
	for i, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		if tok.Span.Start < cursor && cursor <= tok.Span.End {
			nav.idx = i
			break
		}
	}
	if nav.idx >= 0 && tokens[nav.idx].Kind == token.LAngle && tokens[nav.idx].Span.End == cursor {
		synthetic := token.Token{Kind: token.TagName, Span: source.Span{Start: cursor, End: cursor}}
		withName := make([]token.Token, 0, len(tokens)+1)
		withName = append(withName, tokens[:nav.idx+1]...)
		withName = append(withName, synthetic)
		withName = append(withName, tokens[nav.idx+1:]...)
		nav.tokens = withName
		nav.idx++
	}
	return nav
}

func (n *StreamNavigator) Cursor() uint32 { return n.cursor }

func (n *StreamNavigator) Token() (token.Token, bool) {
	if n.idx < 0 {
		return token.Token{}, false
	}
	return n.tokens[n.idx], true
}

func (n *StreamNavigator) Walk() Walker {
	return &sliceWalker{tokens: n.tokens, pos: n.idx}
}

func (n *StreamNavigator) EnclosingTag() (string, bool) {
	if n.idx < 0 {
		return "", false
	}
	start := n.tagStart()
	stack := openElements(n.tokens[:start])
	if start <= n.idx && n.tokens[start].Kind == token.LAngleSlash && len(stack) > 0 {
		// "</x" закрывает верхний элемент стека
		stack = stack[:len(stack)-1]
	}
	if len(stack) == 0 {
		return "", false
	}
	return stack[len(stack)-1], true
}

// tagStart returns the index of the bracket opening the tag that contains
// the cursor, or the index after the cursor token when the cursor is in
// character data.
func (n *StreamNavigator) tagStart() int {
	for i := n.idx; i >= 0; i-- {
		tok := n.tokens[i]
		switch {
		case tok.IsOpening():
			return i
		case tok.IsClosing() && i != n.idx:
			return n.idx + 1
		case tok.Kind == token.Text || tok.Kind == token.Comment:
			return n.idx + 1
		}
	}
	return n.idx + 1
}

// openElements replays start and end tags and returns the elements still open.
func openElements(tokens []token.Token) []string {
	var (
		stack   []string
		pending string
		inTag   bool
		closing bool
	)
	for _, tok := range tokens {
		switch tok.Kind {
		case token.LAngle, token.LAngleSlash:
			inTag, closing, pending = true, tok.Kind == token.LAngleSlash, ""
		case token.TagName:
			if inTag && pending == "" {
				pending = tok.Text
			}
		case token.RAngle:
			if inTag && pending != "" {
				if closing {
					stack = popTo(stack, pending)
				} else {
					stack = append(stack, pending)
				}
			}
			inTag = false
		case token.SlashRAngle:
			inTag = false
		}
	}
	return stack
}

// popTo closes name and everything opened after it; unmatched end tags are ignored.
func popTo(stack []string, name string) []string {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == name {
			return stack[:i]
		}
	}
	return stack
}

type sliceWalker struct {
	tokens []token.Token
	pos    int
}

func (w *sliceWalker) Next() (token.Token, bool) {
	if w.pos+1 >= len(w.tokens) {
		return token.Token{}, false
	}
	w.pos++
	return w.tokens[w.pos], true
}

func (w *sliceWalker) Prev() (token.Token, bool) {
	if w.pos <= 0 {
		return token.Token{}, false
	}
	w.pos--
	return w.tokens[w.pos], true
}

func nextSignificant(w Walker) (token.Token, bool) {
	for {
		tok, ok := w.Next()
		if !ok || !tok.IsSpace() {
			return tok, ok
		}
	}
}

func prevSignificant(w Walker) (token.Token, bool) {
	for {
		tok, ok := w.Prev()
		if !ok || !tok.IsSpace() {
			return tok, ok
		}
	}
}
