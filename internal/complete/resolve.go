package complete

import (
	"strings"

	"tagwise/internal/catalog"
	"tagwise/internal/source"
	"tagwise/internal/token"
)

// Resolve determines the completion context at the navigator's cursor.
// Ambiguous or malformed markup yields NoContext.
func Resolve(nav Navigator) Context {
	cur, ok := nav.Token()
	if !ok {
		return NoContext{}
	}
	cursor := nav.Cursor()
	if cursor < cur.Span.Start || cursor > cur.Span.End {
		return NoContext{}
	}
	offset := cursor - cur.Span.Start

	switch {
	case cur.Kind == token.TagName:
		return resolveTag(nav, cur, offset)
	case cur.Kind == token.Quote, cur.Kind == token.Assign:
		return resolveValue(nav, cur, offset)
	case cur.Kind == token.AttrValue && cursor < cur.Span.End:
		return resolveValue(nav, cur, offset)
	}
	return resolveName(nav, cur, offset)
}

func resolveTag(nav Navigator, cur token.Token, offset uint32) Context {
	parent, ok := nav.EnclosingTag()
	if !ok {
		parent = catalog.RootTag
	}
	return TagContext{
		Anchor: Anchor{Cursor: nav.Cursor(), Token: cur, TokenOffset: offset},
		Parent: parent,
		Prefix: strings.TrimPrefix(typed(cur, offset), "<"),
	}
}

func resolveValue(nav Navigator, cur token.Token, offset uint32) Context {
	cursor := nav.Cursor()
	anchor := Anchor{Cursor: cursor, Token: cur, TokenOffset: offset}
	prefix := ""
	back := nav.Walk()

	if cur.Kind == token.Assign {
		// "=|" with a value already glued on the right is a boundary, not a value.
		if next, ok := nav.Walk().Next(); ok && next.IsString() {
			return NoContext{}
		}
		anchor = blankAnchor(cursor, token.AttrValue)
	} else {
		if t := typed(cur, offset); len(t) > 0 {
			prefix = t[1:]
		}
		eq, ok := prevSignificant(back)
		if !ok || eq.Kind != token.Assign {
			return NoContext{}
		}
	}

	name, ok := prevSignificant(back)
	if !ok || name.Kind != token.AttrName {
		return NoContext{}
	}
	tag, ok := lookBack(back, nil)
	if !ok {
		return NoContext{}
	}
	return AttributeValueContext{Anchor: anchor, Tag: tag, Attribute: name.Text, Prefix: prefix}
}

func resolveName(nav Navigator, cur token.Token, offset uint32) Context {
	cursor := nav.Cursor()

	var (
		anchor  Anchor
		prefix  string
		replace bool
	)
	switch cur.Kind {
	case token.AttrName:
		anchor = Anchor{Cursor: cursor, Token: cur, TokenOffset: offset}
		prefix = typed(cur, offset)
		next, ok := nextSignificant(nav.Walk())
		replace = ok && next.Kind == token.Assign
	case token.Whitespace:
		anchor = blankAnchor(cursor, token.AttrName)
	default:
		// brackets, text, or right after a closing quote
		return NoContext{}
	}
	if valueBoundary(nav.Walk(), cur) {
		return NoContext{}
	}

	used := make(map[string]struct{})
	tag, ok := lookBack(nav.Walk(), used)
	if !ok {
		return NoContext{}
	}
	if !lookAhead(nav.Walk(), used) {
		return NoContext{}
	}
	return AttributeNameContext{
		Anchor:                anchor,
		Tag:                   tag,
		Prefix:                prefix,
		Used:                  used,
		ShouldReplaceExisting: replace,
	}
}

// valueBoundary reports whether the cursor sits where an attribute value
// belongs: after '=' (whitespace allowed) or glued to a quoted value.
func valueBoundary(w Walker, cur token.Token) bool {
	prev := cur
	if cur.Kind == token.AttrName {
		var ok bool
		if prev, ok = w.Prev(); !ok {
			return false
		}
	}
	if prev.IsString() {
		return true
	}
	if prev.IsSpace() {
		prev, _ = prevSignificant(w)
	}
	return prev.Kind == token.Assign
}

// lookBack walks to the name of the tag being edited, collecting attribute
// names into used when it is non-nil.
func lookBack(w Walker, used map[string]struct{}) (string, bool) {
	for {
		tok, ok := w.Prev()
		if !ok {
			return "", false
		}
		switch tok.Kind {
		case token.Whitespace, token.Assign, token.AttrValue:
		case token.AttrName:
			if used != nil {
				used[tok.Text] = struct{}{}
			}
		case token.TagName:
			open, ok := w.Prev()
			if !ok || open.Kind != token.LAngle {
				return "", false
			}
			return tok.Text, true
		default:
			return "", false
		}
	}
}

// lookAhead collects attribute names up to the end of the tag. An
// unterminated quote makes the rest of the tag unreliable.
func lookAhead(w Walker, used map[string]struct{}) bool {
	for {
		tok, ok := w.Next()
		if !ok {
			return true
		}
		switch {
		case tok.Kind == token.Quote:
			return false
		case tok.IsBracket(), tok.Kind == token.EOF:
			return true
		case tok.Kind == token.AttrName:
			used[tok.Text] = struct{}{}
		}
	}
}

// typed returns the part of tok's text left of the cursor.
func typed(tok token.Token, offset uint32) string {
	if int(offset) > len(tok.Text) {
		return tok.Text
	}
	return tok.Text[:offset]
}

func blankAnchor(cursor uint32, kind token.Kind) Anchor {
	return Anchor{
		Cursor: cursor,
		Token:  token.Token{Kind: kind, Span: source.Span{Start: cursor, End: cursor}},
	}
}
