package complete

import "tagwise/internal/catalog"

// Buffer is the editable text a completion is applied to.
type Buffer interface {
	Cursor() uint32
	SetCursor(off uint32)
	Replace(start, end uint32, text string)
}

// Insert applies choice to buf using the context captured when the hints
// were computed. It mutates buf at most once and reports whether another
// completion pass should follow (an empty value was just opened).
func Insert(buf Buffer, cat *catalog.Catalog, ctx Context, choice string) bool {
	switch c := ctx.(type) {
	case TagContext:
		replaceToken(buf, c.Anchor, choice)
	case AttributeNameContext:
		if c.ShouldReplaceExisting || isFlag(cat, c.Tag, choice) {
			replaceToken(buf, c.Anchor, choice)
			return false
		}
		if choice == c.Token.Text {
			return true
		}
		start, _ := c.Span()
		replaceToken(buf, c.Anchor, choice+`=""`)
		buf.SetCursor(start + textLen(choice) + 2)
		return true
	case AttributeValueContext:
		replaceToken(buf, c.Anchor, `"`+choice+`"`)
	}
	return false
}

// replaceToken swaps the anchored token for text and moves the cursor to
// its end. Equal text leaves buf untouched.
func replaceToken(buf Buffer, a Anchor, text string) {
	if text == a.Token.Text {
		return
	}
	start, end := a.Span()
	buf.Replace(start, end, text)
	buf.SetCursor(start + textLen(text))
}

func isFlag(cat *catalog.Catalog, tag, attr string) bool {
	desc, ok := cat.Attribute(tag, attr)
	return ok && desc.Kind == catalog.AttrFlag
}
