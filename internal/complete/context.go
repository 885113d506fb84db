package complete

import (
	"fortio.org/safecast"

	"tagwise/internal/token"
)

// Kind identifies a Context variant.
type Kind uint8

const (
	KindNone Kind = iota
	KindTag
	KindAttributeName
	KindAttributeValue
)

var kindNames = [...]string{
	KindNone:           "none",
	KindTag:            "tag",
	KindAttributeName:  "attribute-name",
	KindAttributeValue: "attribute-value",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Context is the resolved completion context at a cursor. It is one of
// TagContext, AttributeNameContext, AttributeValueContext or NoContext.
type Context interface {
	Kind() Kind
	isContext()
}

// Anchor records where a query was issued so that a later insertion can
// recompute the replacement span.
type Anchor struct {
	Cursor uint32
	// Token is the token being completed. It is empty (zero-length at the
	// cursor) when completion inserts at a blank position.
	Token token.Token
	// TokenOffset is the distance from the token start to the cursor.
	TokenOffset uint32
}

// Span returns the byte range replaced by an insertion.
func (a Anchor) Span() (start, end uint32) {
	start = a.Cursor - a.TokenOffset
	return start, start + textLen(a.Token.Text)
}

type TagContext struct {
	Anchor
	Parent string
	Prefix string
}

type AttributeNameContext struct {
	Anchor
	Tag    string
	Prefix string
	// Used holds the attribute names already present on the tag, except
	// the one under the cursor.
	Used                  map[string]struct{}
	ShouldReplaceExisting bool
}

type AttributeValueContext struct {
	Anchor
	Tag       string
	Attribute string
	Prefix    string
}

// NoContext ends the completion session.
type NoContext struct{}

func (TagContext) Kind() Kind            { return KindTag }
func (AttributeNameContext) Kind() Kind  { return KindAttributeName }
func (AttributeValueContext) Kind() Kind { return KindAttributeValue }
func (NoContext) Kind() Kind             { return KindNone }

func (TagContext) isContext()            {}
func (AttributeNameContext) isContext()  {}
func (AttributeValueContext) isContext() {}
func (NoContext) isContext()             {}

// Prefix returns the typed prefix carried by ctx, or "" for NoContext.
func Prefix(ctx Context) string {
	switch c := ctx.(type) {
	case TagContext:
		return c.Prefix
	case AttributeNameContext:
		return c.Prefix
	case AttributeValueContext:
		return c.Prefix
	}
	return ""
}

// AnchorOf returns the anchor of ctx; false for NoContext.
func AnchorOf(ctx Context) (Anchor, bool) {
	switch c := ctx.(type) {
	case TagContext:
		return c.Anchor, true
	case AttributeNameContext:
		return c.Anchor, true
	case AttributeValueContext:
		return c.Anchor, true
	}
	return Anchor{}, false
}

func textLen(s string) uint32 {
	n, err := safecast.Conv[uint32](len(s))
	if err != nil {
		return ^uint32(0)
	}
	return n
}
