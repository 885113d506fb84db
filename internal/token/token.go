package token

import (
	"tagwise/internal/source"
)

// Token represents a single markup token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsBracket reports whether the token is one of the tag brackets.
func (t Token) IsBracket() bool {
	switch t.Kind {
	case LAngle, LAngleSlash, RAngle, SlashRAngle:
		return true
	default:
		return false
	}
}

// IsOpening reports whether the token opens a start or end tag.
func (t Token) IsOpening() bool {
	return t.Kind == LAngle || t.Kind == LAngleSlash
}

// IsClosing reports whether the token closes a tag ('>' or '/>').
func (t Token) IsClosing() bool {
	return t.Kind == RAngle || t.Kind == SlashRAngle
}

// IsString reports whether the token is a quoted value, terminated or not.
func (t Token) IsString() bool {
	return t.Kind == AttrValue || t.Kind == Quote
}

// IsSpace reports whether the token is whitespace.
func (t Token) IsSpace() bool { return t.Kind == Whitespace }
