package token_test

import (
	"testing"

	"tagwise/internal/source"
	"tagwise/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsBracket(t *testing.T) {
	brackets := []token.Kind{token.LAngle, token.LAngleSlash, token.RAngle, token.SlashRAngle}
	for _, k := range brackets {
		if !tok(k).IsBracket() {
			t.Fatalf("%v should be a bracket", k)
		}
	}
	non := []token.Kind{token.TagName, token.AttrName, token.Assign, token.AttrValue, token.Whitespace}
	for _, k := range non {
		if tok(k).IsBracket() {
			t.Fatalf("%v must NOT be a bracket", k)
		}
	}
}

func TestOpeningClosing(t *testing.T) {
	if !tok(token.LAngleSlash).IsOpening() || tok(token.LAngleSlash).IsClosing() {
		t.Fatal("'</' opens a tag")
	}
	if !tok(token.SlashRAngle).IsClosing() || tok(token.SlashRAngle).IsOpening() {
		t.Fatal("'/>' closes a tag")
	}
}

func TestIsString(t *testing.T) {
	if !tok(token.AttrValue).IsString() || !tok(token.Quote).IsString() {
		t.Fatal("values and bare quotes are strings")
	}
	if tok(token.AttrName).IsString() {
		t.Fatal("attribute names are not strings")
	}
}

func TestKindString(t *testing.T) {
	if got := token.SlashRAngle.String(); got != "SlashRAngle" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := token.Kind(200).String(); got != "Unknown" {
		t.Fatalf("unexpected name for out-of-range kind %q", got)
	}
}
