package complete

import (
	"testing"

	"tagwise/internal/token"
)

func TestStreamNavigatorTokenAtCursor(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
		text string
	}{
		{"<div cl|ass>", token.AttrName, "class"},
		{"<div class|>", token.AttrName, "class"},
		{"<div |class>", token.Whitespace, " "},
		{"<div>|", token.RAngle, ">"},
		{"<div>te|xt", token.Text, "text"},
		{"<|", token.TagName, ""},
		{"<|div>", token.TagName, ""},
	}
	for _, tc := range cases {
		nav := bufferAt(t, tc.src).Navigator()
		tok, ok := nav.Token()
		if !ok {
			t.Fatalf("%q: no token at cursor", tc.src)
		}
		if tok.Kind != tc.kind || tok.Text != tc.text {
			t.Fatalf("%q: got %s %q, want %s %q", tc.src, tok.Kind, tok.Text, tc.kind, tc.text)
		}
	}
}

func TestStreamNavigatorNoTokenAtStart(t *testing.T) {
	nav := bufferAt(t, "|<div>").Navigator()
	if _, ok := nav.Token(); ok {
		t.Fatalf("expected no token at offset 0")
	}
	if got := Resolve(nav); got.Kind() != KindNone {
		t.Fatalf("expected NoContext, got %s", got.Kind())
	}
}

func TestStreamNavigatorSyntheticNameWalks(t *testing.T) {
	nav := bufferAt(t, "<a><|").Navigator()
	w := nav.Walk()
	prev, ok := w.Prev()
	if !ok || prev.Kind != token.LAngle {
		t.Fatalf("expected '<' before synthetic name, got %v", prev)
	}
	w = nav.Walk()
	next, ok := w.Next()
	if !ok || next.Kind != token.EOF {
		t.Fatalf("expected EOF after synthetic name, got %v", next)
	}
}

func TestEnclosingTag(t *testing.T) {
	cases := []struct {
		src    string
		want   string
		wantOK bool
	}{
		{"<ro|", "", false},
		{"<table><ro|", "table", true},
		{"<table><row/><|", "table", true},
		{"<div><table></table><ro|", "div", true},
		{"<div>\n  <span>x</span>\n  <|", "div", true},
		{"<a><b></a><|", "", false},
		{"<a><b></x><|", "b", true},
		{"<a <b><|", "b", true},
		{"<a><!-- <b> --><|", "a", true},
		{"<a><b x=\"1\" |", "a", true},
		{"</ro|", "", false},
		{"<table><row></ro|", "table", true},
		{"<root></|", "", false},
	}
	for _, tc := range cases {
		got, ok := bufferAt(t, tc.src).Navigator().EnclosingTag()
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("%q: got (%q, %v), want (%q, %v)", tc.src, got, ok, tc.want, tc.wantOK)
		}
	}
}
