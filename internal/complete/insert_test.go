package complete

import (
	"strings"
	"testing"
)

func TestInsert(t *testing.T) {
	cases := []struct {
		name      string
		src       string
		choice    string
		want      string
		cursor    string // text left of the expected cursor
		followUp  bool
		wantEdits int
	}{
		{"tag", "<table><ro|", "row", "<table><row", "<table><row", false, 1},
		{"tag after bracket", "<|", "root", "<root", "<root", false, 1},
		{"tag middle", "<ro|w>", "region", "<region>", "<region", false, 1},
		{"attr opens value", "<input |", "type", `<input type=""`, `<input type="`, true, 1},
		{"attr replaces prefix", "<input ty|>", "type", `<input type="">`, `<input type="`, true, 1},
		{"flag", "<input dis|", "disabled", "<input disabled", "<input disabled", false, 1},
		{"replace existing name", `<input ty|="x">`, "value", `<input value="x">`, "<input value", false, 1},
		{"value in quote", `<input type="te|`, "text", `<input type="text"`, `<input type="text"`, false, 1},
		{"value in quote keeps line break", "<input type=\"te|\n<div>", "text", "<input type=\"text\"\n<div>", `<input type="text"`, false, 1},
		{"value in string", `<input type="te|xt">`, "radio", `<input type="radio">`, `<input type="radio"`, false, 1},
		{"value after assign", `<input type=|>`, "text", `<input type="text">`, `<input type="text"`, false, 1},
	}
	cat := testCatalog(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := bufferAt(t, tc.src)
			ctx := Resolve(buf.Navigator())
			again := Insert(buf, cat, ctx, tc.choice)
			if buf.String() != tc.want {
				t.Fatalf("buffer = %q, want %q", buf.String(), tc.want)
			}
			if int(buf.Cursor()) != len(tc.cursor) {
				t.Fatalf("cursor = %d, want %d", buf.Cursor(), len(tc.cursor))
			}
			if again != tc.followUp {
				t.Fatalf("follow-up = %v, want %v", again, tc.followUp)
			}
			if buf.Edits() != tc.wantEdits {
				t.Fatalf("edits = %d, want %d", buf.Edits(), tc.wantEdits)
			}
		})
	}
}

func TestInsertEqualTextIsNoop(t *testing.T) {
	cases := []struct {
		src      string
		choice   string
		followUp bool
	}{
		{"<table><row|", "row", false},
		{"<input type|", "type", true},
		{"<input disabled|", "disabled", false},
		{"<input type|=\"x\"", "type", false},
		{`<input type="te|xt">`, "text", false},
	}
	cat := testCatalog(t)
	for _, tc := range cases {
		buf := bufferAt(t, tc.src)
		before := buf.String()
		again := Insert(buf, cat, Resolve(buf.Navigator()), tc.choice)
		if buf.Edits() != 0 || buf.String() != before {
			t.Fatalf("%q: buffer mutated to %q", tc.src, buf.String())
		}
		if again != tc.followUp {
			t.Fatalf("%q: follow-up = %v, want %v", tc.src, again, tc.followUp)
		}
	}
}

func TestInsertNoContext(t *testing.T) {
	buf := bufferAt(t, "<input>|")
	if Insert(buf, testCatalog(t), NoContext{}, "x") || buf.Edits() != 0 {
		t.Fatalf("NoContext must not edit or follow up")
	}
}

func TestInsertFollowUpResolvesValue(t *testing.T) {
	cat := testCatalog(t)
	buf := bufferAt(t, "<input |/>")
	if !Insert(buf, cat, Resolve(buf.Navigator()), "type") {
		t.Fatalf("expected follow-up request")
	}
	res, ctx := Complete(buf.Navigator(), cat)
	value, ok := ctx.(AttributeValueContext)
	if !ok || value.Tag != "input" || value.Attribute != "type" {
		t.Fatalf("follow-up context = %#v", ctx)
	}
	if res == nil || strings.Join(res.Hints, ",") != "checkbox,radio,text" {
		t.Fatalf("follow-up hints = %+v", res)
	}

	Insert(buf, cat, ctx, "radio")
	if got := buf.String(); got != `<input type="radio"/>` {
		t.Fatalf("buffer = %q", got)
	}
}
