package complete

import (
	"slices"
	"strings"
	"testing"

	"tagwise/internal/catalog"
)

func TestTagNamesMatchCatalog(t *testing.T) {
	cat := testCatalog(t)
	for _, prefix := range []string{"", "r", "ro", "<ro", "t", "x"} {
		for _, parent := range []string{catalog.RootTag, "table", "div"} {
			got := TagNames(cat, prefix, parent)
			if got == nil {
				t.Fatalf("(%q, %q): nil result, want empty list", prefix, parent)
			}
			if !slices.IsSorted(got) || len(slices.Compact(slices.Clone(got))) != len(got) {
				t.Fatalf("(%q, %q): not sorted or not unique: %v", prefix, parent, got)
			}
			var want []string
			bare := strings.TrimPrefix(prefix, "<")
			for _, e := range cat.Tags() {
				if strings.HasPrefix(e.Name, bare) && e.AllowsParent(parent) {
					want = append(want, e.Name)
				}
			}
			slices.Sort(want)
			if !slices.Equal(got, want) {
				t.Fatalf("(%q, %q): got %v, want %v", prefix, parent, got, want)
			}
		}
	}
}

func TestTagNamesParentConstraint(t *testing.T) {
	cat := testCatalog(t)
	if got := TagNames(cat, "ro", "table"); !slices.Contains(got, "row") {
		t.Fatalf("row missing inside table: %v", got)
	}
	if got := TagNames(cat, "ro", "div"); slices.Contains(got, "row") {
		t.Fatalf("row offered inside div: %v", got)
	}
	if got := TagNames(cat, "r", catalog.RootTag); !slices.Equal(got, []string{"region", "root"}) {
		t.Fatalf("root level: %v", got)
	}
}

func TestAttributeNames(t *testing.T) {
	cat := testCatalog(t)
	cases := []struct {
		tag    string
		used   map[string]struct{}
		prefix string
		want   []string
	}{
		{"input", setOf("type"), "", []string{"value", "disabled", "checked", "id", "lang"}},
		{"input", setOf("type"), "i", []string{"id"}},
		{"input", nil, "ty", []string{"type"}},
		{"div", nil, "", []string{"class", "id", "lang"}},
		{"div", setOf("id", "lang"), "", []string{"class"}},
		{"unknown", nil, "", []string{"id", "lang"}},
		{"input", nil, "zz", []string{}},
	}
	for _, tc := range cases {
		got, ok := AttributeNames(cat, tc.tag, tc.used, tc.prefix)
		if !ok {
			t.Fatalf("%s/%q: unexpected end of session", tc.tag, tc.prefix)
		}
		if !slices.Equal(got, tc.want) {
			t.Fatalf("%s/%q: got %v, want %v", tc.tag, tc.prefix, got, tc.want)
		}
		for _, name := range got {
			if _, taken := tc.used[name]; taken {
				t.Fatalf("%s: used attribute %q offered", tc.tag, name)
			}
		}
	}
}

func TestAttributeNamesEndSession(t *testing.T) {
	cat, err := catalog.New([]catalog.TagEntry{{Name: "bare"}}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := AttributeNames(cat, "missing", nil, ""); ok || got != nil {
		t.Fatalf("unknown tag without globals: got (%v, %v)", got, ok)
	}
	got, ok := AttributeNames(cat, "bare", nil, "")
	if !ok || got == nil || len(got) != 0 {
		t.Fatalf("known tag without attributes: got (%v, %v), want empty list", got, ok)
	}
}

func TestAttributeValues(t *testing.T) {
	cat := testCatalog(t)
	cases := []struct {
		tag, attr, prefix string
		want              []string
	}{
		{"input", "checked", "", []string{"false", "true"}},
		{"div", "checked", "t", []string{"true"}},
		{"input", "type", "", []string{"checkbox", "radio", "text"}},
		{"div", "type", "", []string{"reset", "submit"}},
		{"table", "align", "", []string{"left", "right", "center"}},
		{"table", "align", "r", []string{"right"}},
		{"div", "class", "", []string{}},
		{"div", "lang", "", []string{"de", "en"}},
	}
	for _, tc := range cases {
		got, ok := AttributeValues(cat, tc.tag, tc.attr, tc.prefix)
		if !ok {
			t.Fatalf("%s/%s: unexpected end of session", tc.tag, tc.attr)
		}
		if !slices.Equal(got, tc.want) {
			t.Fatalf("%s/%s/%q: got %v, want %v", tc.tag, tc.attr, tc.prefix, got, tc.want)
		}
	}
	if got, ok := AttributeValues(cat, "div", "nope", ""); ok || got != nil {
		t.Fatalf("missing descriptor: got (%v, %v)", got, ok)
	}
}

func TestCandidates(t *testing.T) {
	cat := testCatalog(t)
	if res := Candidates(NoContext{}, cat); res != nil {
		t.Fatalf("NoContext must end the session, got %+v", res)
	}

	res, ctx := Complete(bufferAt(t, "<table><ro|").Navigator(), cat)
	if ctx.Kind() != KindTag {
		t.Fatalf("expected tag context, got %s", ctx.Kind())
	}
	if res == nil || !slices.Equal(res.Hints, []string{"row"}) || res.Match != "ro" {
		t.Fatalf("unexpected result %+v", res)
	}
	if !res.SelectInitial || res.HandleWideResults {
		t.Fatalf("unexpected flags %+v", res)
	}

	// end tags complete the name of the element they close
	for src, want := range map[string][]string{
		"</ro|":              {"root"},
		"<table><row></ro|": {"row"},
	} {
		res, ctx := Complete(bufferAt(t, src).Navigator(), cat)
		if ctx.Kind() != KindTag || res == nil || !slices.Equal(res.Hints, want) {
			t.Fatalf("%q: got %+v in %s context, want %v", src, res, ctx.Kind(), want)
		}
	}

	res, _ = Complete(bufferAt(t, "<input nope=\"|\"").Navigator(), cat)
	if res != nil {
		t.Fatalf("attribute without descriptor must end the session, got %+v", res)
	}

	res, _ = Complete(bufferAt(t, "<input type=\"x|\"").Navigator(), cat)
	if res == nil || res.Hints == nil || len(res.Hints) != 0 {
		t.Fatalf("expected an empty hint list, got %+v", res)
	}
}
