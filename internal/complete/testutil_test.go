package complete

import (
	"strings"
	"testing"

	"tagwise/internal/catalog"
)

// withCursor strips the '|' marker from src and returns the cursor offset.
func withCursor(t *testing.T, src string) (string, uint32) {
	t.Helper()
	idx := strings.Index(src, "|")
	if idx < 0 {
		t.Fatalf("no cursor marker in %q", src)
	}
	return src[:idx] + src[idx+1:], uint32(idx)
}

func bufferAt(t *testing.T, src string) *TextBuffer {
	t.Helper()
	text, cursor := withCursor(t, src)
	return NewTextBuffer("test.xml", text, cursor)
}

func resolveAt(t *testing.T, src string) Context {
	t.Helper()
	return Resolve(bufferAt(t, src).Navigator())
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	tags := []catalog.TagEntry{
		{Name: "div", AllowedAttributes: []string{"class", "id"}},
		{Name: "input", AllowedAttributes: []string{"type", "value", "disabled", "checked"}},
		{Name: "table", AllowedAttributes: []string{"border", "align"}},
		{Name: "row", AllowedParents: []string{"table"}, AllowedAttributes: []string{"span"}},
		{Name: "root", AllowedParents: []string{catalog.RootTag}},
		{Name: "region"},
	}
	attrs := []catalog.AttrEntry{
		{Key: "id", Global: true},
		{Key: "lang", Global: true, Kind: catalog.AttrEnumerated, AllowedValues: []string{"en", "de"}},
		{Key: "class"},
		{Key: "type", Kind: catalog.AttrEnumerated, AllowedValues: []string{"submit", "reset"}},
		{Key: "input/type", Kind: catalog.AttrEnumerated, AllowedValues: []string{"text", "radio", "checkbox"}},
		{Key: "checked", Kind: catalog.AttrBoolean},
		{Key: "disabled", Kind: catalog.AttrFlag},
		{Key: "align", Kind: catalog.AttrEnumerated, AllowedValues: []string{"left", "right", "center"}, SortDisabled: true},
	}
	cat, err := catalog.New(tags, attrs, nil)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

func setOf(names ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}
