package catalog

import (
	"slices"
	"testing"
)

const testTags = `{
  "table": {"attributes": ["border", "summary"], "context": ["!top", "div"]},
  "row":   {"attributes": ["span"], "context": ["table"]},
  "div":   {}
}`

const testAttrs = `{
  "id":       {"global": "true"},
  "hidden":   {"type": "flag", "global": true},
  "border":   {"type": "boolean"},
  "span":     {"attribOption": ["3", "1", "2"], "noSort": true},
  "row/span": {"attribOption": ["4"]},
  "summary":  {"type": "text"}
}`

func TestParseTagsKeepsOrder(t *testing.T) {
	tags, err := ParseTags([]byte(testTags))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var names []string
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	if want := []string{"table", "row", "div"}; !slices.Equal(names, want) {
		t.Fatalf("order = %v, want %v", names, want)
	}
	if !slices.Equal(tags[0].AllowedAttributes, []string{"border", "summary"}) {
		t.Fatalf("unexpected attributes %v", tags[0].AllowedAttributes)
	}
	if len(tags[2].AllowedParents) != 0 {
		t.Fatalf("div must be unrestricted, got %v", tags[2].AllowedParents)
	}
}

func TestParseAttributesKinds(t *testing.T) {
	attrs, err := ParseAttributes([]byte(testAttrs))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := map[string]AttrKind{
		"id":       AttrFree,
		"hidden":   AttrFlag,
		"border":   AttrBoolean,
		"span":     AttrEnumerated,
		"row/span": AttrEnumerated,
		"summary":  AttrFree,
	}
	for _, a := range attrs {
		if a.Kind != want[a.Key] {
			t.Errorf("%s: kind %v, want %v", a.Key, a.Kind, want[a.Key])
		}
	}
	if !attrs[0].Global || !attrs[1].Global || attrs[2].Global {
		t.Fatalf("unexpected global flags: %+v", attrs[:3])
	}
	if !attrs[3].SortDisabled {
		t.Fatal("span must disable sorting")
	}
}

func TestParseRejectsNonObject(t *testing.T) {
	if _, err := ParseTags([]byte(`["a"]`)); err == nil {
		t.Fatal("expected error for array catalog")
	}
	if _, err := ParseAttributes([]byte(`{"x": {"global": 3}}`)); err == nil {
		t.Fatal("expected error for numeric global flag")
	}
}

func TestParseCatalog(t *testing.T) {
	cat, err := Parse([]byte(testTags), []byte(testAttrs), []byte("<xs:schema/>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if want := []string{"id", "hidden"}; !slices.Equal(cat.GlobalAttributes(), want) {
		t.Fatalf("globals = %v, want %v", cat.GlobalAttributes(), want)
	}
	if e, ok := cat.Attribute("row", "span"); !ok || e.Key != "row/span" {
		t.Fatalf("expected row/span descriptor, got %+v", e)
	}
	if string(cat.Schema()) != "<xs:schema/>" {
		t.Fatalf("unexpected schema %q", cat.Schema())
	}
}
