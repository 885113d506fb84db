package catalog

import (
	"errors"
	"slices"
	"testing"
)

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]TagEntry{{Name: "a"}, {Name: "a"}}, nil, nil)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected duplicate tag error, got %v", err)
	}
	_, err = New(nil, []AttrEntry{{Key: "id"}, {Key: "id"}}, nil)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected duplicate attribute error, got %v", err)
	}
}

func TestNewNormalizesNames(t *testing.T) {
	// "é" precomposed vs "e" + combining acute
	_, err := New([]TagEntry{{Name: "caf\u00e9"}, {Name: "cafe\u0301"}}, nil, nil)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected NFC-equivalent names to collide, got %v", err)
	}
}

func TestAttributeCompositeFallback(t *testing.T) {
	cat, err := New(nil, []AttrEntry{
		{Key: "type", Kind: AttrFree},
		{Key: "input/type", Kind: AttrEnumerated, AllowedValues: []string{"text", "checkbox"}},
	}, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	e, ok := cat.Attribute("input", "type")
	if !ok || e.Key != "input/type" {
		t.Fatalf("expected composite descriptor, got %+v", e)
	}
	e, ok = cat.Attribute("button", "type")
	if !ok || e.Key != "type" {
		t.Fatalf("expected bare fallback, got %+v", e)
	}
	if _, ok := cat.Attribute("button", "missing"); ok {
		t.Fatal("unexpected descriptor for unknown attribute")
	}
}

func TestGlobalAttributesKeepOrder(t *testing.T) {
	cat, err := New(nil, []AttrEntry{
		{Key: "title", Global: true},
		{Key: "href"},
		{Key: "id", Global: true},
		{Key: "class", Global: true},
	}, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	want := []string{"title", "id", "class"}
	if got := cat.GlobalAttributes(); !slices.Equal(got, want) {
		t.Fatalf("globals = %v, want %v", got, want)
	}
}

func TestAllowsParent(t *testing.T) {
	row := TagEntry{Name: "row", AllowedParents: []string{"table"}}
	if !row.AllowsParent("table") || row.AllowsParent("div") {
		t.Fatal("row must only be allowed inside table")
	}
	free := TagEntry{Name: "div"}
	if !free.AllowsParent(RootTag) {
		t.Fatal("unrestricted tag must be allowed anywhere")
	}
}

func TestNilCatalogIsEmpty(t *testing.T) {
	var cat *Catalog
	if _, ok := cat.Tag("a"); ok {
		t.Fatal("nil catalog has no tags")
	}
	if cat.GlobalAttributes() != nil || cat.Schema() != nil {
		t.Fatal("nil catalog has no attributes or schema")
	}
}
