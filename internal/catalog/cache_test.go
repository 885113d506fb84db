package catalog

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeCatalogFiles(t *testing.T, dir string) Paths {
	t.Helper()
	paths := Paths{
		Tags:       filepath.Join(dir, "tags.json"),
		Attributes: filepath.Join(dir, "attributes.json"),
		Schema:     filepath.Join(dir, "schema.xsd"),
	}
	files := map[string]string{
		paths.Tags:       testTags,
		paths.Attributes: testAttrs,
		paths.Schema:     "<xs:schema/>",
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return paths
}

func TestLoadCachedMissThenHit(t *testing.T) {
	dir := t.TempDir()
	paths := writeCatalogFiles(t, dir)
	cache, err := OpenDiskCache(filepath.Join(dir, "cache"), "tagwise")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}

	first, hit, err := LoadCached(context.Background(), paths, cache)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if hit {
		t.Fatal("first load must miss")
	}
	second, hit, err := LoadCached(context.Background(), paths, cache)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if !hit {
		t.Fatal("second load must hit")
	}
	if !slices.Equal(first.GlobalAttributes(), second.GlobalAttributes()) {
		t.Fatalf("globals differ: %v vs %v", first.GlobalAttributes(), second.GlobalAttributes())
	}
	if len(second.Tags()) != 3 || string(second.Schema()) != "<xs:schema/>" {
		t.Fatalf("unexpected cached catalog: %d tags, schema %q", len(second.Tags()), second.Schema())
	}

	if err := os.WriteFile(paths.Schema, []byte("<xs:schema version='2'/>"), 0o644); err != nil {
		t.Fatalf("rewrite schema: %v", err)
	}
	_, hit, err = LoadCached(context.Background(), paths, cache)
	if err != nil {
		t.Fatalf("third load: %v", err)
	}
	if hit {
		t.Fatal("edited input must miss")
	}
}

func TestLoadCachedWithoutCache(t *testing.T) {
	paths := writeCatalogFiles(t, t.TempDir())
	cat, hit, err := LoadCached(context.Background(), paths, nil)
	if err != nil || hit {
		t.Fatalf("expected uncached load, hit=%v err=%v", hit, err)
	}
	if _, ok := cat.Tag("row"); !ok {
		t.Fatal("expected row tag")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), Paths{Tags: filepath.Join(t.TempDir(), "nope.json")})
	if err == nil {
		t.Fatal("expected read error")
	}
}

func TestDropAll(t *testing.T) {
	dir := t.TempDir()
	paths := writeCatalogFiles(t, dir)
	cache, err := OpenDiskCache(filepath.Join(dir, "cache"), "tagwise")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	if _, _, err := LoadCached(context.Background(), paths, cache); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if _, hit, _ := LoadCached(context.Background(), paths, cache); hit {
		t.Fatal("expected miss after DropAll")
	}
}
