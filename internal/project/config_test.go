package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, strings.Join([]string{
		"[catalog]",
		`tags = "catalog/tags.json"`,
		`attributes = "catalog/attributes.json"`,
		`schema = "/abs/schema.xsd"`,
		"",
		"[validator]",
		`timeout = "2s"`,
		"",
		"[cache]",
		`dir = ".cache"`,
	}, "\n"))
	nested := filepath.Join(root, "docs", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Root != root {
		t.Fatalf("root = %q, want %q", cfg.Root, root)
	}
	paths := cfg.CatalogPaths()
	if paths.Tags != filepath.Join(root, "catalog", "tags.json") {
		t.Fatalf("tags path = %q", paths.Tags)
	}
	if paths.Schema != "/abs/schema.xsd" {
		t.Fatalf("schema path = %q", paths.Schema)
	}
	if cfg.CacheDir() != filepath.Join(root, ".cache") {
		t.Fatalf("cache dir = %q", cfg.CacheDir())
	}
	if cfg.Validator.Command != "xmllint" || cfg.Validator.Timeout.Duration != 2*time.Second {
		t.Fatalf("validator = %+v", cfg.Validator)
	}
	if cfg.LSP.Debounce.Duration != 300*time.Millisecond {
		t.Fatalf("debounce default = %v", cfg.LSP.Debounce)
	}
}

func TestDiscoverWithoutConfig(t *testing.T) {
	if _, err := Discover(t.TempDir()); !errors.Is(err, ErrNoConfig) {
		// a tagwise.toml above the temp dir would be a broken test machine
		t.Fatalf("expected ErrNoConfig, got %v", err)
	}
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]string{
		"missing catalog":    "[validator]\ncommand = \"x\"\n",
		"missing attributes": "[catalog]\ntags = \"t.json\"\n",
		"bad duration":       "[catalog]\ntags = \"t\"\nattributes = \"a\"\n[lsp]\ndebounce = \"soon\"\n",
		"unknown key":        "[catalog]\ntags = \"t\"\nattributes = \"a\"\ncolour = \"red\"\n",
		"not toml":           "[catalog\n",
	}
	for name, body := range cases {
		path := writeConfig(t, t.TempDir(), body)
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
