// Package project locates and decodes tagwise.toml.
package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"tagwise/internal/catalog"
)

// ErrNoConfig is returned by Discover when no tagwise.toml exists above the
// start directory.
var ErrNoConfig = errors.New("no " + FileName + " found")

const (
	defaultValidator = "xmllint"
	defaultTimeout   = 10 * time.Second
	defaultDebounce  = 300 * time.Millisecond
)

// Config is the decoded tagwise.toml.
type Config struct {
	Path string `toml:"-"`
	Root string `toml:"-"` // directory holding Path; relative paths resolve against it

	Catalog   CatalogConfig   `toml:"catalog"`
	Validator ValidatorConfig `toml:"validator"`
	Cache     CacheConfig     `toml:"cache"`
	LSP       LSPConfig       `toml:"lsp"`
}

type CatalogConfig struct {
	Tags       string `toml:"tags"`
	Attributes string `toml:"attributes"`
	Schema     string `toml:"schema"`
}

type ValidatorConfig struct {
	Command string   `toml:"command"`
	Timeout Duration `toml:"timeout"`
}

type CacheConfig struct {
	Disabled bool   `toml:"disabled"`
	Dir      string `toml:"dir"`
}

type LSPConfig struct {
	Debounce Duration `toml:"debounce"`
}

// Duration decodes TOML strings such as "300ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("negative duration %q", text)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Discover finds tagwise.toml above startDir and loads it.
func Discover(startDir string) (*Config, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoConfig
	}
	return Load(path)
}

// Load decodes the configuration at path and fills defaults.
func Load(path string) (*Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	var cfg Config
	meta, err := toml.DecodeFile(abs, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", abs, err)
	}
	if !meta.IsDefined("catalog") {
		return nil, fmt.Errorf("%s: missing [catalog]", abs)
	}
	if !meta.IsDefined("catalog", "tags") || strings.TrimSpace(cfg.Catalog.Tags) == "" {
		return nil, fmt.Errorf("%s: missing [catalog].tags", abs)
	}
	if !meta.IsDefined("catalog", "attributes") || strings.TrimSpace(cfg.Catalog.Attributes) == "" {
		return nil, fmt.Errorf("%s: missing [catalog].attributes", abs)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %s", abs, undecoded[0])
	}

	cfg.Path = abs
	cfg.Root = filepath.Dir(abs)
	if !meta.IsDefined("validator", "command") || strings.TrimSpace(cfg.Validator.Command) == "" {
		cfg.Validator.Command = defaultValidator
	}
	if !meta.IsDefined("validator", "timeout") {
		cfg.Validator.Timeout.Duration = defaultTimeout
	}
	if !meta.IsDefined("lsp", "debounce") {
		cfg.LSP.Debounce.Duration = defaultDebounce
	}
	return &cfg, nil
}

// CatalogPaths resolves the catalog files against the project root.
func (c *Config) CatalogPaths() catalog.Paths {
	return catalog.Paths{
		Tags:       c.resolve(c.Catalog.Tags),
		Attributes: c.resolve(c.Catalog.Attributes),
		Schema:     c.resolve(c.Catalog.Schema),
	}
}

// CacheDir returns the configured cache directory; "" selects the user cache.
func (c *Config) CacheDir() string {
	return c.resolve(c.Cache.Dir)
}

func (c *Config) resolve(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, filepath.FromSlash(p))
}
