package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tagwise/internal/catalog"
	"tagwise/internal/project"
	"tagwise/internal/trace"
	"tagwise/internal/validate"
)

const cacheApp = "tagwise"

// loadProject reads --config, or discovers tagwise.toml from the working directory.
func loadProject(cmd *cobra.Command) (*project.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return project.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := project.Discover(wd)
	if err != nil {
		return nil, fmt.Errorf("%w (pass --config)", err)
	}
	return cfg, nil
}

// openCache returns nil when caching is disabled; cache errors only warn.
func openCache(cmd *cobra.Command, cfg *project.Config) *catalog.DiskCache {
	if cfg.Cache.Disabled {
		return nil
	}
	cache, err := catalog.OpenDiskCache(cfg.CacheDir(), cacheApp)
	if err != nil {
		if !quiet(cmd) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: catalog cache disabled: %v\n", err)
		}
		return nil
	}
	return cache
}

// loadCatalog loads the project catalog through the disk cache.
func loadCatalog(cmd *cobra.Command, cfg *project.Config) (*catalog.Catalog, error) {
	ctx := cmd.Context()
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeStep, "catalog", trace.CurrentSpan(ctx))
	var cat *catalog.Catalog
	err := phase("catalog", func() (string, error) {
		var (
			hit bool
			err error
		)
		cat, hit, err = catalog.LoadCached(ctx, cfg.CatalogPaths(), openCache(cmd, cfg))
		if cat == nil {
			return "", err
		}
		if err != nil && !quiet(cmd) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}
		if hit {
			return "cache hit", nil
		}
		return "parsed", nil
	})
	if err != nil {
		span.End("failed")
		return nil, err
	}
	span.End("")
	return cat, nil
}

func newValidator(cfg *project.Config) *validate.ExecValidator {
	return &validate.ExecValidator{
		Command: cfg.Validator.Command,
		Timeout: cfg.Validator.Timeout.Duration,
	}
}
