package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tagwise/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Summarise the project catalog",
		Args:  cobra.NoArgs,
		RunE:  runCatalog,
	}
	cmd.Flags().Bool("refresh", false, "drop the catalog cache and rebuild it")
	cmd.Flags().Bool("tags", false, "list every tag with its allowed parents")
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

type catalogSummary struct {
	Config      string       `json:"config"`
	Tags        int          `json:"tags"`
	Attributes  int          `json:"attributes"`
	Global      []string     `json:"global"`
	SchemaBytes int          `json:"schemaBytes"`
	Cache       string       `json:"cache,omitempty"`
	CacheHit    bool         `json:"cacheHit"`
	TagList     []tagSummary `json:"tagList,omitempty"`
}

type tagSummary struct {
	Name       string   `json:"name"`
	Parents    []string `json:"parents"`
	Attributes []string `json:"attributes"`
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	refresh, err := cmd.Flags().GetBool("refresh")
	if err != nil {
		return fmt.Errorf("failed to get refresh flag: %w", err)
	}
	listTags, err := cmd.Flags().GetBool("tags")
	if err != nil {
		return fmt.Errorf("failed to get tags flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(format)
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	cfg, err := loadProject(cmd)
	if err != nil {
		return err
	}
	cache := openCache(cmd, cfg)
	if refresh && cache != nil {
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to drop catalog cache: %w", err)
		}
	}
	cat, hit, err := catalog.LoadCached(cmd.Context(), cfg.CatalogPaths(), cache)
	if cat == nil {
		return err
	}
	if err != nil && !quiet(cmd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	sum := catalogSummary{
		Config:      cfg.Path,
		Tags:        len(cat.Tags()),
		Attributes:  len(cat.Attributes()),
		Global:      cat.GlobalAttributes(),
		SchemaBytes: len(cat.Schema()),
		Cache:       cache.Dir(),
		CacheHit:    hit,
	}
	if sum.Global == nil {
		sum.Global = []string{}
	}
	if listTags {
		for _, t := range cat.Tags() {
			sum.TagList = append(sum.TagList, tagSummary{
				Name:       t.Name,
				Parents:    orEmpty(t.AllowedParents),
				Attributes: orEmpty(t.AllowedAttributes),
			})
		}
	}

	if format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	}
	return renderCatalogPretty(cmd.OutOrStdout(), sum)
}

func renderCatalogPretty(w io.Writer, sum catalogSummary) error {
	fmt.Fprintf(w, "config:     %s\n", sum.Config)
	fmt.Fprintf(w, "tags:       %d\n", sum.Tags)
	fmt.Fprintf(w, "attributes: %d\n", sum.Attributes)
	fmt.Fprintf(w, "global:     %s\n", strings.Join(sum.Global, ", "))
	fmt.Fprintf(w, "schema:     %d bytes\n", sum.SchemaBytes)
	if sum.Cache != "" {
		state := "rebuilt"
		if sum.CacheHit {
			state = "hit"
		}
		fmt.Fprintf(w, "cache:      %s (%s)\n", sum.Cache, state)
	}
	for _, t := range sum.TagList {
		parents := "anywhere"
		if len(t.Parents) > 0 {
			parents = strings.Join(t.Parents, " ")
		}
		if _, err := fmt.Fprintf(w, "  <%s> in %s: %s\n", t.Name, parents, strings.Join(t.Attributes, " ")); err != nil {
			return err
		}
	}
	return nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
