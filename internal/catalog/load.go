package catalog

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
)

// Paths locates the three catalog inputs. Schema may be empty.
type Paths struct {
	Tags       string
	Attributes string
	Schema     string
}

type rawInputs struct {
	tags   []byte
	attrs  []byte
	schema []byte
}

// Load reads and decodes the catalog files.
func Load(ctx context.Context, paths Paths) (*Catalog, error) {
	raw, err := readInputs(ctx, paths)
	if err != nil {
		return nil, err
	}
	return Parse(raw.tags, raw.attrs, raw.schema)
}

// Parse builds a Catalog from in-memory tag and attribute JSON plus schema text.
func Parse(tagsJSON, attrsJSON, schema []byte) (*Catalog, error) {
	var (
		tags  []TagEntry
		attrs []AttrEntry
		err   error
	)
	if len(tagsJSON) > 0 {
		if tags, err = ParseTags(tagsJSON); err != nil {
			return nil, err
		}
	}
	if len(attrsJSON) > 0 {
		if attrs, err = ParseAttributes(attrsJSON); err != nil {
			return nil, err
		}
	}
	return New(tags, attrs, schema)
}

// LoadCached behaves like Load but consults cache first. The cache key is
// the digest of all three inputs, so any edit to a catalog file is a miss.
// A nil cache disables caching.
func LoadCached(ctx context.Context, paths Paths, cache *DiskCache) (*Catalog, bool, error) {
	raw, err := readInputs(ctx, paths)
	if err != nil {
		return nil, false, err
	}
	key := raw.digest()
	var snap Snapshot
	if hit, err := cache.Get(key, &snap); err == nil && hit && snap.Version == snapshotVersion {
		cat, err := New(snap.Tags, snap.Attrs, snap.Schema)
		if err == nil {
			return cat, true, nil
		}
	}
	cat, err := Parse(raw.tags, raw.attrs, raw.schema)
	if err != nil {
		return nil, false, err
	}
	if err := cache.Put(key, cat.Snapshot()); err != nil {
		return cat, false, fmt.Errorf("catalog cache: %w", err)
	}
	return cat, false, nil
}

// readInputs loads the catalog files concurrently.
func readInputs(ctx context.Context, paths Paths) (rawInputs, error) {
	var raw rawInputs
	g, gctx := errgroup.WithContext(ctx)
	read := func(path string, dst *[]byte) {
		if path == "" {
			return
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// #nosec G304 -- catalog paths come from project configuration
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read catalog %s: %w", path, err)
			}
			*dst = data
			return nil
		})
	}
	read(paths.Tags, &raw.tags)
	read(paths.Attributes, &raw.attrs)
	read(paths.Schema, &raw.schema)
	if err := g.Wait(); err != nil {
		return rawInputs{}, err
	}
	return raw, nil
}

func (r rawInputs) digest() Digest {
	h := sha256.New()
	for _, part := range [][]byte{r.tags, r.attrs, r.schema} {
		fmt.Fprintf(h, "%d:", len(part))
		h.Write(part)
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}
