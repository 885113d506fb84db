package catalog

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// ErrDuplicateKey is returned when a tag name or attribute key appears twice.
var ErrDuplicateKey = errors.New("duplicate catalog key")

// Catalog is the immutable, process-wide reference data.
type Catalog struct {
	tags      map[string]*TagEntry
	tagOrder  []string
	attrs     map[string]*AttrEntry
	attrOrder []string
	globals   []string
	schema    []byte
}

// New validates the entries and builds a Catalog. Names are NFC-normalised so
// that visually identical keys cannot coexist.
func New(tags []TagEntry, attrs []AttrEntry, schema []byte) (*Catalog, error) {
	c := &Catalog{
		tags:      make(map[string]*TagEntry, len(tags)),
		tagOrder:  make([]string, 0, len(tags)),
		attrs:     make(map[string]*AttrEntry, len(attrs)),
		attrOrder: make([]string, 0, len(attrs)),
		schema:    schema,
	}
	for i := range tags {
		entry := normalizeTag(tags[i])
		if entry.Name == "" {
			return nil, fmt.Errorf("tag entry %d: empty name", i)
		}
		if _, dup := c.tags[entry.Name]; dup {
			return nil, fmt.Errorf("tag %q: %w", entry.Name, ErrDuplicateKey)
		}
		c.tags[entry.Name] = &entry
		c.tagOrder = append(c.tagOrder, entry.Name)
	}
	seenGlobal := make(map[string]struct{})
	for i := range attrs {
		entry := normalizeAttr(attrs[i])
		if entry.Key == "" {
			return nil, fmt.Errorf("attribute entry %d: empty key", i)
		}
		if _, dup := c.attrs[entry.Key]; dup {
			return nil, fmt.Errorf("attribute %q: %w", entry.Key, ErrDuplicateKey)
		}
		c.attrs[entry.Key] = &entry
		c.attrOrder = append(c.attrOrder, entry.Key)
		if entry.Global {
			name := entry.Name()
			if _, ok := seenGlobal[name]; !ok {
				seenGlobal[name] = struct{}{}
				c.globals = append(c.globals, name)
			}
		}
	}
	return c, nil
}

// Tag returns the entry for name.
func (c *Catalog) Tag(name string) (*TagEntry, bool) {
	if c == nil {
		return nil, false
	}
	e, ok := c.tags[name]
	return e, ok
}

// Tags returns all tag entries in catalog order.
func (c *Catalog) Tags() []*TagEntry {
	if c == nil {
		return nil
	}
	out := make([]*TagEntry, 0, len(c.tagOrder))
	for _, name := range c.tagOrder {
		out = append(out, c.tags[name])
	}
	return out
}

// Attributes returns all attribute descriptors in catalog order.
func (c *Catalog) Attributes() []*AttrEntry {
	if c == nil {
		return nil
	}
	out := make([]*AttrEntry, 0, len(c.attrOrder))
	for _, key := range c.attrOrder {
		out = append(out, c.attrs[key])
	}
	return out
}

// Attribute resolves the descriptor for attr on tag: the composite
// "tag/attr" key wins, the bare attr key is the fallback.
func (c *Catalog) Attribute(tag, attr string) (*AttrEntry, bool) {
	if c == nil || attr == "" {
		return nil, false
	}
	if tag != "" {
		if e, ok := c.attrs[CompositeKey(tag, attr)]; ok {
			return e, true
		}
	}
	e, ok := c.attrs[attr]
	return e, ok
}

// GlobalAttributes returns the names of attributes valid on every tag, in
// catalog order.
func (c *Catalog) GlobalAttributes() []string {
	if c == nil {
		return nil
	}
	return c.globals
}

// Schema returns the schema text passed to the validator.
func (c *Catalog) Schema() []byte {
	if c == nil {
		return nil
	}
	return c.schema
}

// Snapshot returns the entries in catalog order, suitable for caching.
func (c *Catalog) Snapshot() *Snapshot {
	s := &Snapshot{Version: snapshotVersion, Schema: c.schema}
	for _, e := range c.Tags() {
		s.Tags = append(s.Tags, *e)
	}
	for _, e := range c.Attributes() {
		s.Attrs = append(s.Attrs, *e)
	}
	return s
}

func normalizeTag(e TagEntry) TagEntry {
	e.Name = norm.NFC.String(e.Name)
	e.AllowedParents = normalizeList(e.AllowedParents)
	e.AllowedAttributes = normalizeList(e.AllowedAttributes)
	return e
}

func normalizeAttr(e AttrEntry) AttrEntry {
	e.Key = norm.NFC.String(e.Key)
	e.AllowedValues = normalizeList(e.AllowedValues)
	return e
}

func normalizeList(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = norm.NFC.String(s)
	}
	return out
}
