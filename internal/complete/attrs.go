package complete

import (
	"slices"
	"strings"

	"tagwise/internal/catalog"
)

// AttributeNames lists the attributes that can still be added to tag: the
// tag's own attributes, then the global ones, both in catalog order. The
// list is not re-sorted. ok is false when the catalog knows nothing about
// the tag and has no global attributes, which ends the session.
func AttributeNames(cat *catalog.Catalog, tag string, used map[string]struct{}, prefix string) (names []string, ok bool) {
	entry, hasTag := cat.Tag(tag)
	globals := cat.GlobalAttributes()
	if !hasTag && len(globals) == 0 {
		return nil, false
	}

	var own []string
	if hasTag {
		own = entry.AllowedAttributes
	}
	names = []string{}
	seen := make(map[string]struct{}, len(own)+len(globals))
	for _, list := range [][]string{own, globals} {
		for _, name := range list {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			if _, taken := used[name]; taken || !strings.HasPrefix(name, prefix) {
				continue
			}
			names = append(names, name)
		}
	}
	return names, true
}

// AttributeValues lists the values offered for attr on tag. ok is false
// when the attribute has no descriptor.
func AttributeValues(cat *catalog.Catalog, tag, attr, prefix string) (values []string, ok bool) {
	desc, ok := cat.Attribute(tag, attr)
	if !ok {
		return nil, false
	}
	var options []string
	switch {
	case desc.Kind == catalog.AttrBoolean:
		options = []string{"false", "true"}
	case len(desc.AllowedValues) > 0:
		options = desc.AllowedValues
	}

	values = []string{}
	for _, v := range options {
		if strings.HasPrefix(v, prefix) {
			values = append(values, v)
		}
	}
	if !desc.SortDisabled {
		slices.Sort(values)
	}
	return values, true
}
