package complete

import (
	"slices"
	"strings"

	"tagwise/internal/catalog"
)

// TagNames returns the catalog tags starting with prefix that may appear
// inside parent, sorted ascending.
func TagNames(cat *catalog.Catalog, prefix, parent string) []string {
	prefix = strings.TrimPrefix(prefix, "<")
	out := []string{}
	for _, e := range cat.Tags() {
		if !strings.HasPrefix(e.Name, prefix) || !e.AllowsParent(parent) {
			continue
		}
		out = append(out, e.Name)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
