package catalog

import (
	"slices"
	"strings"
)

// RootTag is the parent name used for elements that have no enclosing tag.
const RootTag = "!top"

// AttrKind classifies how an attribute's value is completed and inserted.
type AttrKind uint8

const (
	// AttrFree accepts any value; no value candidates are offered.
	AttrFree AttrKind = iota
	// AttrBoolean offers exactly "false" and "true".
	AttrBoolean
	// AttrFlag is a valueless attribute inserted as a bare name.
	AttrFlag
	// AttrEnumerated offers AllowedValues.
	AttrEnumerated
)

func (k AttrKind) String() string {
	switch k {
	case AttrFree:
		return "free"
	case AttrBoolean:
		return "boolean"
	case AttrFlag:
		return "flag"
	case AttrEnumerated:
		return "enumerated"
	}
	return "unknown"
}

// TagEntry describes one legal element.
type TagEntry struct {
	Name              string   `msgpack:"name"`
	AllowedParents    []string `msgpack:"parents"`
	AllowedAttributes []string `msgpack:"attrs"`
}

// AllowsParent reports whether the element may appear inside parent.
// An empty parent list means the element is unrestricted.
func (e *TagEntry) AllowsParent(parent string) bool {
	return len(e.AllowedParents) == 0 || slices.Contains(e.AllowedParents, parent)
}

// AttrEntry describes an attribute, either globally or for one tag.
type AttrEntry struct {
	Key           string   `msgpack:"key"`
	Kind          AttrKind `msgpack:"kind"`
	Global        bool     `msgpack:"global"`
	AllowedValues []string `msgpack:"values"`
	SortDisabled  bool     `msgpack:"nosort"`
}

// Name returns the attribute part of the key ("tag/attr" -> "attr").
func (e *AttrEntry) Name() string {
	if i := strings.LastIndexByte(e.Key, '/'); i >= 0 {
		return e.Key[i+1:]
	}
	return e.Key
}

// CompositeKey builds the "tag/attribute" lookup key.
func CompositeKey(tag, attr string) string {
	return tag + "/" + attr
}
