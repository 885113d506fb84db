package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type tagJSON struct {
	Attributes []string `json:"attributes"`
	Context    []string `json:"context"`
}

type attrJSON struct {
	Type         string    `json:"type"`
	AttribOption []string  `json:"attribOption"`
	Global       looseBool `json:"global"`
	NoSort       looseBool `json:"noSort"`
}

// looseBool accepts both JSON booleans and the strings "true"/"false".
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	switch strings.TrimSpace(string(data)) {
	case "true", `"true"`:
		*b = true
	case "false", `"false"`, "null", `""`:
		*b = false
	default:
		return fmt.Errorf("expected boolean, got %s", data)
	}
	return nil
}

// ParseTags decodes a tag catalog, keeping the key order of the document.
func ParseTags(data []byte) ([]TagEntry, error) {
	var out []TagEntry
	err := decodeOrdered(data, func(key string, v tagJSON) error {
		out = append(out, TagEntry{
			Name:              key,
			AllowedParents:    v.Context,
			AllowedAttributes: v.Attributes,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("tags: %w", err)
	}
	return out, nil
}

// ParseAttributes decodes an attribute catalog, keeping the key order of the document.
func ParseAttributes(data []byte) ([]AttrEntry, error) {
	var out []AttrEntry
	err := decodeOrdered(data, func(key string, v attrJSON) error {
		out = append(out, AttrEntry{
			Key:           key,
			Kind:          kindOf(v.Type, v.AttribOption),
			Global:        bool(v.Global),
			AllowedValues: v.AttribOption,
			SortDisabled:  bool(v.NoSort),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("attributes: %w", err)
	}
	return out, nil
}

func kindOf(typ string, options []string) AttrKind {
	switch typ {
	case "boolean":
		return AttrBoolean
	case "flag":
		return AttrFlag
	}
	if len(options) > 0 {
		return AttrEnumerated
	}
	return AttrFree
}

// decodeOrdered walks a top-level JSON object key by key. encoding/json maps
// lose insertion order, and attribute-name candidates are presented in
// catalog order.
func decodeOrdered[T any](data []byte, fn func(key string, v T) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected top-level object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}
		var v T
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("%q: %w", key, err)
		}
		if err := fn(key, v); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
