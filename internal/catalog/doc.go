// Package catalog holds the static reference data used by completion: the
// legal tags with their allowed parents and attributes, the attribute
// descriptors, and the schema text handed to the validator.
//
// A Catalog is built once (Load, LoadCached or New) and is read-only
// afterwards, so concurrent readers need no locking.
//
// Attribute descriptors are keyed either by bare attribute name or by the
// composite "tag/attribute" form. Attribute resolves the composite key first
// and falls back to the bare name.
package catalog
