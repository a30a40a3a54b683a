// Package catalog defines the entry model shared by every stage of the
// selection pipeline and the parser that extracts tag metadata from
// release names.
package catalog

import "strings"

// Entry is one catalog item. Entries are built once by a parser or a Dat
// reader and are read-only from then on.
type Entry struct {
	// ID is the stable identifier used for parent/clone linkage. For flat
	// catalogs it equals RawName; for Dat catalogs it is the name attribute.
	ID string

	// RawName is the original display name, unmodified. For Dat catalogs
	// this is the description text, which is where the tag groups live.
	RawName string

	// BaseName is RawName with all tag groups stripped. Used for grouping
	// and for name-based skip rules.
	BaseName string

	// Tags holds one token per tag group, in order of appearance.
	Tags []string

	// Countries is the comma-split contents of the first parenthesized
	// group. Empty means the entry is invalid and must not be scored.
	Countries []string

	// ParentKey names the ID of the entry this one is a clone of, or "".
	ParentKey string

	// Manufacturer is the manufacturer string from structured metadata,
	// or "" when the source has none.
	Manufacturer string

	// BIOS marks system firmware entries.
	BIOS bool

	// Meta is an opaque collaborator payload (for Dat catalogs, the
	// underlying XML element) carried through so the projector can
	// re-emit it. The core never looks inside.
	Meta interface{}
}

// Valid reports whether the entry carries at least one region tag group.
// Invalid entries are reported and excluded from scoring.
func (e Entry) Valid() bool {
	return len(e.Countries) > 0
}

// PrefixKey returns the part of the name before the first tag group,
// trimmed. Adjacent entries sharing this key belong to the same group
// under the sequential-prefix strategy.
func (e Entry) PrefixKey() string {
	name := e.RawName
	if i := strings.IndexAny(name, "(["); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

// Group is a set of entries that compete for one selection slot.
type Group struct {
	// Key is the shared base name or the parent identifier.
	Key string

	// Candidates holds every entry in the group, in input order. The
	// order matters: ties are broken in favor of the last candidate
	// reaching the running maximum.
	Candidates []Entry
}
