// Package group partitions a catalog into groups of entries competing
// for one selection slot. Two strategies exist: sequential-prefix for
// flat, name-sorted catalogs, and explicit parent/clone links for
// hierarchical Dat catalogs.
package group

import (
	"romsieve/pkg/catalog"
	"romsieve/pkg/logging"
)

// Grouper turns a sequence of entries into groups. Implementations must
// preserve input order across groups and within each candidate list; the
// tie-break rule depends on it.
type Grouper interface {
	Group(entries []catalog.Entry) []catalog.Group
}

// SequentialPrefix groups adjacent entries sharing the same pre-tag name
// prefix. Input is assumed sorted by raw name.
func SequentialPrefix() Grouper {
	return sequentialPrefix{}
}

type sequentialPrefix struct{}

func (sequentialPrefix) Group(entries []catalog.Entry) []catalog.Group {
	var groups []catalog.Group
	var current catalog.Group

	for _, e := range entries {
		key := e.PrefixKey()
		if len(current.Candidates) > 0 && key != current.Key {
			groups = append(groups, current)
			current = catalog.Group{}
		}
		if len(current.Candidates) == 0 {
			current.Key = key
		}
		current.Candidates = append(current.Candidates, e)
	}
	if len(current.Candidates) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// ExplicitLink groups entries by declared parent/clone relations. Each
// parent forms a group with itself as the only scored candidate; its
// clones are recorded separately for the projector, since clones are
// never scored. Relation-free entries form singleton groups unless they
// carry a BIOS marker.
type ExplicitLink struct {
	clones map[string][]catalog.Entry
}

// NewExplicitLink returns an explicit-link grouper. Call Group before
// Clones; the clone map is rebuilt on every Group call.
func NewExplicitLink() *ExplicitLink {
	return &ExplicitLink{clones: make(map[string][]catalog.Entry)}
}

func (g *ExplicitLink) Group(entries []catalog.Entry) []catalog.Group {
	logger := logging.GetLogger("group.explicitlink")
	g.clones = make(map[string][]catalog.Entry)

	parents := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.ParentKey == "" {
			parents[e.ID] = struct{}{}
		}
	}

	var groups []catalog.Group
	for _, e := range entries {
		if e.ParentKey != "" {
			if _, ok := parents[e.ParentKey]; !ok {
				logger.Debug().
					Str("clone", e.ID).
					Str("parent", e.ParentKey).
					Msg("Clone references a parent outside the catalog")
			}
			g.clones[e.ParentKey] = append(g.clones[e.ParentKey], e)
			continue
		}
		if e.BIOS {
			continue
		}
		groups = append(groups, catalog.Group{
			Key:        e.ID,
			Candidates: []catalog.Entry{e},
		})
	}
	return groups
}

// Clones returns the parent-ID to clone-list mapping gathered by the
// last Group call.
func (g *ExplicitLink) Clones() map[string][]catalog.Entry {
	return g.clones
}
