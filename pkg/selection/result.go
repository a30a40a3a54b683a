package selection

import (
	"sort"

	"romsieve/pkg/catalog"
)

// Result is the outcome of one engine run.
type Result struct {
	// Winners holds the selected entry of every group that produced one,
	// in group-discovery order.
	Winners []catalog.Entry

	// Invalid lists the raw names of entries that could not be scored
	// (no region tag group).
	Invalid []string

	ProcessedCount int
	InvalidCount   int
	VetoedCount    int
	SelectedCount  int

	// Traces holds the per-group line items when analysis mode is on.
	Traces []GroupTrace

	attrIndex map[string]struct{}
}

// GroupTrace records how every candidate in one group fared.
type GroupTrace struct {
	Key        string
	Candidates []CandidateTrace
}

// CandidateTrace is one line item of the analysis output.
type CandidateTrace struct {
	Name   string
	Score  float64
	Vetoed bool
	Winner bool
}

// Attributes returns every distinct tag token seen across all entries,
// sorted. Vetoed and unselected entries contribute too; the index is a
// diagnostic, not a selection artifact.
func (r *Result) Attributes() []string {
	attrs := make([]string, 0, len(r.attrIndex))
	for a := range r.attrIndex {
		attrs = append(attrs, a)
	}
	sort.Strings(attrs)
	return attrs
}

// HasAttribute reports whether the tag token was seen during the run.
func (r *Result) HasAttribute(tag string) bool {
	_, ok := r.attrIndex[tag]
	return ok
}

func (r *Result) addAttributes(tags []string) {
	for _, t := range tags {
		r.attrIndex[t] = struct{}{}
	}
}
