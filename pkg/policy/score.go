package policy

import (
	"strings"

	"romsieve/pkg/catalog"
)

// Score is the outcome of evaluating one entry against the policy.
type Score struct {
	Value  float64
	Vetoed bool
}

// GroupContext carries the per-group scoring state: a version counter
// per country-rank bucket. It must be created fresh for every group and
// discarded afterwards; sharing one across groups corrupts the version
// bonus for unrelated groups.
type GroupContext struct {
	versionSeen map[int]int
}

// NewGroupContext returns an empty context for one group's evaluation.
func NewGroupContext() *GroupContext {
	return &GroupContext{versionSeen: make(map[int]int)}
}

// unrankedBucket keys the version counter for entries whose countries
// are all outside the preference list.
const unrankedBucket = -1

// Score evaluates one entry. Steps run in a fixed order: country rank,
// re-edition bonus, escalating version bonus, force-include bonus, then
// the veto checks, which unconditionally pin the score to VetoScore.
func (p *Policy) Score(e catalog.Entry, ctx *GroupContext) Score {
	value := 0.0
	vetoed := false

	// Country rank: best (lowest) preference index wins; contribution
	// shrinks toward 1 for the least preferred listed country.
	rank, ranked := p.countryRank(e.Countries)
	bucket := unrankedBucket
	switch {
	case ranked:
		value = float64(len(p.cfg.CountryPreference) - rank)
		bucket = rank
	case p.cfg.ExcludeUnlistedCountries:
		value = VetoScore
		vetoed = true
	}

	// Bonuses. Skipped once the unlisted-country sentinel is set; the
	// sentinel is sticky and bonuses could never rescue the entry.
	if !vetoed {
		for _, tag := range e.Tags {
			if containsAny(tag, p.reEdition) {
				value += p.cfg.ReEditionWeight
				break
			}
		}

		if hasVersionTag(e.Tags) {
			ctx.versionSeen[bucket]++
			value += p.cfg.VersionWeight * float64(ctx.versionSeen[bucket])
		}

		for _, tag := range e.Tags {
			if containsAny(tag, p.forceInclude) {
				value += p.cfg.ForceIncludeWeight
			}
		}
	}

	// Veto checks override any accumulated bonus.
	for _, tag := range e.Tags {
		if containsAny(tag, p.skipAttrs) {
			value = VetoScore
			vetoed = true
		}
	}
	if containsAny(e.BaseName, p.skipNames) {
		value = VetoScore
		vetoed = true
	}
	if e.BIOS && p.cfg.BiosExcluded {
		value = VetoScore
		vetoed = true
	}

	if vetoed {
		p.logger.Trace().Str("entry", e.RawName).Msg("Entry vetoed")
	}
	return Score{Value: value, Vetoed: vetoed}
}

// countryRank returns the best preference index among the entry's
// countries, or ok=false when none is listed.
func (p *Policy) countryRank(countries []string) (int, bool) {
	best := -1
	for _, c := range countries {
		for i, pref := range p.cfg.CountryPreference {
			if strings.EqualFold(c, pref) {
				if best < 0 || i < best {
					best = i
				}
				break
			}
		}
	}
	return best, best >= 0
}

func hasVersionTag(tags []string) bool {
	for _, t := range tags {
		if catalog.IsVersionTag(t) {
			return true
		}
	}
	return false
}
