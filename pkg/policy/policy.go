// Package policy implements the weighted scoring rules that rank
// candidates inside a group. A Policy is immutable once built; all
// per-group scoring state lives in a GroupContext.
package policy

import (
	"strings"

	"github.com/rs/zerolog"

	"romsieve/pkg/errors"
	"romsieve/pkg/logging"
)

// VetoScore is the sentinel assigned to vetoed entries. A vetoed entry
// can never be selected, regardless of bonuses accumulated earlier.
const VetoScore = -1

// Config holds every independently toggleable scoring rule. The zero
// value is not usable; start from DefaultConfig or a loaded config file.
type Config struct {
	// CountryPreference ranks countries from most to least preferred.
	CountryPreference []string `koanf:"country_preference" toml:"country_preference"`

	// ExcludeUnlistedCountries vetoes entries whose countries are all
	// outside CountryPreference instead of scoring them 0.
	ExcludeUnlistedCountries bool `koanf:"exclude_unlisted_countries" toml:"exclude_unlisted_countries"`

	// ReEditionMarkers are substrings identifying a later-platform
	// reissue ("GameCube"); a match adds ReEditionWeight once.
	ReEditionMarkers []string `koanf:"re_edition_markers" toml:"re_edition_markers"`
	ReEditionWeight  float64  `koanf:"re_edition_weight" toml:"re_edition_weight"`

	// VersionWeight is the per-occurrence increment for versioned
	// entries; the bonus escalates with each versioned entry seen in the
	// same country-rank bucket of the group.
	VersionWeight float64 `koanf:"version_weight" toml:"version_weight"`

	// ForceIncludeAttrs adds ForceIncludeWeight per tag token containing
	// any of these substrings. Case-insensitive, cumulative.
	ForceIncludeAttrs  []string `koanf:"force_include" toml:"force_include"`
	ForceIncludeWeight float64  `koanf:"force_include_weight" toml:"force_include_weight"`

	// SkipAttrs vetoes any entry with a tag token containing one of
	// these substrings. Case-insensitive.
	SkipAttrs []string `koanf:"skip_attrs" toml:"skip_attrs"`

	// SkipNamePatterns vetoes any entry whose base name contains one of
	// these substrings. Case-insensitive.
	SkipNamePatterns []string `koanf:"skip_names" toml:"skip_names"`

	// BiosExcluded vetoes BIOS/firmware entries.
	BiosExcluded bool `koanf:"bios_excluded" toml:"bios_excluded"`

	// ManufacturerFilter restricts projected output to a manufacturer.
	// It never affects scoring; filtering happens after selection.
	ManufacturerFilter string `koanf:"manufacturer" toml:"manufacturer"`
}

// DefaultConfig returns the stock policy: USA > World > Europe, GameCube
// re-editions worth 1, version and force-include bonuses worth 0.1.
func DefaultConfig() Config {
	return Config{
		CountryPreference:  []string{"USA", "World", "Europe"},
		ReEditionMarkers:   []string{"GameCube"},
		ReEditionWeight:    1,
		VersionWeight:      0.1,
		ForceIncludeWeight: 0.1,
	}
}

// Policy is a validated, immutable rule set. Build one with New.
type Policy struct {
	cfg Config

	// Lowercased predicate lists, precomputed once.
	reEdition    []string
	forceInclude []string
	skipAttrs    []string
	skipNames    []string

	logger zerolog.Logger
}

// New validates the configuration and builds a Policy. Validation runs
// here so a bad configuration fails before any entries are processed.
func New(cfg Config) (*Policy, error) {
	if cfg.ExcludeUnlistedCountries && len(cfg.CountryPreference) == 0 {
		return nil, errors.New(errors.ErrConfigValid,
			"exclude_unlisted_countries requires a non-empty country_preference")
	}
	if cfg.ReEditionWeight < 0 || cfg.VersionWeight < 0 || cfg.ForceIncludeWeight < 0 {
		return nil, errors.New(errors.ErrConfigValid, "rule weights must not be negative")
	}
	for _, force := range cfg.ForceIncludeAttrs {
		for _, skip := range cfg.SkipAttrs {
			if strings.EqualFold(force, skip) {
				return nil, errors.Newf(errors.ErrConfigValid,
					"attribute %q is both force-included and skipped", force)
			}
		}
	}

	p := &Policy{
		cfg:          cfg,
		reEdition:    lowerAll(cfg.ReEditionMarkers),
		forceInclude: lowerAll(cfg.ForceIncludeAttrs),
		skipAttrs:    lowerAll(cfg.SkipAttrs),
		skipNames:    lowerAll(cfg.SkipNamePatterns),
		logger:       logging.GetLogger("policy"),
	}
	p.logger.Debug().
		Strs("countryPreference", cfg.CountryPreference).
		Bool("excludeUnlisted", cfg.ExcludeUnlistedCountries).
		Int("skipAttrs", len(cfg.SkipAttrs)).
		Int("forceInclude", len(cfg.ForceIncludeAttrs)).
		Msg("Policy built")
	return p, nil
}

// Config returns a copy of the configuration the policy was built from.
func (p *Policy) Config() Config {
	return p.cfg
}

// ManufacturerFilter returns the post-selection manufacturer restriction,
// or "" when unset.
func (p *Policy) ManufacturerFilter() string {
	return p.cfg.ManufacturerFilter
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func containsAny(token string, needles []string) bool {
	lower := strings.ToLower(token)
	for _, n := range needles {
		if n != "" && strings.Contains(lower, n) {
			return true
		}
	}
	return false
}
