// Package selection drives the grouper and the scoring policy across a
// whole catalog and resolves one winner per group.
package selection

import (
	"github.com/rs/zerolog"

	"romsieve/pkg/catalog"
	"romsieve/pkg/group"
	"romsieve/pkg/logging"
	"romsieve/pkg/policy"
)

// Engine evaluates groups of candidates against a policy. It holds no
// state across runs; every Run starts fresh.
type Engine struct {
	policy  *policy.Policy
	grouper group.Grouper
	trace   bool
	logger  zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithTrace turns on analysis mode: Run records a per-candidate trace
// for every group.
func WithTrace() Option {
	return func(e *Engine) { e.trace = true }
}

// NewEngine builds an engine from a validated policy and a grouping
// strategy.
func NewEngine(p *policy.Policy, g group.Grouper, opts ...Option) *Engine {
	e := &Engine{
		policy:  p,
		grouper: g,
		logger:  logging.GetLogger("selection.engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run partitions entries into groups and selects the best candidate of
// each. Entries without a region tag group are reported as invalid and
// excluded from scoring but still counted as processed; their tags still
// feed the attribute index.
func (e *Engine) Run(entries []catalog.Entry) *Result {
	res := &Result{attrIndex: make(map[string]struct{})}
	res.ProcessedCount = len(entries)

	valid := make([]catalog.Entry, 0, len(entries))
	for _, entry := range entries {
		res.addAttributes(entry.Tags)
		if !entry.Valid() {
			res.Invalid = append(res.Invalid, entry.RawName)
			continue
		}
		valid = append(valid, entry)
	}
	res.InvalidCount = len(res.Invalid)

	groups := e.grouper.Group(valid)
	e.logger.Debug().
		Int("entries", len(entries)).
		Int("invalid", res.InvalidCount).
		Int("groups", len(groups)).
		Msg("Catalog grouped")

	for _, g := range groups {
		e.selectWinner(g, res)
	}

	res.SelectedCount = len(res.Winners)
	e.logger.Info().
		Int("processed", res.ProcessedCount).
		Int("invalid", res.InvalidCount).
		Int("vetoed", res.VetoedCount).
		Int("selected", res.SelectedCount).
		Msg("Selection completed")
	return res
}

// selectWinner scores one group with a fresh context and applies the
// last-max-wins rule: a candidate displaces the running winner when its
// score is greater than OR EQUAL TO the current best. Later entries of
// equal score therefore win. This mirrors the historical behavior and
// is locked by tests; do not "fix" it to first-wins.
func (e *Engine) selectWinner(g catalog.Group, res *Result) {
	ctx := policy.NewGroupContext()

	winner := -1
	best := 0.0
	traces := make([]CandidateTrace, 0, len(g.Candidates))

	for i, cand := range g.Candidates {
		s := e.policy.Score(cand, ctx)
		if s.Vetoed {
			res.VetoedCount++
		} else if winner < 0 || s.Value >= best {
			winner = i
			best = s.Value
		}
		if e.trace {
			traces = append(traces, CandidateTrace{
				Name:   cand.RawName,
				Score:  s.Value,
				Vetoed: s.Vetoed,
			})
		}
	}

	if winner >= 0 {
		res.Winners = append(res.Winners, g.Candidates[winner])
		if e.trace {
			traces[winner].Winner = true
		}
	}
	if e.trace {
		res.Traces = append(res.Traces, GroupTrace{Key: g.Key, Candidates: traces})
	}
}
