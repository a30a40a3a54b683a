// Test Type: Unit Test
// Description: Tests for the selection package - winner resolution, counts, trace

package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"romsieve/pkg/group"
	"romsieve/pkg/policy"
	"romsieve/pkg/selection"
	"romsieve/pkg/testutil"
)

func defaultEngine(t *testing.T, opts ...selection.Option) *selection.Engine {
	t.Helper()
	p, err := policy.New(policy.DefaultConfig())
	require.NoError(t, err)
	return selection.NewEngine(p, group.SequentialPrefix(), opts...)
}

func engineWith(t *testing.T, cfg policy.Config, opts ...selection.Option) *selection.Engine {
	t.Helper()
	p, err := policy.New(cfg)
	require.NoError(t, err)
	return selection.NewEngine(p, group.SequentialPrefix(), opts...)
}

func TestRun_CountryPreferenceWins(t *testing.T) {
	res := defaultEngine(t).Run(testutil.Entries(
		"Game (USA)",
		"Game (Europe)",
	))

	require.Len(t, res.Winners, 1)
	assert.Equal(t, "Game (USA)", res.Winners[0].RawName)
	assert.Equal(t, 2, res.ProcessedCount)
	assert.Equal(t, 1, res.SelectedCount)
}

func TestRun_VersionBonusBreaksTie(t *testing.T) {
	res := defaultEngine(t).Run(testutil.Entries(
		"Game (USA)",
		"Game (USA) (Rev 1)",
	))

	require.Len(t, res.Winners, 1)
	assert.Equal(t, "Game (USA) (Rev 1)", res.Winners[0].RawName)
}

func TestRun_LastMaxWins(t *testing.T) {
	// Two candidates with equal score: the later one is selected. This
	// is deliberate behavior, not first-wins.
	res := defaultEngine(t).Run(testutil.Entries(
		"Game (USA)",
		"Game (USA) [!]",
	))
	require.Len(t, res.Winners, 1)
	assert.Equal(t, "Game (USA) [!]", res.Winners[0].RawName)

	// Reversed order: again the later entry wins.
	res = defaultEngine(t).Run(testutil.Entries(
		"Game (USA) [!]",
		"Game (USA)",
	))
	require.Len(t, res.Winners, 1)
	assert.Equal(t, "Game (USA)", res.Winners[0].RawName)
}

func TestRun_AllCandidatesVetoed(t *testing.T) {
	cfg := policy.DefaultConfig()
	cfg.SkipAttrs = []string{"beta"}

	res := engineWith(t, cfg).Run(testutil.Entries(
		"Game (USA) (Beta)",
	))

	assert.Empty(t, res.Winners)
	assert.Equal(t, 1, res.VetoedCount)
	assert.Equal(t, 0, res.SelectedCount)
	assert.Equal(t, 1, res.ProcessedCount)
}

func TestRun_VetoedEntriesStillFeedAttributeIndex(t *testing.T) {
	cfg := policy.DefaultConfig()
	cfg.SkipAttrs = []string{"beta"}

	res := engineWith(t, cfg).Run(testutil.Entries(
		"Game (USA) (Beta)",
		"Game (USA)",
	))

	assert.True(t, res.HasAttribute("Beta"))
	assert.True(t, res.HasAttribute("USA"))
	assert.Equal(t, []string{"Beta", "USA"}, res.Attributes())
}

func TestRun_InvalidEntriesReportedNotScored(t *testing.T) {
	res := defaultEngine(t).Run(testutil.Entries(
		"Game",
		"Game (USA)",
	))

	assert.Equal(t, 2, res.ProcessedCount)
	assert.Equal(t, 1, res.InvalidCount)
	assert.Equal(t, []string{"Game"}, res.Invalid)
	require.Len(t, res.Winners, 1)
	assert.Equal(t, "Game (USA)", res.Winners[0].RawName)
}

func TestRun_WinnersKeepGroupDiscoveryOrder(t *testing.T) {
	res := defaultEngine(t).Run(testutil.Entries(
		"Alpha (USA)",
		"Beta Quest (Europe)",
		"Gamma (World)",
	))

	require.Len(t, res.Winners, 3)
	assert.Equal(t, "Alpha (USA)", res.Winners[0].RawName)
	assert.Equal(t, "Beta Quest (Europe)", res.Winners[1].RawName)
	assert.Equal(t, "Gamma (World)", res.Winners[2].RawName)
}

func TestRun_Trace(t *testing.T) {
	cfg := policy.DefaultConfig()
	cfg.SkipAttrs = []string{"proto"}

	res := engineWith(t, cfg, selection.WithTrace()).Run(testutil.Entries(
		"Game (USA)",
		"Game (Europe)",
		"Game (USA) (Proto)",
	))

	require.Len(t, res.Traces, 1)
	gt := res.Traces[0]
	assert.Equal(t, "Game", gt.Key)
	require.Len(t, gt.Candidates, 3)

	assert.True(t, gt.Candidates[0].Winner)
	assert.InDelta(t, 3, gt.Candidates[0].Score, 1e-9)

	assert.False(t, gt.Candidates[1].Winner)
	assert.InDelta(t, 1, gt.Candidates[1].Score, 1e-9)

	assert.True(t, gt.Candidates[2].Vetoed)
	assert.InDelta(t, -1, gt.Candidates[2].Score, 1e-9)
	assert.False(t, gt.Candidates[2].Winner)
}

func TestRun_NoTraceWithoutAnalysisMode(t *testing.T) {
	res := defaultEngine(t).Run(testutil.Entries("Game (USA)"))
	assert.Empty(t, res.Traces)
}
