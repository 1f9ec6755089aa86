package splice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveGrid(t *testing.T) {
	b := BoltGroupConfig{
		Diameter:    0.75,
		Rows:        2,
		Columns:     3,
		Pitch:       3.0,
		RowSpacing:  4.0,
		EndDistance: 1.5,
	}
	g := ResolveGrid(b, 12.0, 7.0, 0.5, false)

	assert.Equal(t, 0.8125, g.HoleDiameter)
	assert.InDelta(t, 6.0, g.PatternLength, 1e-12)
	assert.InDelta(t, 4.0, g.PatternHeight, 1e-12)
	assert.InDelta(t, 4.5, g.LongEdge, 1e-12) // 12 − 1.5 − 6
	assert.InDelta(t, 1.5, g.TranEdge, 1e-12) // (7 − 4)/2
	assert.InDelta(t, 2.0, g.MinSpacing, 1e-12)
	assert.InDelta(t, 12.0, g.MaxSpacing, 1e-12)
	assert.Equal(t, 1.0, g.MinEdgeDist)
}

func TestResolveGrid_GagedPattern(t *testing.T) {
	b := BoltGroupConfig{
		Diameter:    0.75,
		Rows:        2,
		Columns:     2,
		Pitch:       3.0,
		RowSpacing:  3.0,
		Gage:        3.0,
		EndDistance: 1.5,
	}
	g := ResolveGrid(b, 12.0, 14.0, 0.5, false)

	// gage + a bank of rows on each side
	assert.InDelta(t, 9.0, g.PatternHeight, 1e-12)
	assert.InDelta(t, 2.5, g.TranEdge, 1e-12)
	assert.Equal(t, 4, b.RowsAcross())
	assert.Equal(t, 8, b.Count())
}

func TestResolveGrid_HoleRuleFallback(t *testing.T) {
	b := BoltGroupConfig{Diameter: 0.80, Rows: 1, Columns: 1, EndDistance: 1.5}

	table := ResolveGrid(b, 10, 6, 0.5, false)
	rule := ResolveGrid(b, 10, 6, 0.5, true)

	// Nearest table entry vs db + 1/16 under the rule
	assert.Equal(t, 0.8125, table.HoleDiameter)
	assert.InDelta(t, 0.8625, rule.HoleDiameter, 1e-12)
}

func TestResolveGrid_EdgeClampedAtZero(t *testing.T) {
	b := BoltGroupConfig{
		Diameter:    0.75,
		Rows:        4,
		Columns:     1,
		RowSpacing:  4.0,
		EndDistance: 1.5,
	}
	// Pattern taller than the plate
	g := ResolveGrid(b, 12.0, 7.0, 0.5, false)
	assert.Zero(t, g.TranEdge)
}

func TestSpacingChecks(t *testing.T) {
	b := BoltGroupConfig{
		Diameter:    0.75,
		Rows:        2,
		Columns:     3,
		Pitch:       3.0,
		RowSpacing:  4.0,
		EndDistance: 1.5,
	}
	g := ResolveGrid(b, 12.0, 7.0, 0.5, false)
	checks := SpacingChecks(b, g, false)

	assert.Len(t, checks, 7)
	for _, c := range checks {
		assert.True(t, c.Passed, c.Name)
		assert.False(t, c.Web)
	}
}

func TestSpacingChecks_FailsTightPitch(t *testing.T) {
	b := BoltGroupConfig{
		Diameter:    0.75,
		Rows:        1,
		Columns:     2,
		Pitch:       1.5, // below 8/3·db = 2.0
		EndDistance: 1.5,
	}
	g := ResolveGrid(b, 10.0, 6.0, 0.5, false)
	checks := SpacingChecks(b, g, true)

	var failed []string
	for _, c := range checks {
		assert.True(t, c.Web)
		if !c.Passed {
			failed = append(failed, c.Name)
		}
	}
	assert.Equal(t, []string{"Web bolt pitch ≥ minimum spacing"}, failed)
}

func TestSpacingChecks_SingleBoltSkipsSpacingRules(t *testing.T) {
	b := BoltGroupConfig{Diameter: 0.75, Rows: 1, Columns: 1, EndDistance: 1.5}
	g := ResolveGrid(b, 10.0, 6.0, 0.5, false)
	checks := SpacingChecks(b, g, false)

	// Only the three edge-distance rules remain
	assert.Len(t, checks, 3)
}
