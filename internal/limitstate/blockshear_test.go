package limitstate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockShear_MinOfPaths(t *testing.T) {
	in := BlockShearInput{
		Fy:          36,
		Fu:          58,
		TensionRows: 1,
		Paths: []BlockShearPath{
			{Name: "end tear-out", Agv: 7.5, Anv: 5.5, Ant: 1.6},
			{Name: "interior tear-out", Agv: 7.5, Anv: 5.5, Ant: 1.1},
		},
	}
	r := BlockShear(in)

	assert.Equal(t, 1.0, r.Ubs)
	assert.Len(t, r.PathResults, 2)
	assert.InDelta(t, math.Min(r.PathResults[0], r.PathResults[1]), r.Rn, 1e-12)
	assert.Equal(t, "interior tear-out", r.GoverningPath)

	// Each path is the lesser of the yield and rupture expressions
	want0 := math.Min(0.6*36*7.5+1.0*58*1.6, 0.6*58*5.5+1.0*58*1.6)
	assert.InDelta(t, want0, r.PathResults[0], 1e-9)
}

func TestBlockShear_UbsMultipleTensionRows(t *testing.T) {
	in := BlockShearInput{
		Fy:          36,
		Fu:          58,
		TensionRows: 2,
		Paths:       []BlockShearPath{{Name: "only", Agv: 5, Anv: 4, Ant: 2}},
	}
	r := BlockShear(in)
	assert.Equal(t, 0.5, r.Ubs)
	want := math.Min(0.6*36*5+0.5*58*2, 0.6*58*4+0.5*58*2)
	assert.InDelta(t, want, r.Rn, 1e-9)
}

func TestBlockShear_NoPaths(t *testing.T) {
	r := BlockShear(BlockShearInput{Fy: 36, Fu: 58, TensionRows: 1})
	assert.Zero(t, r.Rn)
	assert.Empty(t, r.GoverningPath)
}

func TestBlockShear_NegativeAreasClamped(t *testing.T) {
	r := BlockShear(BlockShearInput{
		Fy:          36,
		Fu:          58,
		TensionRows: 1,
		Paths:       []BlockShearPath{{Name: "degenerate", Agv: -1, Anv: -2, Ant: -0.5}},
	})
	assert.Zero(t, r.Rn)
}
