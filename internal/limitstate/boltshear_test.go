package limitstate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexiusacademia/gosteel/internal/aisc"
)

func TestBoltShear_A325SingleShear(t *testing.T) {
	r := BoltShear(BoltShearInput{
		Grade:           aisc.GradeA325,
		Diameter:        0.75,
		ThreadsIncluded: true,
		ShearPlanes:     1,
	})

	assert.InDelta(t, math.Pi*0.75*0.75/4, r.Ab, 1e-12)
	assert.InDelta(t, 0.4418, r.Ab, 1e-4)
	assert.Equal(t, 54.0, r.Fnv)
	assert.InDelta(t, 23.86, r.Rn, 0.01)
	assert.Equal(t, 0.75, r.Phi)
	assert.Equal(t, 2.00, r.Omega)
	assert.False(t, r.WasReduced)
}

func TestBoltShear_LongJointReduction(t *testing.T) {
	short := BoltShear(BoltShearInput{
		Grade:           aisc.GradeA325,
		Diameter:        0.75,
		ThreadsIncluded: true,
		ShearPlanes:     1,
	})
	long := BoltShear(BoltShearInput{
		Grade:           aisc.GradeA325,
		Diameter:        0.75,
		ThreadsIncluded: true,
		ShearPlanes:     1,
		JointLength:     60,
	})

	assert.True(t, long.WasReduced)
	assert.InDelta(t, 43.2, long.Fnv, 1e-9)
	assert.InDelta(t, 19.09, long.Rn, 0.01)
	// Exactly 80% of the unreduced capacity
	assert.InDelta(t, 0.8*short.Rn, long.Rn, 1e-12)

	// At the boundary no reduction applies
	at := BoltShear(BoltShearInput{
		Grade: aisc.GradeA325, Diameter: 0.75, ThreadsIncluded: true,
		ShearPlanes: 1, JointLength: 50,
	})
	assert.False(t, at.WasReduced)
	assert.Equal(t, short.Rn, at.Rn)
}

func TestBoltShear_ThreadConditionAndGrade(t *testing.T) {
	x := BoltShear(BoltShearInput{Grade: aisc.GradeA325, Diameter: 0.75, ShearPlanes: 1})
	assert.Equal(t, 68.0, x.Fnv)

	a490 := BoltShear(BoltShearInput{Grade: aisc.GradeA490, Diameter: 0.75, ThreadsIncluded: true, ShearPlanes: 1})
	assert.Equal(t, 68.0, a490.Fnv)
}

func TestBoltShear_MultiplePlanes(t *testing.T) {
	single := BoltShear(BoltShearInput{Grade: aisc.GradeA325, Diameter: 0.875, ThreadsIncluded: true, ShearPlanes: 1})
	double := BoltShear(BoltShearInput{Grade: aisc.GradeA325, Diameter: 0.875, ThreadsIncluded: true, ShearPlanes: 2})
	assert.InDelta(t, 2*single.Rn, double.Rn, 1e-12)

	// Zero planes is treated as single shear
	zero := BoltShear(BoltShearInput{Grade: aisc.GradeA325, Diameter: 0.875, ThreadsIncluded: true})
	assert.Equal(t, single.Rn, zero.Rn)
}

func TestBoltShear_DiameterMonotonicity(t *testing.T) {
	diameters := []float64{0.625, 0.75, 0.875, 1.0, 1.125, 1.25}
	prev := 0.0
	for _, db := range diameters {
		r := BoltShear(BoltShearInput{Grade: aisc.GradeA325, Diameter: db, ThreadsIncluded: true, ShearPlanes: 1})
		assert.GreaterOrEqual(t, r.Rn, prev, "capacity must not decrease with diameter %.3f", db)
		prev = r.Rn
	}
}

func TestBoltShear_DegenerateDiameter(t *testing.T) {
	r := BoltShear(BoltShearInput{Grade: aisc.GradeA325, Diameter: 0, ThreadsIncluded: true, ShearPlanes: 1})
	assert.Zero(t, r.Rn)
	assert.Zero(t, r.Ab)
}
