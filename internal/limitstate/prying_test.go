package limitstate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrying_ThickPlateNoPrying(t *testing.T) {
	r := Prying(PryingInput{
		BoltTension:    10,
		BoltDiameter:   0.75,
		HoleDiameter:   0.8125,
		B:              1.5,
		A:              1.25,
		TributaryWidth: 3.0,
		Thickness:      2.0, // well above tc
		Fy:             36,
	})

	assert.Greater(t, r.Tc, 0.0)
	assert.Less(t, r.Tc, 2.0)
	assert.Zero(t, r.PryingForce)
	assert.Equal(t, 10.0, r.Treq)
}

func TestPrying_ThinPlateAmplifies(t *testing.T) {
	in := PryingInput{
		BoltTension:    10,
		BoltDiameter:   0.75,
		HoleDiameter:   0.8125,
		B:              1.5,
		A:              1.25,
		TributaryWidth: 3.0,
		Thickness:      0.25,
		Fy:             36,
	}
	r := Prying(in)

	// b' = 1.5 − 0.375, a' = min(1.25 + 0.375, 1.25·b')
	assert.InDelta(t, 1.125, r.BPrime, 1e-9)
	assert.InDelta(t, math.Min(1.625, 1.25*1.125), r.APrime, 1e-9)
	assert.InDelta(t, math.Sqrt(4*10*1.125/(3.0*36)), r.Tc, 1e-9)

	assert.Less(t, in.Thickness, r.Tc)
	assert.Greater(t, r.PryingForce, 0.0)
	assert.InDelta(t, 10+r.PryingForce, r.Treq, 1e-12)
}

func TestPrying_AlphaClamped(t *testing.T) {
	// Extremely thin plate: α' caps at 1 so Q' = B·δ·ρ
	r := Prying(PryingInput{
		BoltTension:    10,
		BoltDiameter:   0.75,
		HoleDiameter:   0.8125,
		B:              1.5,
		A:              1.25,
		TributaryWidth: 3.0,
		Thickness:      0.05,
		Fy:             36,
	})
	assert.Equal(t, 1.0, r.AlphaPrime)
	assert.InDelta(t, 10*r.Delta*r.Rho, r.PryingForce, 1e-9)
}

func TestPrying_NoTension(t *testing.T) {
	r := Prying(PryingInput{
		BoltDiameter: 0.75, HoleDiameter: 0.8125,
		B: 1.5, A: 1.25, TributaryWidth: 3.0, Thickness: 0.5, Fy: 36,
	})
	assert.Zero(t, r.Tc)
	assert.Zero(t, r.PryingForce)
	assert.Zero(t, r.Treq)
}
