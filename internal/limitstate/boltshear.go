// Package limitstate implements the AISC 360-16 failure-mode evaluators
// for bolted splice connections. Every evaluator is a pure function of its
// inputs: degenerate geometry yields a zero nominal capacity, never an
// error, so a zero-capacity result simply fails its design-ratio check.
package limitstate

import "github.com/alexiusacademia/gosteel/internal/aisc"

// BoltShearInput describes one bolt loaded in shear
type BoltShearInput struct {
	Grade           aisc.BoltGrade
	Diameter        float64 // db (in)
	ThreadsIncluded bool    // threads in the shear plane (N condition)
	ShearPlanes     int     // number of shear planes through the bolt
	JointLength     float64 // fastener-pattern length (in) for the long-joint rule
}

// BoltShearResult holds the nominal shear capacity of a single bolt
// Section J3.6
type BoltShearResult struct {
	Rn    float64 // Nominal capacity (kips)
	Phi   float64
	Omega float64

	Ab         float64 // Nominal bolt area (in²)
	Fnv        float64 // Nominal shear stress after any reduction (ksi)
	WasReduced bool    // Long-joint reduction applied
}

// BoltShear evaluates the shear capacity of a single bolt,
// Rn = Fnv·Ab·(shear planes), with the 20% long-joint reduction when the
// fastener-pattern length exceeds 50 in.
func BoltShear(in BoltShearInput) BoltShearResult {
	r := BoltShearResult{Phi: aisc.PhiRupture, Omega: aisc.OmegaRupture}

	r.Ab = aisc.BoltArea(in.Diameter)
	r.Fnv = aisc.Fnv(in.Grade, in.ThreadsIncluded)

	if in.JointLength > aisc.LongJointLength {
		r.Fnv *= aisc.LongJointFactor
		r.WasReduced = true
	}

	planes := in.ShearPlanes
	if planes < 1 {
		planes = 1
	}

	r.Rn = r.Fnv * r.Ab * float64(planes)
	return r
}
