package limitstate

import (
	"math"

	"github.com/alexiusacademia/gosteel/internal/aisc"
)

// PryingInput describes a bolted tee/flange fitting subject to prying
type PryingInput struct {
	BoltTension    float64 // B - bolt force before prying (kips)
	BoltDiameter   float64 // db (in)
	HoleDiameter   float64 // d' (in)
	B              float64 // b - bolt line to face of stem (in)
	A              float64 // a - bolt line to plate edge (in)
	TributaryWidth float64 // p - plate width per bolt (in)
	Thickness      float64 // t - provided plate thickness (in)
	Fy             float64 // ksi
}

// PryingResult holds the prying-action amplification of bolt tension
type PryingResult struct {
	Phi   float64
	Omega float64

	BPrime      float64 // b' (in)
	APrime      float64 // a' (in)
	Rho         float64 // b'/a'
	Delta       float64 // 1 − d'/p
	Tc          float64 // Critical thickness for no prying (in)
	AlphaPrime  float64 // Plate bending participation, clamped to [0, 1]
	PryingForce float64 // Q' (kips)
	Treq        float64 // Total required bolt tension B + Q' (kips)
}

// Prying computes the additional bolt tension caused by flexure of the
// connected plate. When the provided thickness reaches the critical
// thickness tc the prying force vanishes.
func Prying(in PryingInput) PryingResult {
	r := PryingResult{Phi: aisc.PhiRupture, Omega: aisc.OmegaRupture}

	r.BPrime = in.B - in.BoltDiameter/2
	if r.BPrime < 0 {
		r.BPrime = 0
	}
	r.APrime = math.Min(in.A+in.BoltDiameter/2, 1.25*r.BPrime)

	if r.APrime > 0 {
		r.Rho = r.BPrime / r.APrime
	}
	if in.TributaryWidth > 0 {
		r.Delta = 1 - in.HoleDiameter/in.TributaryWidth
		if r.Delta < 0 {
			r.Delta = 0
		}
	}

	if in.TributaryWidth > 0 && in.Fy > 0 {
		r.Tc = math.Sqrt(4 * in.BoltTension * r.BPrime / (in.TributaryWidth * in.Fy))
	}

	r.Treq = in.BoltTension

	if in.Thickness <= 0 || in.Thickness >= r.Tc || r.Tc == 0 {
		return r
	}

	if r.Delta > 0 {
		ratio := r.Tc / in.Thickness
		r.AlphaPrime = (ratio*ratio - 1) / r.Delta
		r.AlphaPrime = math.Min(math.Max(r.AlphaPrime, 0), 1)
	}

	r.PryingForce = in.BoltTension * r.Delta * r.AlphaPrime * r.Rho
	r.Treq = in.BoltTension + r.PryingForce
	return r
}
