package limitstate

import "github.com/alexiusacademia/gosteel/internal/aisc"

// ShearYieldResult holds the shear yielding capacity of a gross section
// Section J4.2(a)
type ShearYieldResult struct {
	Rn    float64 // Nominal capacity (kips)
	Phi   float64
	Omega float64

	Agv float64 // Gross shear area (in²)
}

// ShearYield evaluates shear yielding, Rn = 0.6·Fy·Agv
func ShearYield(fy, agv float64) ShearYieldResult {
	r := ShearYieldResult{Phi: aisc.PhiShearYield, Omega: aisc.OmegaShearYield, Agv: agv}
	if fy <= 0 || agv <= 0 {
		return r
	}
	r.Rn = 0.6 * fy * agv
	return r
}

// ShearRuptureResult holds the shear rupture capacity of a net section
// Section J4.2(b)
type ShearRuptureResult struct {
	Rn    float64 // Nominal capacity (kips)
	Phi   float64
	Omega float64

	Anv float64 // Net shear area (in²)
}

// ShearRupture evaluates shear rupture, Rn = 0.6·Fu·Anv
func ShearRupture(fu, anv float64) ShearRuptureResult {
	r := ShearRuptureResult{Phi: aisc.PhiRupture, Omega: aisc.OmegaRupture, Anv: anv}
	if fu <= 0 || anv <= 0 {
		return r
	}
	r.Rn = 0.6 * fu * anv
	return r
}
