package limitstate

import (
	"math"

	"github.com/alexiusacademia/gosteel/internal/aisc"
)

// PlateCompressionInput describes a splice plate in compression
type PlateCompressionInput struct {
	Fy        float64 // ksi
	GrossArea float64 // Ag (in²)
	Thickness float64 // t (in)
	Length    float64 // Unbraced length between bolt lines (in)
	K         float64 // Effective length factor; 0 defaults to 0.65
}

// PlateCompressionResult holds the compression buckling capacity of a
// connecting plate, Section J4.4
type PlateCompressionResult struct {
	Rn    float64 // Nominal capacity (kips)
	Phi   float64
	Omega float64

	R           float64 // Radius of gyration (in)
	Slenderness float64 // kL/r
	Fe          float64 // Elastic buckling stress (ksi), 0 when λ ≤ 25
	Fcr         float64 // Critical stress (ksi)
}

// PlateCompression evaluates plate buckling. For kL/r ≤ 25 the full yield
// stress applies; beyond that the Chapter E column curve governs.
func PlateCompression(in PlateCompressionInput) PlateCompressionResult {
	r := PlateCompressionResult{Phi: aisc.PhiYield, Omega: aisc.OmegaYield}

	if in.Thickness <= 0 || in.GrossArea <= 0 || in.Fy <= 0 {
		return r
	}

	k := in.K
	if k <= 0 {
		k = 0.65
	}

	r.R = in.Thickness / math.Sqrt(12)
	r.Slenderness = k * in.Length / r.R

	if r.Slenderness <= 25 {
		r.Fcr = in.Fy
	} else {
		r.Fe = math.Pi * math.Pi * aisc.E / (r.Slenderness * r.Slenderness)
		if in.Fy/r.Fe <= 2.25 {
			r.Fcr = math.Pow(0.658, in.Fy/r.Fe) * in.Fy
		} else {
			r.Fcr = 0.877 * r.Fe
		}
	}

	r.Rn = r.Fcr * in.GrossArea
	return r
}
