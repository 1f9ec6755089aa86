package limitstate

import (
	"math"

	"github.com/alexiusacademia/gosteel/internal/aisc"
)

// GrossYieldResult holds the tensile yielding capacity of a gross section
// Section J4.1(a)
type GrossYieldResult struct {
	Rn    float64 // Nominal capacity (kips)
	Phi   float64
	Omega float64

	Ag float64 // Gross area (in²)
	Fy float64 // ksi
}

// GrossYield evaluates tensile yielding, Rn = Fy·Ag
func GrossYield(fy, ag float64) GrossYieldResult {
	r := GrossYieldResult{Phi: aisc.PhiYield, Omega: aisc.OmegaYield, Ag: ag, Fy: fy}
	if ag <= 0 || fy <= 0 {
		return r
	}
	r.Rn = fy * ag
	return r
}

// NetFractureInput describes a tension element with a line of bolt holes
type NetFractureInput struct {
	Fu           float64 // ksi
	GrossArea    float64 // Ag (in²)
	BoltsInLine  int     // Holes deducted across the critical section
	HoleDiameter float64 // dh (in)
	Thickness    float64 // t (in)
}

// NetFractureResult holds the tensile rupture capacity of a net section
// Section J4.1(b). The shear-lag factor U is 1.0 for splice plates.
type NetFractureResult struct {
	Rn    float64 // Nominal capacity (kips)
	Phi   float64
	Omega float64

	An        float64 // Net area (in²)
	AreaHoles float64 // Deducted hole area (in²)
	Fu        float64 // ksi
}

// NetFracture evaluates tensile rupture on the net section,
// An = Ag − n·dh·t, Rn = Fu·An. A non-positive net area yields zero
// capacity while preserving Fu for reporting.
func NetFracture(in NetFractureInput) NetFractureResult {
	r := NetFractureResult{Phi: aisc.PhiRupture, Omega: aisc.OmegaRupture, Fu: in.Fu}

	r.AreaHoles = float64(in.BoltsInLine) * in.HoleDiameter * in.Thickness
	r.An = in.GrossArea - r.AreaHoles

	if r.An <= 0 || in.Fu <= 0 {
		r.An = math.Max(r.An, 0)
		return r
	}
	r.Rn = in.Fu * r.An
	return r
}

// FlexuralRuptureInput describes a member flange with bolt holes under
// flexural tension
type FlexuralRuptureInput struct {
	Fy  float64 // ksi
	Fu  float64 // ksi
	Afg float64 // Gross flange area (in²)
	Afn float64 // Net flange area (in²)
	Sx  float64 // Elastic section modulus (in³)
}

// FlexuralRuptureResult holds the flexural rupture check at bolt holes in
// the tension flange, Section F13.1
type FlexuralRuptureResult struct {
	Rn    float64 // Nominal moment capacity (kip-in); meaningful only when Limited
	Phi   float64
	Omega float64

	Yt      float64
	Limited bool // true when the rupture limit state governs at all
}

// FlexuralRupture checks whether bolt holes in the tension flange limit the
// member's flexural capacity. The limit state applies only when
// Fu·Afn < Yt·Fy·Afg; otherwise the capacity is unbounded by this mode and
// the check cannot govern.
func FlexuralRupture(in FlexuralRuptureInput) FlexuralRuptureResult {
	r := FlexuralRuptureResult{Phi: aisc.PhiYield, Omega: aisc.OmegaYield}
	r.Yt = aisc.Yt(in.Fy, in.Fu)

	if in.Afg <= 0 || in.Fu*in.Afn >= r.Yt*in.Fy*in.Afg {
		return r
	}

	r.Limited = true
	r.Rn = in.Fu * in.Afn / in.Afg * in.Sx
	return r
}
