package limitstate

import (
	"math"

	"github.com/alexiusacademia/gosteel/internal/aisc"
)

// BoltBearingInput describes bearing of one bolt on a connected ply
type BoltBearingInput struct {
	Diameter     float64 // db (in)
	HoleDiameter float64 // dh (in)
	Thickness    float64 // t of the bearing ply (in)
	Fu           float64 // Tensile strength of the bearing ply (ksi)

	// Clear-distance geometry. For an edge bolt the distance is measured
	// from the hole center to the plate edge; for an interior bolt it is
	// the center-to-center spacing to the next hole.
	EdgeBolt     bool
	EdgeDistance float64 // le (in), edge bolts
	Spacing      float64 // s (in), interior bolts

	// When hole deformation at service load is a design consideration the
	// lower coefficient pair {1.2, 2.4} applies, otherwise {1.5, 3.0}.
	DeformationConsidered bool
}

// BoltBearingResult holds the per-bolt bearing/tear-out capacity
// Section J3.10
type BoltBearingResult struct {
	Rn    float64 // Nominal capacity (kips)
	Phi   float64
	Omega float64

	Lc             float64 // Clear distance (in)
	TearOut        float64 // Tear-out term (kips)
	Bearing        float64 // Bearing term (kips)
	TearOutGoverns bool
	TearOutCoeff   float64
	BearingCoeff   float64
}

// BoltBearing evaluates bearing at one bolt hole,
// Rn = min(c1·Lc·t·Fu, c2·db·t·Fu). Negative clear distance or a
// non-positive thickness yields zero capacity.
func BoltBearing(in BoltBearingInput) BoltBearingResult {
	r := BoltBearingResult{Phi: aisc.PhiRupture, Omega: aisc.OmegaRupture}

	if in.DeformationConsidered {
		r.TearOutCoeff, r.BearingCoeff = 1.2, 2.4
	} else {
		r.TearOutCoeff, r.BearingCoeff = 1.5, 3.0
	}

	if in.EdgeBolt {
		r.Lc = in.EdgeDistance - in.HoleDiameter/2
	} else {
		r.Lc = in.Spacing - in.HoleDiameter
	}

	if r.Lc < 0 || in.Thickness <= 0 {
		return r
	}

	r.TearOut = r.TearOutCoeff * r.Lc * in.Thickness * in.Fu
	r.Bearing = r.BearingCoeff * in.Diameter * in.Thickness * in.Fu

	r.Rn = math.Min(r.TearOut, r.Bearing)
	r.TearOutGoverns = r.TearOut <= r.Bearing
	return r
}
