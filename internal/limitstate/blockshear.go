package limitstate

import (
	"math"

	"github.com/alexiusacademia/gosteel/internal/aisc"
)

// BlockShearPath describes one shear/tension tear-out path through the
// bolt pattern
type BlockShearPath struct {
	Name string  // "end tear-out" or "interior tear-out"
	Agv  float64 // Gross area in shear (in²)
	Anv  float64 // Net area in shear (in²)
	Ant  float64 // Net area in tension (in²)
}

// BlockShearInput describes a bolted element subject to block shear
type BlockShearInput struct {
	Fy          float64 // ksi
	Fu          float64 // ksi
	TensionRows int     // Bolt rows crossed by the tension plane
	Paths       []BlockShearPath
}

// BlockShearResult holds the governing block shear capacity
// Section J4.3
type BlockShearResult struct {
	Rn    float64 // Nominal capacity (kips)
	Phi   float64
	Omega float64

	Ubs           float64
	PathResults   []float64 // Rn per path, same order as input
	GoverningPath string
}

// BlockShear evaluates every tear-out path,
// Rn_path = min(0.6·Fy·Agv + Ubs·Fu·Ant, 0.6·Fu·Anv + Ubs·Fu·Ant),
// and returns the minimum over all paths. Ubs is 0.5 when more than one
// tension row exists, else 1.0.
func BlockShear(in BlockShearInput) BlockShearResult {
	r := BlockShearResult{Phi: aisc.PhiRupture, Omega: aisc.OmegaRupture}

	r.Ubs = 1.0
	if in.TensionRows > 1 {
		r.Ubs = 0.5
	}

	if len(in.Paths) == 0 {
		return r
	}

	r.PathResults = make([]float64, len(in.Paths))
	for i, p := range in.Paths {
		agv := math.Max(p.Agv, 0)
		anv := math.Max(p.Anv, 0)
		ant := math.Max(p.Ant, 0)

		tension := r.Ubs * in.Fu * ant
		rn := math.Min(0.6*in.Fy*agv+tension, 0.6*in.Fu*anv+tension)
		r.PathResults[i] = rn

		if i == 0 || rn < r.Rn {
			r.Rn = rn
			r.GoverningPath = p.Name
		}
	}

	if r.Rn < 0 {
		r.Rn = 0
	}
	return r
}
