package limitstate

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteel/internal/aisc"
)

// InstabilityError reports a load set under which the member itself is
// unstable: the second-order amplification denominator 1 − P/Pe is not
// positive. This is not a failing check; the inputs are physically
// inadmissible and the interaction check for the configuration is aborted.
type InstabilityError struct {
	Axial           float64 // P (kips)
	ElasticBuckling float64 // Pe (kips)
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf(
		"member unstable under applied loads: P=%.2f kips ≥ Pe=%.2f kips (amplification denominator ≤ 0)",
		e.Axial, e.ElasticBuckling)
}

// TensionShearInput describes one bolt under combined shear and tension
type TensionShearInput struct {
	Grade           aisc.BoltGrade
	Diameter        float64 // db (in)
	ThreadsIncluded bool
	Method          aisc.DesignMethod

	RequiredShearStress float64 // frv per bolt (ksi)

	// Second-order amplification of the required shear stress. When
	// ElasticBuckling is zero no amplification is applied.
	Axial           float64 // P (kips)
	ElasticBuckling float64 // Pe (kips)
}

// TensionShearResult holds the reduced tensile capacity of a bolt whose
// shear plane also carries load, Section J3.7
type TensionShearResult struct {
	Rn    float64 // Nominal tensile capacity (kips)
	Phi   float64
	Omega float64

	Ab            float64 // in²
	Fnt           float64 // ksi
	Fnv           float64 // ksi
	FntReduced    float64 // F'nt (ksi), clamped to [0, Fnt]
	Amplification float64 // applied to the required shear stress
}

// TensionShear evaluates the available tensile strength of a bolt subject
// to combined tension and shear. The reduction formula depends on the
// design method:
//
//	LRFD: F'nt = 1.3·Fnt − Fnt/(φ·Fnv)·frv
//	ASD:  F'nt = 1.3·Fnt − Ω·Fnt/Fnv·frv
//
// both clamped to [0, Fnt]. A non-positive amplification denominator
// aborts the check with an *InstabilityError.
func TensionShear(in TensionShearInput) (TensionShearResult, error) {
	r := TensionShearResult{
		Phi:           aisc.PhiRupture,
		Omega:         aisc.OmegaRupture,
		Amplification: 1.0,
	}

	r.Ab = aisc.BoltArea(in.Diameter)
	r.Fnt = aisc.Fnt(in.Grade)
	r.Fnv = aisc.Fnv(in.Grade, in.ThreadsIncluded)

	if in.ElasticBuckling > 0 {
		denom := 1 - in.Axial/in.ElasticBuckling
		if denom <= 0 {
			return r, &InstabilityError{Axial: in.Axial, ElasticBuckling: in.ElasticBuckling}
		}
		r.Amplification = 1 / denom
	}

	frv := in.RequiredShearStress * r.Amplification

	var fntReduced float64
	if in.Method == aisc.ASD {
		fntReduced = 1.3*r.Fnt - r.Omega*r.Fnt/r.Fnv*frv
	} else {
		fntReduced = 1.3*r.Fnt - r.Fnt/(r.Phi*r.Fnv)*frv
	}

	r.FntReduced = math.Min(math.Max(fntReduced, 0), r.Fnt)
	r.Rn = r.FntReduced * r.Ab
	return r, nil
}
