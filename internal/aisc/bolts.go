package aisc

import "math"

// AISC 360-16 Table J3.2 - Nominal Stress of Fasteners (ksi)

// BoltGrade identifies an ASTM high-strength bolt grade
type BoltGrade string

const (
	GradeA325 BoltGrade = "A325"
	GradeA490 BoltGrade = "A490"
)

// boltStresses holds nominal shear and tensile stresses for one grade
type boltStresses struct {
	FnvThreadsIncluded float64 // N - threads in the shear plane
	FnvThreadsExcluded float64 // X - threads excluded from the shear plane
	Fnt                float64 // Nominal tensile stress
}

var boltStressTable = map[BoltGrade]boltStresses{
	GradeA325: {FnvThreadsIncluded: 54.0, FnvThreadsExcluded: 68.0, Fnt: 90.0},
	GradeA490: {FnvThreadsIncluded: 68.0, FnvThreadsExcluded: 84.0, Fnt: 113.0},
}

// LongJointLength is the fastener-pattern length (in) beyond which the
// nominal shear stress is reduced per Table J3.2 footnote
const LongJointLength = 50.0

// LongJointFactor applied to Fnv when the pattern exceeds LongJointLength
const LongJointFactor = 0.80

// Fnv returns the nominal shear stress (ksi) for a bolt grade and thread
// condition. Unknown grades fall back to A325.
func Fnv(grade BoltGrade, threadsIncluded bool) float64 {
	s, ok := boltStressTable[grade]
	if !ok {
		s = boltStressTable[GradeA325]
	}
	if threadsIncluded {
		return s.FnvThreadsIncluded
	}
	return s.FnvThreadsExcluded
}

// Fnt returns the nominal tensile stress (ksi) for a bolt grade.
// Unknown grades fall back to A325.
func Fnt(grade BoltGrade) float64 {
	s, ok := boltStressTable[grade]
	if !ok {
		s = boltStressTable[GradeA325]
	}
	return s.Fnt
}

// BoltArea returns the nominal unthreaded body area Ab (in²)
func BoltArea(db float64) float64 {
	if db <= 0 {
		return 0
	}
	return math.Pi * db * db / 4
}

// StandardDiameters is the ascending list of bolt diameters (in) searched
// by the optimizer when diameter search is enabled
var StandardDiameters = []float64{0.625, 0.750, 0.875, 1.000, 1.125, 1.250}
