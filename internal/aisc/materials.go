package aisc

// Common structural steel grades (ksi)

// SteelGrade holds the specified strengths of a structural steel
type SteelGrade struct {
	Name string
	Fy   float64 // Specified minimum yield strength (ksi)
	Fu   float64 // Specified minimum tensile strength (ksi)
}

// SteelGrades lists the materials the tool knows by name
var SteelGrades = []SteelGrade{
	{Name: "A36", Fy: 36, Fu: 58},
	{Name: "A572-50", Fy: 50, Fu: 65},
	{Name: "A992", Fy: 50, Fu: 65},
}

// SteelGradeByName looks up a grade by its ASTM designation
func SteelGradeByName(name string) (SteelGrade, bool) {
	for _, g := range SteelGrades {
		if g.Name == name {
			return g, true
		}
	}
	return SteelGrade{}, false
}

// Yt returns the tensile rupture coefficient for flexural rupture checks
// at bolt holes, Section F13.1: 1.0 when Fy/Fu ≤ 0.8, else 1.1
func Yt(fy, fu float64) float64 {
	if fu <= 0 {
		return 1.0
	}
	if fy/fu <= 0.8 {
		return 1.0
	}
	return 1.1
}
