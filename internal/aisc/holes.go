package aisc

import "math"

// Hole sizes and bolt placement limits
// AISC 360-16 Tables J3.3 and J3.4, Sections J3.3 and J3.5

// diameterEntry pairs a bolt diameter with a tabulated value. Tables are
// kept as sorted slices rather than float-keyed maps so lookup can do
// exact-or-nearest resolution without floating-point key fragility.
type diameterEntry struct {
	Diameter float64 // in
	Value    float64 // in
}

// Table J3.3 - Nominal standard hole dimensions
var standardHoleTable = []diameterEntry{
	{0.500, 0.5625},
	{0.625, 0.6875},
	{0.750, 0.8125},
	{0.875, 0.9375},
	{1.000, 1.1250},
	{1.125, 1.2500},
	{1.250, 1.3750},
	{1.375, 1.5000},
	{1.500, 1.6250},
}

// Table J3.4 - Minimum edge distance from center of standard hole
var minEdgeDistanceTable = []diameterEntry{
	{0.500, 0.750},
	{0.625, 0.875},
	{0.750, 1.000},
	{0.875, 1.125},
	{1.000, 1.250},
	{1.125, 1.500},
	{1.250, 1.625},
}

// lookupDiameter resolves a sorted (diameter, value) table: an exact match
// wins, otherwise the entry with the nearest diameter. Returns false for an
// empty table.
func lookupDiameter(table []diameterEntry, db float64) (float64, bool) {
	if len(table) == 0 {
		return 0, false
	}
	best := table[0]
	bestDist := math.Abs(db - best.Diameter)
	for _, e := range table[1:] {
		d := math.Abs(db - e.Diameter)
		if d < bestDist {
			best, bestDist = e, d
		}
	}
	return best.Value, true
}

// StandardHoleDiameter returns the nominal standard hole diameter (in) for
// a bolt diameter. Diameters beyond the table use the clearance rule:
// db + 1/16 below 1 in, db + 1/8 at 1 in and above.
func StandardHoleDiameter(db float64) float64 {
	if db <= 0 {
		return 0
	}
	if db <= standardHoleTable[len(standardHoleTable)-1].Diameter {
		if v, ok := lookupDiameter(standardHoleTable, db); ok {
			return v
		}
	}
	return RuleHoleDiameter(db)
}

// RuleHoleDiameter computes the hole diameter from the clearance rule
// alone, used when table lookup is disabled
func RuleHoleDiameter(db float64) float64 {
	if db <= 0 {
		return 0
	}
	if db < 1.0 {
		return db + 1.0/16.0
	}
	return db + 1.0/8.0
}

// MinEdgeDistance returns the minimum edge distance (in) from the bolt
// center to the plate edge. Defaults to 1.25·db beyond the table.
func MinEdgeDistance(db float64) float64 {
	if db <= 0 {
		return 0
	}
	if db <= minEdgeDistanceTable[len(minEdgeDistanceTable)-1].Diameter {
		if v, ok := lookupDiameter(minEdgeDistanceTable, db); ok {
			return v
		}
	}
	return 1.25 * db
}

// MinSpacing returns the minimum center-to-center bolt spacing (in)
// Section J3.3: 8/3 times the nominal diameter
func MinSpacing(db float64) float64 {
	return 8.0 / 3.0 * db
}

// MaxSpacing returns the maximum center-to-center bolt spacing (in) for
// the thinner connected part, Section J3.5: 24 times the thickness of the
// thinner part, not to exceed 12 in
func MaxSpacing(tThinner float64) float64 {
	return math.Min(24*tThinner, 12.0)
}
