package splice

import (
	"math"

	"github.com/alexiusacademia/gosteel/internal/aisc"
)

// GridGeometry holds the derived dimensions of one bolt grid on its plate
type GridGeometry struct {
	HoleDiameter float64 // dh (in)

	PatternLength float64 // (Nc−1)·pitch (in)
	PatternHeight float64 // Transverse extent of the pattern (in)

	LongEdge float64 // Edge distance beyond the last column (in)
	TranEdge float64 // Edge distance beside the outer rows (in)

	MinSpacing  float64 // 8/3·db (in)
	MaxSpacing  float64 // min(24·t_thinner, 12) (in)
	MinEdgeDist float64 // Table J3.4, or 1.25·db beyond it (in)
}

// ResolveGrid derives the grid geometry of a bolt group on a plate of the
// given length (along the member axis) and height (transverse). tThinner
// is the thinner of the connected parts, which bounds the maximum spacing.
func ResolveGrid(b BoltGroupConfig, plateLength, plateHeight, tThinner float64, disableHoleTable bool) GridGeometry {
	g := GridGeometry{}

	if disableHoleTable {
		g.HoleDiameter = aisc.RuleHoleDiameter(b.Diameter)
	} else {
		g.HoleDiameter = aisc.StandardHoleDiameter(b.Diameter)
	}

	g.PatternLength = float64(b.Columns-1) * b.Pitch

	if b.Gage > 0 {
		g.PatternHeight = b.Gage + 2*float64(b.Rows-1)*b.RowSpacing
	} else {
		g.PatternHeight = float64(b.Rows-1) * b.RowSpacing
	}

	g.LongEdge = math.Max(plateLength-b.EndDistance-g.PatternLength, 0)
	g.TranEdge = math.Max((plateHeight-g.PatternHeight)/2, 0)

	g.MinSpacing = aisc.MinSpacing(b.Diameter)
	g.MaxSpacing = aisc.MaxSpacing(tThinner)
	g.MinEdgeDist = aisc.MinEdgeDistance(b.Diameter)

	return g
}

// SpacingChecks builds the geometric-rule verdicts for one resolved grid
func SpacingChecks(b BoltGroupConfig, g GridGeometry, web bool) []GeometryCheckRecord {
	prefix := "Flange"
	if web {
		prefix = "Web"
	}

	var out []GeometryCheckRecord
	add := func(name string, actual, limit float64, maximum bool) {
		passed := actual >= limit
		if maximum {
			passed = actual <= limit
		}
		out = append(out, GeometryCheckRecord{
			Name:    prefix + " " + name,
			Web:     web,
			Actual:  actual,
			Limit:   limit,
			Maximum: maximum,
			Passed:  passed,
		})
	}

	if b.Columns > 1 {
		add("bolt pitch ≥ minimum spacing", b.Pitch, g.MinSpacing, false)
		add("bolt pitch ≤ maximum spacing", b.Pitch, g.MaxSpacing, true)
	}
	if b.Rows > 1 {
		add("row spacing ≥ minimum spacing", b.RowSpacing, g.MinSpacing, false)
		add("row spacing ≤ maximum spacing", b.RowSpacing, g.MaxSpacing, true)
	}
	add("end distance ≥ minimum edge distance", b.EndDistance, g.MinEdgeDist, false)
	add("far edge distance ≥ minimum edge distance", g.LongEdge, g.MinEdgeDist, false)
	add("side edge distance ≥ minimum edge distance", g.TranEdge, g.MinEdgeDist, false)

	return out
}
