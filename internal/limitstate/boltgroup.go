package limitstate

import "math"

// BoltGroupInput describes an eccentrically loaded bolt group on a
// rectangular grid centered on its own centroid. Rows are stacked
// vertically, columns horizontally.
type BoltGroupInput struct {
	Rows          int
	Columns       int
	RowSpacing    float64 // Vertical center-to-center spacing (in)
	ColumnSpacing float64 // Horizontal center-to-center spacing (in)

	Vertical     float64 // V - vertical load on the group (kips)
	Horizontal   float64 // H - horizontal load on the group (kips)
	Eccentricity float64 // e - horizontal offset of V from the centroid (in)
}

// BoltGroupResult holds the elastic-method force on the critical bolt
type BoltGroupResult struct {
	BoltCount  int
	Ip         float64 // Polar moment of the pattern, Σ(dx²+dy²) (in²)
	Moment     float64 // V·e (kip-in)
	CriticalDx float64 // Critical (corner) bolt offsets from the centroid (in)
	CriticalDy float64
	DirectX    float64 // Direct shear components per bolt (kips)
	DirectY    float64
	MomentX    float64 // Moment-induced components at the critical bolt (kips)
	MomentY    float64
	Resultant  float64 // Vector sum on the critical bolt (kips)
	PureDirect bool    // Ip = 0, degenerated to direct shear only
}

// BoltGroup resolves an eccentric load into the resultant force on the
// critical corner bolt by the elastic method. A pattern with zero polar
// moment (a single bolt) degenerates to pure direct shear.
func BoltGroup(in BoltGroupInput) BoltGroupResult {
	r := BoltGroupResult{}

	rows := in.Rows
	cols := in.Columns
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	r.BoltCount = rows * cols
	n := float64(r.BoltCount)

	// Corner bolt offsets and polar moment about the centroid
	r.CriticalDx = float64(cols-1) / 2 * in.ColumnSpacing
	r.CriticalDy = float64(rows-1) / 2 * in.RowSpacing

	for i := 0; i < rows; i++ {
		dy := (float64(i) - float64(rows-1)/2) * in.RowSpacing
		for j := 0; j < cols; j++ {
			dx := (float64(j) - float64(cols-1)/2) * in.ColumnSpacing
			r.Ip += dx*dx + dy*dy
		}
	}

	r.DirectX = in.Horizontal / n
	r.DirectY = in.Vertical / n
	r.Moment = in.Vertical * in.Eccentricity

	if r.Ip == 0 {
		r.PureDirect = true
		r.Resultant = math.Hypot(r.DirectX, r.DirectY)
		return r
	}

	// Moment-induced shear acts perpendicular to the radius at the
	// critical bolt
	r.MomentX = r.Moment * r.CriticalDy / r.Ip
	r.MomentY = r.Moment * r.CriticalDx / r.Ip

	r.Resultant = math.Hypot(r.DirectX+r.MomentX, r.DirectY+r.MomentY)
	return r
}
