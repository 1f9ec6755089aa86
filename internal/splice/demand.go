package splice

import "math"

// Demands holds the resolved loads and their apportioning to the splice
// elements. All forces in kips, moments in kip-ft unless noted.
type Demands struct {
	Moment float64 // Resolved design moment (kip-ft)
	Shear  float64 // Resolved design shear (kips)
	Axial  float64 // Resolved axial force (kips)

	FlangeMomentForce float64 // M·12/(d−tf) (kips)
	AxialPerFlange    float64 // P/2 (kips)
	FlangeTension     float64 // Moment force + axial share (kips)
	FlangeCompression float64 // Moment force − axial share (kips)

	OuterPlateShare float64 // Fraction of flange force on the outer plate
	InnerPlateShare float64 // Fraction on the inner plates (0 when absent)

	WebShear      float64 // Vertical force on the web bolt group (kips)
	WebHorizontal float64 // Hw from moment not taken by the flange group (kips)
}

// resolveLoads returns the design actions, substituting the member's own
// plastic capacity when develop-capacity mode is on:
// M = Fy·Zx/12 and V = 0.6·Fy·d·tw.
func resolveLoads(c *Connection) (m, v, p float64) {
	m, v, p = c.Loads.Moment, c.Loads.Shear, c.Loads.Axial
	if c.DevelopCapacity {
		m = c.Member.Fy * c.Member.Zx / 12
		v = 0.6 * c.Member.Fy * c.Member.Depth * c.Member.WebThickness
	}
	return m, v, p
}

// Distribute apportions the applied actions into per-element demands.
// flangeBoltCapacity is the design capacity (already φ- or Ω-reduced) of
// one flange bolt group, used to find the share of moment the web group
// must carry.
func Distribute(c *Connection, flangeBoltCapacity float64) Demands {
	d := Demands{}
	d.Moment, d.Shear, d.Axial = resolveLoads(c)

	arm := c.Member.Depth - c.Member.FlangeThickness
	if arm > 0 {
		d.FlangeMomentForce = d.Moment * 12 / arm
	}
	d.AxialPerFlange = d.Axial / 2

	d.FlangeTension = d.FlangeMomentForce + d.AxialPerFlange
	d.FlangeCompression = d.FlangeMomentForce - d.AxialPerFlange

	d.OuterPlateShare = 1.0
	if c.FlangeInnerPlate != nil {
		d.OuterPlateShare = 0.5
		d.InnerPlateShare = 0.5
	}

	d.WebShear = d.Shear

	// Moment not developed by the flange bolt group transfers through the
	// web group as a horizontal couple over 0.75 of the web plate height.
	excess := math.Abs(d.Moment*12) - flangeBoltCapacity*arm
	if excess > 0 && c.WebPlate.Width > 0 {
		d.WebHorizontal = excess / (0.75 * c.WebPlate.Width)
	}

	return d
}
