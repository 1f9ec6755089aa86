package aisc

// AISC 360-16 Design Factors

const (
	// Resistance factors φ (LRFD) and safety factors Ω (ASD)
	// Chapter J - Design of Connections

	// Bolt shear, bolt tension, bearing, rupture, block shear (Section J3, J4.1b, J4.3)
	PhiRupture   = 0.75
	OmegaRupture = 2.00

	// Gross-section yielding, compression (Section J4.1a, J4.4)
	PhiYield   = 0.90
	OmegaYield = 1.67

	// Shear yielding on gross section (Section J4.2a)
	PhiShearYield   = 1.00
	OmegaShearYield = 1.50

	// Modulus of elasticity for structural steel (ksi)
	E = 29000.0
)

// DesignMethod selects between the two design philosophies
type DesignMethod int

const (
	// LRFD - Load and Resistance Factor Design (capacity = φ·Rn)
	LRFD DesignMethod = iota
	// ASD - Allowable Strength Design (capacity = Rn/Ω)
	ASD
)

// String returns the method abbreviation for reports
func (m DesignMethod) String() string {
	if m == ASD {
		return "ASD"
	}
	return "LRFD"
}

// Capacity reduces a nominal capacity Rn to the design capacity
// under the given method
func (m DesignMethod) Capacity(rn, phi, omega float64) float64 {
	if m == ASD {
		if omega <= 0 {
			return 0
		}
		return rn / omega
	}
	return rn * phi
}
