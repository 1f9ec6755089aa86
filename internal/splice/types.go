// Package splice evaluates and sizes bolted flange/web splice connections.
// It composes the pure limit-state evaluators into the complete named set
// of design checks for one connection, reduces each to a demand/capacity
// ratio under LRFD or ASD, and can search bolt patterns for the smallest
// configuration that satisfies every check.
package splice

import (
	"fmt"

	"github.com/alexiusacademia/gosteel/internal/aisc"
)

// BoltGroupConfig defines one rectangular bolt grid
// All distances in inches.
type BoltGroupConfig struct {
	Diameter        float64        `json:"diameter"`         // db
	Grade           aisc.BoltGrade `json:"grade"`            // e.g. "A325"
	ThreadsIncluded bool           `json:"threads_included"` // N condition
	Rows            int            `json:"rows"`             // Nr - transverse
	Columns         int            `json:"columns"`          // Nc - longitudinal
	Pitch           float64        `json:"pitch"`            // Column spacing along the member axis
	RowSpacing      float64        `json:"row_spacing"`      // Row spacing across the member
	Gage            float64        `json:"gage,omitempty"`   // Central gage splitting the rows in two banks (0 = none)
	EndDistance     float64        `json:"end_distance"`     // First column to the plate end
}

// RowsAcross returns the number of bolt rows crossed by a transverse
// section. A gaged pattern carries a bank of rows on each side of the
// gage, doubling the count.
func (b BoltGroupConfig) RowsAcross() int {
	rows := b.Rows
	if rows < 1 {
		rows = 1
	}
	if b.Gage > 0 {
		rows *= 2
	}
	return rows
}

// Count returns the number of bolts in the grid
func (b BoltGroupConfig) Count() int {
	cols := b.Columns
	if cols < 1 {
		cols = 1
	}
	return b.RowsAcross() * cols
}

// PlateConfig defines one splice plate
type PlateConfig struct {
	Thickness float64 `json:"thickness"` // t (in)
	Width     float64 `json:"width"`     // Transverse dimension (in)
	Length    float64 `json:"length"`    // Along the member axis, one side of the splice (in)

	// Material: either an ASTM grade name (resolved on load) or explicit
	// strengths. Explicit Fy/Fu win over the grade name.
	Grade string  `json:"grade,omitempty"` // e.g. "A36"
	Fy    float64 `json:"fy,omitempty"`    // ksi
	Fu    float64 `json:"fu,omitempty"`    // ksi
}

// MemberConfig defines the spliced member and its material
type MemberConfig struct {
	Depth           float64 `json:"depth"`            // d (in)
	FlangeWidth     float64 `json:"flange_width"`     // bf (in)
	FlangeThickness float64 `json:"flange_thickness"` // tf (in)
	WebThickness    float64 `json:"web_thickness"`    // tw (in)
	Grade           string  `json:"grade,omitempty"`  // ASTM grade name, e.g. "A992"
	Fy              float64 `json:"fy,omitempty"`     // ksi
	Fu              float64 `json:"fu,omitempty"`     // ksi
	Sx              float64 `json:"sx"`               // Elastic section modulus (in³)
	Zx              float64 `json:"zx"`               // Plastic section modulus (in³)

	// Elastic buckling load Pe (kips) for second-order amplification of
	// the bolt interaction check. Zero disables amplification.
	ElasticBuckling float64 `json:"pe,omitempty"`
}

// AppliedLoads are the externally supplied actions at the splice
type AppliedLoads struct {
	Moment float64 `json:"moment"` // kip-ft
	Shear  float64 `json:"shear"`  // kips
	Axial  float64 `json:"axial"`  // kips
}

// Connection is the full validated input record for one splice evaluation
type Connection struct {
	Name   string `json:"name,omitempty"`
	Method string `json:"method"` // "LRFD" or "ASD"

	Member MemberConfig `json:"member"`

	FlangeOuterPlate PlateConfig  `json:"flange_outer_plate"`
	FlangeInnerPlate *PlateConfig `json:"flange_inner_plate,omitempty"`
	WebPlate         PlateConfig  `json:"web_plate"`
	WebPlatesPerSide int          `json:"web_plates_per_side,omitempty"` // 1 or 2; 0 defaults to 1

	FlangeBolts BoltGroupConfig `json:"flange_bolts"`
	WebBolts    BoltGroupConfig `json:"web_bolts"`

	Loads AppliedLoads `json:"loads"`

	Gap float64 `json:"gap,omitempty"` // Clear gap between member ends (in)

	// Externally supplied tension demand per flange bolt (kips), e.g.
	// from uplift. Zero means the prying and combined tension-shear
	// checks carry no tension demand; this default is explicit, not an
	// implicit coercion of a missing value.
	BoltTension float64 `json:"bolt_tension,omitempty"`

	// Behavior flags
	DevelopCapacity       bool `json:"develop_capacity,omitempty"`       // Derive M and V from the member's own capacity
	OptimizeBolts         bool `json:"optimize_bolts,omitempty"`         // Run the pattern optimizer
	OptimizeDiameter      bool `json:"optimize_diameter,omitempty"`      // Search standard diameters too
	DeformationConsidered bool `json:"deformation_considered,omitempty"` // Hole deformation is a design consideration
	DisableHoleTable      bool `json:"disable_hole_table,omitempty"`     // Use the clearance rule instead of Table J3.3
}

// DesignMethod resolves the method string; anything but "ASD" is LRFD
func (c *Connection) DesignMethod() aisc.DesignMethod {
	if c.Method == "ASD" {
		return aisc.ASD
	}
	return aisc.LRFD
}

// ResolveMaterials fills in Fy/Fu from ASTM grade names wherever explicit
// strengths were not given. Unknown grade names are an error.
func (c *Connection) ResolveMaterials() error {
	resolve := func(what, grade string, fy, fu *float64) error {
		if grade == "" || *fy > 0 || *fu > 0 {
			return nil
		}
		g, ok := aisc.SteelGradeByName(grade)
		if !ok {
			return fmt.Errorf("%s: unknown steel grade %q", what, grade)
		}
		*fy, *fu = g.Fy, g.Fu
		return nil
	}

	if err := resolve("member", c.Member.Grade, &c.Member.Fy, &c.Member.Fu); err != nil {
		return err
	}
	if err := resolve("flange outer plate", c.FlangeOuterPlate.Grade,
		&c.FlangeOuterPlate.Fy, &c.FlangeOuterPlate.Fu); err != nil {
		return err
	}
	if c.FlangeInnerPlate != nil {
		if err := resolve("flange inner plate", c.FlangeInnerPlate.Grade,
			&c.FlangeInnerPlate.Fy, &c.FlangeInnerPlate.Fu); err != nil {
			return err
		}
	}
	return resolve("web plate", c.WebPlate.Grade, &c.WebPlate.Fy, &c.WebPlate.Fu)
}

// Validate checks the input record against the model invariants
func (c *Connection) Validate() error {
	if c.Method != "" && c.Method != "LRFD" && c.Method != "ASD" {
		return fmt.Errorf("unknown design method %q (want LRFD or ASD)", c.Method)
	}
	if c.Member.Depth <= 0 || c.Member.FlangeThickness <= 0 {
		return fmt.Errorf("invalid member geometry: d=%.3f, tf=%.3f", c.Member.Depth, c.Member.FlangeThickness)
	}
	if c.Member.Fu <= c.Member.Fy || c.Member.Fy <= 0 {
		return fmt.Errorf("invalid member material: Fy=%.1f, Fu=%.1f (need Fu > Fy > 0)", c.Member.Fy, c.Member.Fu)
	}
	plates := []struct {
		name string
		p    *PlateConfig
	}{
		{"flange outer plate", &c.FlangeOuterPlate},
		{"web plate", &c.WebPlate},
	}
	if c.FlangeInnerPlate != nil {
		plates = append(plates, struct {
			name string
			p    *PlateConfig
		}{"flange inner plate", c.FlangeInnerPlate})
	}
	for _, e := range plates {
		if e.p.Thickness <= 0 || e.p.Width <= 0 || e.p.Length <= 0 {
			return fmt.Errorf("%s has non-positive dimensions", e.name)
		}
		if e.p.Fu <= e.p.Fy || e.p.Fy <= 0 {
			return fmt.Errorf("%s material invalid: Fy=%.1f, Fu=%.1f (need Fu > Fy > 0)", e.name, e.p.Fy, e.p.Fu)
		}
	}
	for _, g := range []struct {
		name string
		b    BoltGroupConfig
	}{{"flange bolts", c.FlangeBolts}, {"web bolts", c.WebBolts}} {
		if g.b.Diameter <= 0 {
			return fmt.Errorf("%s: diameter must be positive", g.name)
		}
		if g.b.Rows < 1 || g.b.Columns < 1 {
			return fmt.Errorf("%s: rows and columns must be at least 1", g.name)
		}
		if g.b.Pitch <= 0 && g.b.Columns > 1 {
			return fmt.Errorf("%s: pitch must be positive for multiple columns", g.name)
		}
		if g.b.RowSpacing <= 0 && g.b.Rows > 1 {
			return fmt.Errorf("%s: row spacing must be positive for multiple rows", g.name)
		}
		if g.b.EndDistance <= 0 {
			return fmt.Errorf("%s: end distance must be positive", g.name)
		}
	}
	return nil
}

// CheckKind enumerates the closed catalogue of design checks
type CheckKind int

const (
	CheckFlangeBoltShear CheckKind = iota
	CheckFlangeBearingOuterPlate
	CheckFlangeBearingMember
	CheckOuterPlateYield
	CheckOuterPlateFracture
	CheckInnerPlateYield
	CheckInnerPlateFracture
	CheckOuterPlateBlockShear
	CheckFlangePlateBuckling
	CheckMemberFlangeRupture
	CheckBoltTensionShear
	CheckPryingThickness
	CheckWebBoltShear
	CheckWebBearingPlate
	CheckWebBearingMember
	CheckWebPlateShearYield
	CheckWebPlateShearRupture
	CheckWebPlateBlockShear
	CheckWebPlateTensionYield
)

var checkNames = map[CheckKind]string{
	CheckFlangeBoltShear:         "Flange bolt shear",
	CheckFlangeBearingOuterPlate: "Flange bolt bearing on splice plate",
	CheckFlangeBearingMember:     "Flange bolt bearing on member flange",
	CheckOuterPlateYield:         "Outer flange plate gross yielding",
	CheckOuterPlateFracture:      "Outer flange plate net-section fracture",
	CheckInnerPlateYield:         "Inner flange plate gross yielding",
	CheckInnerPlateFracture:      "Inner flange plate net-section fracture",
	CheckOuterPlateBlockShear:    "Outer flange plate block shear",
	CheckFlangePlateBuckling:     "Flange plate compression buckling",
	CheckMemberFlangeRupture:     "Member flange flexural rupture",
	CheckBoltTensionShear:        "Bolt combined tension and shear",
	CheckPryingThickness:         "Flange plate prying thickness",
	CheckWebBoltShear:            "Web bolt shear (eccentric group)",
	CheckWebBearingPlate:         "Web bolt bearing on web plate",
	CheckWebBearingMember:        "Web bolt bearing on member web",
	CheckWebPlateShearYield:      "Web plate shear yielding",
	CheckWebPlateShearRupture:    "Web plate shear rupture",
	CheckWebPlateBlockShear:      "Web plate block shear",
	CheckWebPlateTensionYield:    "Web plate tension yielding",
}

// String returns the display name of the check
func (k CheckKind) String() string {
	if n, ok := checkNames[k]; ok {
		return n
	}
	return fmt.Sprintf("check(%d)", int(k))
}

// IsWebCheck reports whether the check belongs to the web bolt group stage
func (k CheckKind) IsWebCheck() bool {
	return k >= CheckWebBoltShear
}

// CheckRecord pairs one check's demand with its limit-state capacity.
// For the prying check the record is an inverted thickness comparison:
// Demand is the required thickness, Rn the provided one, and both factors
// are unity so the ratio reduces to required/provided under either method.
type CheckRecord struct {
	Kind   CheckKind
	Demand float64 // kips (kip-in for flexural checks, in for thickness checks)
	Rn     float64
	Phi    float64
	Omega  float64
	Detail string // Mode-specific intermediate quantities for the report
}

// GeometryCheckRecord is the verdict of one spacing or edge-distance rule
type GeometryCheckRecord struct {
	Name    string
	Web     bool    // belongs to the web group
	Actual  float64 // in
	Limit   float64 // in
	Maximum bool    // limit is an upper bound instead of a lower one
	Passed  bool
}

// CheckRatio is a CheckRecord reduced under the active design method
type CheckRatio struct {
	CheckRecord
	Capacity float64
	Ratio    float64
	Passed   bool
}

// DesignConfiguration is one fully evaluated candidate connection
type DesignConfiguration struct {
	FlangeBolts BoltGroupConfig
	WebBolts    BoltGroupConfig

	Checks         []CheckRatio
	GeometryChecks []GeometryCheckRecord
	Demands        Demands

	BoltCount int // flange + web bolts per side
	Valid     bool
}

// OptimizationResult is the outcome of a pattern search
type OptimizationResult struct {
	Found bool
	Best  *DesignConfiguration
	Log   []string // Append-only human-readable search log
}
