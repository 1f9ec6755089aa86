package splice

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteel/internal/limitstate"
)

// EvaluateConfiguration runs the full check catalogue for the connection's
// current bolt configuration and reduces it under the active design
// method. The only error condition is member instability from the
// combined tension-shear check; every other degenerate input shows up as
// a failing check, not an error.
func EvaluateConfiguration(c *Connection) (*DesignConfiguration, error) {
	method := c.DesignMethod()

	cfg := &DesignConfiguration{
		FlangeBolts: c.FlangeBolts,
		WebBolts:    c.WebBolts,
		BoltCount:   c.FlangeBolts.Count() + c.WebBolts.Count(),
	}

	// Resolve both grids on their plates
	flangeThin := math.Min(c.FlangeOuterPlate.Thickness, c.Member.FlangeThickness)
	fg := ResolveGrid(c.FlangeBolts, c.FlangeOuterPlate.Length, c.FlangeOuterPlate.Width, flangeThin, c.DisableHoleTable)

	webThin := math.Min(c.WebPlate.Thickness, c.Member.WebThickness)
	wg := ResolveGrid(c.WebBolts, c.WebPlate.Length, c.WebPlate.Width, webThin, c.DisableHoleTable)

	// Flange bolt group shear capacity feeds the demand distribution:
	// the web group picks up whatever moment the flange bolts cannot.
	flangePlanes := 1
	if c.FlangeInnerPlate != nil {
		flangePlanes = 2
	}
	fBolt := limitstate.BoltShear(limitstate.BoltShearInput{
		Grade:           c.FlangeBolts.Grade,
		Diameter:        c.FlangeBolts.Diameter,
		ThreadsIncluded: c.FlangeBolts.ThreadsIncluded,
		ShearPlanes:     flangePlanes,
		JointLength:     fg.PatternLength,
	})
	nf := float64(c.FlangeBolts.Count())
	flangeGroupCapacity := method.Capacity(nf*fBolt.Rn, fBolt.Phi, fBolt.Omega)

	cfg.Demands = Distribute(c, flangeGroupCapacity)
	d := cfg.Demands

	var records []CheckRecord
	add := func(r CheckRecord) { records = append(records, r) }

	// ---- Flange bolt group ----

	add(CheckRecord{
		Kind:   CheckFlangeBoltShear,
		Demand: d.FlangeTension,
		Rn:     nf * fBolt.Rn,
		Phi:    fBolt.Phi,
		Omega:  fBolt.Omega,
		Detail: boltShearDetail(fBolt, c.FlangeBolts.Count()),
	})

	add(bearingRecord(CheckFlangeBearingOuterPlate,
		d.OuterPlateShare*d.FlangeTension,
		c.FlangeBolts, fg, c.FlangeOuterPlate.Thickness, c.FlangeOuterPlate.Fu,
		c.DeformationConsidered))

	add(bearingRecord(CheckFlangeBearingMember,
		d.FlangeTension,
		c.FlangeBolts, fg, c.Member.FlangeThickness, c.Member.Fu,
		c.DeformationConsidered))

	outerAg := c.FlangeOuterPlate.Width * c.FlangeOuterPlate.Thickness
	gy := limitstate.GrossYield(c.FlangeOuterPlate.Fy, outerAg)
	add(CheckRecord{
		Kind:   CheckOuterPlateYield,
		Demand: d.OuterPlateShare * d.FlangeTension,
		Rn:     gy.Rn, Phi: gy.Phi, Omega: gy.Omega,
		Detail: fmt.Sprintf("Ag = %.3f in²", gy.Ag),
	})

	nfr := limitstate.NetFracture(limitstate.NetFractureInput{
		Fu:           c.FlangeOuterPlate.Fu,
		GrossArea:    outerAg,
		BoltsInLine:  c.FlangeBolts.RowsAcross(),
		HoleDiameter: fg.HoleDiameter,
		Thickness:    c.FlangeOuterPlate.Thickness,
	})
	add(CheckRecord{
		Kind:   CheckOuterPlateFracture,
		Demand: d.OuterPlateShare * d.FlangeTension,
		Rn:     nfr.Rn, Phi: nfr.Phi, Omega: nfr.Omega,
		Detail: fmt.Sprintf("An = %.3f in² (holes %.3f in²)", nfr.An, nfr.AreaHoles),
	})

	if c.FlangeInnerPlate != nil {
		innerAg := c.FlangeInnerPlate.Width * c.FlangeInnerPlate.Thickness
		igy := limitstate.GrossYield(c.FlangeInnerPlate.Fy, innerAg)
		add(CheckRecord{
			Kind:   CheckInnerPlateYield,
			Demand: d.InnerPlateShare * d.FlangeTension,
			Rn:     igy.Rn, Phi: igy.Phi, Omega: igy.Omega,
			Detail: fmt.Sprintf("Ag = %.3f in²", igy.Ag),
		})

		infr := limitstate.NetFracture(limitstate.NetFractureInput{
			Fu:           c.FlangeInnerPlate.Fu,
			GrossArea:    innerAg,
			BoltsInLine:  c.FlangeBolts.RowsAcross(),
			HoleDiameter: fg.HoleDiameter,
			Thickness:    c.FlangeInnerPlate.Thickness,
		})
		add(CheckRecord{
			Kind:   CheckInnerPlateFracture,
			Demand: d.InnerPlateShare * d.FlangeTension,
			Rn:     infr.Rn, Phi: infr.Phi, Omega: infr.Omega,
			Detail: fmt.Sprintf("An = %.3f in² (holes %.3f in²)", infr.An, infr.AreaHoles),
		})
	}

	bs := limitstate.BlockShear(limitstate.BlockShearInput{
		Fy:          c.FlangeOuterPlate.Fy,
		Fu:          c.FlangeOuterPlate.Fu,
		TensionRows: c.FlangeBolts.Columns,
		Paths:       flangeBlockShearPaths(c.FlangeBolts, fg, c.FlangeOuterPlate.Thickness),
	})
	add(CheckRecord{
		Kind:   CheckOuterPlateBlockShear,
		Demand: d.OuterPlateShare * d.FlangeTension,
		Rn:     bs.Rn, Phi: bs.Phi, Omega: bs.Omega,
		Detail: fmt.Sprintf("Ubs = %.1f, governing path: %s", bs.Ubs, bs.GoverningPath),
	})

	pc := limitstate.PlateCompression(limitstate.PlateCompressionInput{
		Fy:        c.FlangeOuterPlate.Fy,
		GrossArea: outerAg,
		Thickness: c.FlangeOuterPlate.Thickness,
		Length:    c.Gap + 2*c.FlangeBolts.EndDistance,
	})
	add(CheckRecord{
		Kind:   CheckFlangePlateBuckling,
		Demand: d.OuterPlateShare * d.FlangeCompression,
		Rn:     pc.Rn, Phi: pc.Phi, Omega: pc.Omega,
		Detail: fmt.Sprintf("kL/r = %.1f, Fcr = %.2f ksi", pc.Slenderness, pc.Fcr),
	})

	afg := c.Member.FlangeWidth * c.Member.FlangeThickness
	afn := afg - float64(c.FlangeBolts.RowsAcross())*fg.HoleDiameter*c.Member.FlangeThickness
	fr := limitstate.FlexuralRupture(limitstate.FlexuralRuptureInput{
		Fy:  c.Member.Fy,
		Fu:  c.Member.Fu,
		Afg: afg,
		Afn: math.Max(afn, 0),
		Sx:  c.Member.Sx,
	})
	frRec := CheckRecord{
		Kind:  CheckMemberFlangeRupture,
		Phi:   fr.Phi,
		Omega: fr.Omega,
	}
	if fr.Limited {
		frRec.Demand = math.Abs(d.Moment * 12)
		frRec.Rn = fr.Rn
		frRec.Detail = fmt.Sprintf("Yt = %.1f, Afn = %.3f in²", fr.Yt, math.Max(afn, 0))
	} else {
		frRec.Detail = fmt.Sprintf("Fu·Afn ≥ Yt·Fy·Afg (Yt = %.1f) — rupture does not govern", fr.Yt)
	}
	add(frRec)

	// Per-bolt shear stress for the combined tension-shear reduction
	var frv float64
	if fBolt.Ab > 0 && nf > 0 {
		frv = math.Abs(d.FlangeTension) / (nf * float64(flangePlanes) * fBolt.Ab)
	}
	ts, err := limitstate.TensionShear(limitstate.TensionShearInput{
		Grade:               c.FlangeBolts.Grade,
		Diameter:            c.FlangeBolts.Diameter,
		ThreadsIncluded:     c.FlangeBolts.ThreadsIncluded,
		Method:              method,
		RequiredShearStress: frv,
		Axial:               math.Abs(d.Axial),
		ElasticBuckling:     c.Member.ElasticBuckling,
	})
	if err != nil {
		return nil, err
	}
	add(CheckRecord{
		Kind:   CheckBoltTensionShear,
		Demand: c.BoltTension,
		Rn:     ts.Rn, Phi: ts.Phi, Omega: ts.Omega,
		Detail: fmt.Sprintf("frv = %.2f ksi, F'nt = %.2f ksi", frv*ts.Amplification, ts.FntReduced),
	})

	// Prying: b from the bolt line to the plate centerline, a to the edge,
	// tributary width per bolt across the plate
	pryB := c.FlangeBolts.RowSpacing / 2
	if c.FlangeBolts.Gage > 0 {
		pryB = c.FlangeBolts.Gage / 2
	}
	pryP := c.FlangeOuterPlate.Width / float64(c.FlangeBolts.RowsAcross())
	pr := limitstate.Prying(limitstate.PryingInput{
		BoltTension:    c.BoltTension,
		BoltDiameter:   c.FlangeBolts.Diameter,
		HoleDiameter:   fg.HoleDiameter,
		B:              pryB,
		A:              fg.TranEdge,
		TributaryWidth: pryP,
		Thickness:      c.FlangeOuterPlate.Thickness,
		Fy:             c.FlangeOuterPlate.Fy,
	})
	// Inverted check: required thickness over provided thickness
	add(CheckRecord{
		Kind:   CheckPryingThickness,
		Demand: pr.Tc,
		Rn:     c.FlangeOuterPlate.Thickness,
		Phi:    1.0, Omega: 1.0,
		Detail: fmt.Sprintf("tc = %.3f in, Q' = %.2f kips, T_req = %.2f kips", pr.Tc, pr.PryingForce, pr.Treq),
	})

	// ---- Web bolt group ----

	webPlates := c.WebPlatesPerSide
	if webPlates < 1 {
		webPlates = 1
	}

	group := limitstate.BoltGroup(limitstate.BoltGroupInput{
		Rows:          c.WebBolts.RowsAcross(),
		Columns:       c.WebBolts.Columns,
		RowSpacing:    c.WebBolts.RowSpacing,
		ColumnSpacing: c.WebBolts.Pitch,
		Vertical:      d.WebShear,
		Horizontal:    d.WebHorizontal,
		Eccentricity:  c.Gap/2 + c.WebBolts.EndDistance + wg.PatternLength/2,
	})

	wBolt := limitstate.BoltShear(limitstate.BoltShearInput{
		Grade:           c.WebBolts.Grade,
		Diameter:        c.WebBolts.Diameter,
		ThreadsIncluded: c.WebBolts.ThreadsIncluded,
		ShearPlanes:     webPlates,
		JointLength:     wg.PatternLength,
	})
	add(CheckRecord{
		Kind:   CheckWebBoltShear,
		Demand: group.Resultant,
		Rn:     wBolt.Rn, Phi: wBolt.Phi, Omega: wBolt.Omega,
		Detail: fmt.Sprintf("Ip = %.2f in², critical bolt at (%.2f, %.2f) in%s",
			group.Ip, group.CriticalDx, group.CriticalDy, pureDirectNote(group)),
	})

	webPlateT := float64(webPlates) * c.WebPlate.Thickness
	add(perBoltBearingRecord(CheckWebBearingPlate, group.Resultant,
		c.WebBolts, wg, webPlateT, c.WebPlate.Fu, c.DeformationConsidered))
	add(perBoltBearingRecord(CheckWebBearingMember, group.Resultant,
		c.WebBolts, wg, c.Member.WebThickness, c.Member.Fu, c.DeformationConsidered))

	webAgv := c.WebPlate.Width * webPlateT
	sy := limitstate.ShearYield(c.WebPlate.Fy, webAgv)
	add(CheckRecord{
		Kind:   CheckWebPlateShearYield,
		Demand: d.WebShear,
		Rn:     sy.Rn, Phi: sy.Phi, Omega: sy.Omega,
		Detail: fmt.Sprintf("Agv = %.3f in²", sy.Agv),
	})

	webAnv := (c.WebPlate.Width - float64(c.WebBolts.RowsAcross())*wg.HoleDiameter) * webPlateT
	sr := limitstate.ShearRupture(c.WebPlate.Fu, math.Max(webAnv, 0))
	add(CheckRecord{
		Kind:   CheckWebPlateShearRupture,
		Demand: d.WebShear,
		Rn:     sr.Rn, Phi: sr.Phi, Omega: sr.Omega,
		Detail: fmt.Sprintf("Anv = %.3f in²", sr.Anv),
	})

	wbs := limitstate.BlockShear(limitstate.BlockShearInput{
		Fy:          c.WebPlate.Fy,
		Fu:          c.WebPlate.Fu,
		TensionRows: c.WebBolts.Columns,
		Paths:       webBlockShearPaths(c.WebBolts, wg, webPlateT),
	})
	add(CheckRecord{
		Kind:   CheckWebPlateBlockShear,
		Demand: d.WebShear,
		Rn:     wbs.Rn, Phi: wbs.Phi, Omega: wbs.Omega,
		Detail: fmt.Sprintf("Ubs = %.1f, governing path: %s", wbs.Ubs, wbs.GoverningPath),
	})

	wty := limitstate.GrossYield(c.WebPlate.Fy, webAgv)
	add(CheckRecord{
		Kind:   CheckWebPlateTensionYield,
		Demand: d.WebHorizontal,
		Rn:     wty.Rn, Phi: wty.Phi, Omega: wty.Omega,
		Detail: fmt.Sprintf("Hw = %.2f kips on Ag = %.3f in²", d.WebHorizontal, wty.Ag),
	})

	// ---- Reduce and collect ----

	ratios, allPassed := EvaluateRatios(records, method)
	cfg.Checks = ratios

	cfg.GeometryChecks = append(SpacingChecks(c.FlangeBolts, fg, false),
		SpacingChecks(c.WebBolts, wg, true)...)

	geomOK := true
	for _, g := range cfg.GeometryChecks {
		if !g.Passed {
			geomOK = false
			break
		}
	}
	cfg.Valid = allPassed && geomOK

	return cfg, nil
}

func pureDirectNote(g limitstate.BoltGroupResult) string {
	if g.PureDirect {
		return " (pure direct shear)"
	}
	return ""
}

func boltShearDetail(r limitstate.BoltShearResult, n int) string {
	s := fmt.Sprintf("%d bolts, Ab = %.4f in², Fnv = %.1f ksi", n, r.Ab, r.Fnv)
	if r.WasReduced {
		s += " (long-joint reduction)"
	}
	return s
}

// bearingRecord sums per-bolt bearing over the grid: the first column of
// every row bears toward the plate end, the rest are interior bolts.
func bearingRecord(kind CheckKind, demand float64, b BoltGroupConfig, g GridGeometry,
	t, fu float64, deform bool) CheckRecord {

	edge := limitstate.BoltBearing(limitstate.BoltBearingInput{
		Diameter:              b.Diameter,
		HoleDiameter:          g.HoleDiameter,
		Thickness:             t,
		Fu:                    fu,
		EdgeBolt:              true,
		EdgeDistance:          b.EndDistance,
		DeformationConsidered: deform,
	})
	interior := limitstate.BoltBearing(limitstate.BoltBearingInput{
		Diameter:              b.Diameter,
		HoleDiameter:          g.HoleDiameter,
		Thickness:             t,
		Fu:                    fu,
		Spacing:               b.Pitch,
		DeformationConsidered: deform,
	})

	rows := float64(b.RowsAcross())
	cols := b.Columns
	if cols < 1 {
		cols = 1
	}
	rn := rows*edge.Rn + rows*float64(cols-1)*interior.Rn

	return CheckRecord{
		Kind:   kind,
		Demand: demand,
		Rn:     rn,
		Phi:    edge.Phi,
		Omega:  edge.Omega,
		Detail: fmt.Sprintf("edge bolt %.2f kips (Lc = %.3f in), interior bolt %.2f kips (Lc = %.3f in)",
			edge.Rn, edge.Lc, interior.Rn, interior.Lc),
	}
}

// perBoltBearingRecord checks the critical bolt of an eccentric group
// against the smaller of the edge and interior per-bolt capacities
func perBoltBearingRecord(kind CheckKind, demand float64, b BoltGroupConfig, g GridGeometry,
	t, fu float64, deform bool) CheckRecord {

	edge := limitstate.BoltBearing(limitstate.BoltBearingInput{
		Diameter:              b.Diameter,
		HoleDiameter:          g.HoleDiameter,
		Thickness:             t,
		Fu:                    fu,
		EdgeBolt:              true,
		EdgeDistance:          b.EndDistance,
		DeformationConsidered: deform,
	})
	rn := edge.Rn
	detail := fmt.Sprintf("edge bolt governs, Lc = %.3f in", edge.Lc)

	if b.Columns > 1 {
		interior := limitstate.BoltBearing(limitstate.BoltBearingInput{
			Diameter:              b.Diameter,
			HoleDiameter:          g.HoleDiameter,
			Thickness:             t,
			Fu:                    fu,
			Spacing:               b.Pitch,
			DeformationConsidered: deform,
		})
		if interior.Rn < rn {
			rn = interior.Rn
			detail = fmt.Sprintf("interior bolt governs, Lc = %.3f in", interior.Lc)
		}
	}

	return CheckRecord{
		Kind:   kind,
		Demand: demand,
		Rn:     rn,
		Phi:    edge.Phi,
		Omega:  edge.Omega,
		Detail: detail,
	}
}

// flangeBlockShearPaths builds the two tear-out paths for a flange plate
// loaded along the member axis: shear along both outer bolt lines, with
// the tension plane either between the lines or out to the plate edges.
func flangeBlockShearPaths(b BoltGroupConfig, g GridGeometry, t float64) []limitstate.BlockShearPath {
	cols := float64(b.Columns)
	shearLen := b.EndDistance + g.PatternLength
	agv := 2 * t * shearLen
	anv := agv - 2*t*(cols-0.5)*g.HoleDiameter

	rows := float64(b.RowsAcross())
	antInterior := t * (g.PatternHeight - (rows-1)*g.HoleDiameter)
	antEdge := 2 * t * (g.TranEdge - g.HoleDiameter/2)

	return []limitstate.BlockShearPath{
		{Name: "tension between bolt lines", Agv: agv, Anv: anv, Ant: antInterior},
		{Name: "tension to plate edges", Agv: agv, Anv: anv, Ant: antEdge},
	}
}

// webBlockShearPaths builds the tear-out paths for a web plate loaded
// vertically: shear along the bolt column nearest the splice, tension
// toward the plate end or across the pattern.
func webBlockShearPaths(b BoltGroupConfig, g GridGeometry, t float64) []limitstate.BlockShearPath {
	rows := float64(b.RowsAcross())
	shearLen := g.TranEdge + g.PatternHeight
	agv := t * shearLen
	anv := agv - t*(rows-0.5)*g.HoleDiameter

	cols := float64(b.Columns)
	antEnd := t * (b.EndDistance - g.HoleDiameter/2)
	antInterior := t * (g.PatternLength - (cols-1)*g.HoleDiameter)

	return []limitstate.BlockShearPath{
		{Name: "tension to plate end", Agv: agv, Anv: anv, Ant: antEnd},
		{Name: "tension across the pattern", Agv: agv, Anv: anv, Ant: antInterior},
	}
}
