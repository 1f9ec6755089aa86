package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/alexiusacademia/gosteel/internal/splice"
)

// Shared result-report rendering for the splice commands

func printDemands(d splice.Demands) {
	fmt.Println("RESOLVED LOADS AND DEMANDS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Design Moment (M):\t%.2f kip-ft\n", d.Moment)
	fmt.Fprintf(w, "  Design Shear (V):\t%.2f kips\n", d.Shear)
	fmt.Fprintf(w, "  Design Axial (P):\t%.2f kips\n", d.Axial)
	fmt.Fprintf(w, "  Flange force from moment:\t%.2f kips\n", d.FlangeMomentForce)
	fmt.Fprintf(w, "  Axial share per flange:\t%.2f kips\n", d.AxialPerFlange)
	fmt.Fprintf(w, "  Flange tension:\t%.2f kips\n", d.FlangeTension)
	fmt.Fprintf(w, "  Flange compression:\t%.2f kips\n", d.FlangeCompression)
	fmt.Fprintf(w, "  Web shear:\t%.2f kips\n", d.WebShear)
	fmt.Fprintf(w, "  Web horizontal force (Hw):\t%.2f kips\n", d.WebHorizontal)
	w.Flush()
	fmt.Println()
}

func printChecks(cfg *splice.DesignConfiguration) {
	fmt.Println("LIMIT-STATE CHECKS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Check\tDemand\tCapacity\tRatio\t\n")
	fmt.Fprintf(w, "  ─────\t──────\t────────\t─────\t\n")
	for _, c := range cfg.Checks {
		mark := "✓"
		if !c.Passed {
			mark = "✗"
		}
		ratio := fmt.Sprintf("%.3f", c.Ratio)
		if math.IsInf(c.Ratio, 1) {
			ratio = "∞"
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%s %s\t\n",
			c.Kind, math.Abs(c.Demand), c.Capacity, ratio, mark)
	}
	w.Flush()
	fmt.Println()
}

func printCheckDetails(cfg *splice.DesignConfiguration) {
	fmt.Println("CHECK DETAILS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for _, c := range cfg.Checks {
		if c.Detail == "" {
			continue
		}
		fmt.Printf("  %s:\n    Rn = %.2f, φ = %.2f, Ω = %.2f — %s\n",
			c.Kind, c.Rn, c.Phi, c.Omega, c.Detail)
	}
	fmt.Println()
}

func printGeometryChecks(cfg *splice.DesignConfiguration) {
	fmt.Println("GEOMETRIC SPACING CHECKS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Rule\tActual\tLimit\t\n")
	fmt.Fprintf(w, "  ────\t──────\t─────\t\n")
	for _, g := range cfg.GeometryChecks {
		mark := "✓"
		if !g.Passed {
			mark = "✗"
		}
		fmt.Fprintf(w, "  %s\t%.3f in\t%.3f in\t%s\n", g.Name, g.Actual, g.Limit, mark)
	}
	w.Flush()
	fmt.Println()
}

func printVerdict(cfg *splice.DesignConfiguration) {
	if cfg.Valid {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  CONNECTION ADEQUATE - ALL CHECKS PASS  ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
	} else {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  CONNECTION NOT ADEQUATE                ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
	}
	fmt.Printf("\n  Total bolts per side: %d flange + %d web\n\n",
		cfg.FlangeBolts.Count(), cfg.WebBolts.Count())
}

func ratioBars(cfg *splice.DesignConfiguration) []diagram.RatioBar {
	bars := make([]diagram.RatioBar, 0, len(cfg.Checks))
	for _, c := range cfg.Checks {
		r := c.Ratio
		if math.IsInf(r, 1) {
			r = 9.999
		}
		bars = append(bars, diagram.RatioBar{Name: c.Kind.String(), Ratio: r, Passed: c.Passed})
	}
	return bars
}

func patternData(conn *splice.Connection, b splice.BoltGroupConfig, title string, plateL, plateH float64, web bool) diagram.BoltPatternData {
	g := splice.ResolveGrid(b, plateL, plateH, 1, conn.DisableHoleTable)
	return diagram.BoltPatternData{
		Title:        title,
		PlateLength:  plateL,
		PlateHeight:  plateH,
		Rows:         b.RowsAcross(),
		Columns:      b.Columns,
		Pitch:        b.Pitch,
		RowSpacing:   b.RowSpacing,
		EndDistance:  b.EndDistance,
		BoltDiameter: b.Diameter,
		HoleDiameter: g.HoleDiameter,
		MarkCritical: web,
	}
}
