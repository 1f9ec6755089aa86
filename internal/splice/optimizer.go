package splice

import (
	"fmt"

	"github.com/alexiusacademia/gosteel/internal/aisc"
)

// Search bounds of the discrete optimizer
const (
	maxFlangeRows    = 10
	maxFlangeColumns = 10
	maxWebBolts      = 40
)

// candidate is one point of the bolt-pattern search space
type candidate struct {
	Diameter float64
	Rows     int
	Columns  int
}

// flangeCandidates enumerates the flange search space in its fixed order:
// diameter outermost, then columns, then rows
func flangeCandidates(diameters []float64) []candidate {
	var out []candidate
	for _, db := range diameters {
		for cols := 1; cols <= maxFlangeColumns; cols++ {
			for rows := 1; rows <= maxFlangeRows; rows++ {
				out = append(out, candidate{Diameter: db, Rows: rows, Columns: cols})
			}
		}
	}
	return out
}

// webCandidates enumerates the web search space: diameter outermost, then
// total bolt count ascending, then every row factorization of that total
func webCandidates(diameters []float64) []candidate {
	var out []candidate
	for _, db := range diameters {
		for total := 1; total <= maxWebBolts; total++ {
			for rows := 1; rows <= total; rows++ {
				if total%rows != 0 {
					continue
				}
				out = append(out, candidate{Diameter: db, Rows: rows, Columns: total / rows})
			}
		}
	}
	return out
}

// searchDiameters returns the diameter list for one bolt group: the fixed
// user diameter, or the full standard list when diameter search is on
func searchDiameters(c *Connection, db float64) []float64 {
	if c.OptimizeDiameter {
		return aisc.StandardDiameters
	}
	return []float64{db}
}

// Optimize searches bolt diameter and grid dimensions for the smallest
// bolt pattern that passes every check and every spacing rule. The flange
// group is sized first; the web group then reuses that result, since the
// flange bolt capacity changes the effective web demand. Ties at equal
// bolt count go to the first configuration found in enumeration order.
func Optimize(c *Connection) OptimizationResult {
	res := OptimizationResult{}
	logf := func(format string, args ...any) {
		res.Log = append(res.Log, fmt.Sprintf(format, args...))
	}

	work := *c
	logf("Optimization started (%s), flange stage: up to %d×%d pattern",
		c.DesignMethod(), maxFlangeRows, maxFlangeColumns)

	// ---- Stage 1: flange bolt group ----

	var bestFlange *DesignConfiguration
	bestFlangeCount := 0

	for _, cand := range flangeCandidates(searchDiameters(c, c.FlangeBolts.Diameter)) {
		fb := c.FlangeBolts
		fb.Diameter, fb.Rows, fb.Columns = cand.Diameter, cand.Rows, cand.Columns

		// Monotone pruning: only strictly smaller patterns can improve
		if bestFlange != nil && fb.Count() >= bestFlangeCount {
			continue
		}

		work.FlangeBolts = fb
		cfg, err := EvaluateConfiguration(&work)
		if err != nil {
			logf("Skipped db=%.3f %d×%d: %v", cand.Diameter, cand.Rows, cand.Columns, err)
			continue
		}

		if groupValid(cfg, false) {
			bestFlange = cfg
			bestFlangeCount = fb.Count()
			logf("Flange: db=%.3f in, %d rows × %d columns (%d bolts) passes all checks",
				cand.Diameter, cand.Rows, cand.Columns, bestFlangeCount)
		}
	}

	if bestFlange == nil {
		logf("Flange stage failed: no valid configuration within the search bounds")
		return res
	}
	work.FlangeBolts = bestFlange.FlangeBolts
	logf("Flange stage done: %d bolts per side", bestFlangeCount)

	// ---- Stage 2: web bolt group, reusing the flange result ----

	logf("Web stage: up to %d bolts", maxWebBolts)

	var bestWeb *DesignConfiguration
	bestWebCount := 0

	for _, cand := range webCandidates(searchDiameters(c, c.WebBolts.Diameter)) {
		wb := c.WebBolts
		wb.Diameter, wb.Rows, wb.Columns = cand.Diameter, cand.Rows, cand.Columns

		if wb.Count() > maxWebBolts {
			continue
		}
		if bestWeb != nil && wb.Count() >= bestWebCount {
			continue
		}

		work.WebBolts = wb
		cfg, err := EvaluateConfiguration(&work)
		if err != nil {
			logf("Skipped web db=%.3f %d×%d: %v", cand.Diameter, cand.Rows, cand.Columns, err)
			continue
		}

		if groupValid(cfg, true) {
			bestWeb = cfg
			bestWebCount = wb.Count()
			logf("Web: db=%.3f in, %d rows × %d columns (%d bolts) passes all checks",
				cand.Diameter, cand.Rows, cand.Columns, bestWebCount)
		}
	}

	if bestWeb == nil {
		logf("Web stage failed: no valid configuration within the search bounds")
		return res
	}

	res.Found = true
	res.Best = bestWeb
	logf("Optimization complete: %d flange + %d web = %d bolts per side",
		bestFlangeCount, bestWebCount, bestFlangeCount+bestWebCount)
	logf("Note: ties at equal bolt count are broken by enumeration order, not by a secondary criterion")

	return res
}
