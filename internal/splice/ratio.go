package splice

import (
	"math"

	"github.com/alexiusacademia/gosteel/internal/aisc"
)

// EvaluateRatios reduces every CheckRecord to a demand/capacity ratio
// under the active design method and reports whether all checks pass.
// A zero design capacity with a non-zero demand is an infinite ratio; a
// zero demand always passes.
func EvaluateRatios(records []CheckRecord, method aisc.DesignMethod) ([]CheckRatio, bool) {
	out := make([]CheckRatio, 0, len(records))
	allPassed := true

	for _, rec := range records {
		cr := CheckRatio{CheckRecord: rec}
		cr.Capacity = method.Capacity(rec.Rn, rec.Phi, rec.Omega)

		demand := math.Abs(rec.Demand)
		switch {
		case demand == 0:
			cr.Ratio = 0
		case cr.Capacity <= 0:
			cr.Ratio = math.Inf(1)
		default:
			cr.Ratio = demand / cr.Capacity
		}

		cr.Passed = cr.Ratio <= 1
		if !cr.Passed {
			allPassed = false
		}
		out = append(out, cr)
	}

	return out, allPassed
}

// groupValid reports whether every check and geometric rule belonging to
// one bolt group (web or flange) passes
func groupValid(cfg *DesignConfiguration, web bool) bool {
	for _, c := range cfg.Checks {
		if c.Kind.IsWebCheck() == web && !c.Passed {
			return false
		}
	}
	for _, g := range cfg.GeometryChecks {
		if g.Web == web && !g.Passed {
			return false
		}
	}
	return true
}
