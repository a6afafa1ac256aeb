package saturation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fugacity/equilibrium"
	"github.com/katalvlaran/fugacity/rootfind"
)

// Point is a located saturation point.
type Point struct {
	Location float64 `json:"location"` // scanned value at the crossing (K or pressure unit)
	Fugacity float64 `json:"fugacity"` // common fugacity at the crossing, in the axis unit
}

// Solve finds the saturation point of m inside r.
//
// ok is false when the fugacity curves do not cross inside r: the system is
// single-phase over the whole range. err is non-nil only for invalid input
// (ErrBadRange, ErrUnknownMethod, or a wrapped rootfind error).
func Solve(m equilibrium.Model, r equilibrium.ScanRange, opts ...Option) (p Point, ok bool, err error) {
	if !(r.Lo < r.Hi) {
		return Point{}, false, fmt.Errorf("Solve: [%v, %v]: %w", r.Lo, r.Hi, ErrBadRange)
	}
	cfg := gatherOptions(opts)
	if cfg.method == Analytic {
		return solveAnalytic(m, r, cfg)
	}
	rm, known := cfg.method.search()
	if !known {
		return Point{}, false, fmt.Errorf("Solve: %v: %w", cfg.method, ErrUnknownMethod)
	}

	return solveNumeric(m, r, rm, cfg.search)
}

func solveNumeric(m equilibrium.Model, r equilibrium.ScanRange, rm rootfind.Method, opts []rootfind.Option) (Point, bool, error) {
	root, err := rootfind.Find(rm, m.Difference, r.Lo, r.Hi, opts...)
	if err != nil {
		return Point{}, false, fmt.Errorf("Solve: %w", err)
	}
	if !root.Found {
		return Point{}, false, nil
	}

	return Point{Location: root.X, Fugacity: fugacityAt(m, root.X)}, true, nil
}

// solveAnalytic uses the closed forms:
//   - temperature scan: f_vap is constant, T_sat = InvClausius(f_vap / scale)
//   - ideal pressure scan: f_liq is constant and f_vap = P, so P_sat = f_liq
//
// The real-gas pressure scan has no closed form and falls back to Brent.
func solveAnalytic(m equilibrium.Model, r equilibrium.ScanRange, cfg config) (Point, bool, error) {
	var x float64
	switch {
	case m.Mode() == equilibrium.TemperatureScan:
		fv := m.VaporFugacity(r.Lo)
		x = m.Correlation().InvClausius(fv / m.LiquidScale())
	case !m.State().RealGas:
		x = m.LiquidFugacity(r.Lo)
	default:
		return solveNumeric(m, r, rootfind.BrentMethod, cfg.search)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || !r.Contains(x) {
		return Point{}, false, nil
	}

	return Point{Location: x, Fugacity: fugacityAt(m, x)}, true, nil
}

// fugacityAt reports the fugacity of the branch that varies with the
// scanned variable: liquid in a temperature scan, vapor in a pressure scan.
func fugacityAt(m equilibrium.Model, x float64) float64 {
	if m.Mode() == equilibrium.TemperatureScan {
		return m.LiquidFugacity(x)
	}

	return m.VaporFugacity(x)
}
