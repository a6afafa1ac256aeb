// SPDX-License-Identifier: MIT
// Package: fugacity/rootfind
//
// types.go — Func, Method and the optional-root result.

package rootfind

import "fmt"

// Func is a scalar function of one variable.
type Func func(x float64) float64

// Difference returns x ↦ f(x) − g(x). Its roots are the crossings of f and g.
func Difference(f, g Func) Func {
	return func(x float64) float64 {
		return f(x) - g(x)
	}
}

// Method selects a root-search algorithm.
type Method int

const (
	// LinearScan is a fixed-step sign-change scan with secant refinement.
	LinearScan Method = iota

	// Bisection halves a verified bracket a fixed number of times.
	Bisection

	// BrentMethod is Brent–Dekker root bracketing.
	BrentMethod
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case LinearScan:
		return "scan"
	case Bisection:
		return "bisection"
	case BrentMethod:
		return "brent"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "scan", "bisection" or "brent" to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "scan", "linear":
		return LinearScan, nil
	case "bisection", "bisect":
		return Bisection, nil
	case "brent":
		return BrentMethod, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
	}
}

// Root is the optional result of a search.
//
// Found == false means f has no sign change in the interval; X is then 0.
// Iterations counts function evaluations for LinearScan and loop iterations
// for Bisection and BrentMethod.
type Root struct {
	X          float64
	Iterations int
	Found      bool
}
