// SPDX-License-Identifier: MIT
// Package: fugacity/rootfind
//
// search.go — linear scan, bisection and Brent–Dekker searches.

package rootfind

import (
	"fmt"
	"math"
)

// machEps is the float64 unit roundoff used by Brent's convergence test.
const machEps = 2.220446049250313e-16

// Find dispatches to the search selected by method.
func Find(method Method, f Func, lo, hi float64, opts ...Option) (Root, error) {
	switch method {
	case LinearScan:
		return Scan(f, lo, hi, opts...)
	case Bisection:
		return Bisect(f, lo, hi, opts...)
	case BrentMethod:
		return Brent(f, lo, hi, opts...)
	default:
		return Root{}, fmt.Errorf("Find: %v: %w", method, ErrUnknownMethod)
	}
}

// Scan walks x_i = lo + i·h from lo towards hi and returns the first sign
// change of f, refined by secant interpolation between the two bracketing
// samples. The last sample is always hi. A step that would need more than
// MaxSteps steps is widened to (hi−lo)/MaxSteps.
//
// A sample where f is exactly zero is returned as the root. Samples where f
// is NaN never form a bracket.
//
// Errors: ErrNilFunc, ErrNonFinite, ErrBadInterval.
func Scan(f Func, lo, hi float64, opts ...Option) (Root, error) {
	if err := validate(f, lo, hi); err != nil {
		return Root{}, fmt.Errorf("Scan: %w", err)
	}
	o := gatherOptions(opts)
	h := o.Step
	if h == 0 {
		h = (hi - lo) / DefaultScanSteps
	}
	// a step too fine for MaxSteps is widened so the walk still reaches hi
	n := math.Ceil((hi - lo) / h)
	if !(n <= float64(o.MaxSteps)) {
		n = float64(o.MaxSteps)
		h = (hi - lo) / n
	}
	steps := int(n)

	x0, d0 := lo, f(lo)
	evals := 1
	if d0 == 0 {
		return Root{X: x0, Iterations: evals, Found: true}, nil
	}
	for i := 1; i <= steps; i++ {
		// index-based grid: no accumulated drift
		x1 := lo + float64(i)*h
		if x1 > hi || i == steps {
			x1 = hi
		}
		d1 := f(x1)
		evals++
		if d1 == 0 {
			return Root{X: x1, Iterations: evals, Found: true}, nil
		}
		if brackets(d0, d1) {
			return Root{X: secant(x0, d0, x1, d1), Iterations: evals, Found: true}, nil
		}
		x0, d0 = x1, d1
	}

	return Root{Iterations: evals}, nil
}

// Bisect checks that f changes sign over [lo, hi] and then halves the
// bracket a fixed number of times (DefaultBisections unless WithIterations
// is given). It returns the midpoint of the final bracket.
//
// Errors: ErrNilFunc, ErrNonFinite, ErrBadInterval.
func Bisect(f Func, lo, hi float64, opts ...Option) (Root, error) {
	if err := validate(f, lo, hi); err != nil {
		return Root{}, fmt.Errorf("Bisect: %w", err)
	}
	o := gatherOptions(opts)
	iters := o.Iterations
	if iters == 0 {
		iters = DefaultBisections
	}

	dlo, dhi := f(lo), f(hi)
	if r, done := endpointRoot(lo, dlo, hi, dhi); done {
		return r, nil
	}

	a, b := lo, hi
	for i := 0; i < iters; i++ {
		mid := 0.5 * (a + b)
		dm := f(mid)
		if dm == 0 {
			return Root{X: mid, Iterations: i + 1, Found: true}, nil
		}
		switch {
		case math.IsNaN(dm):
			// undefined at mid: shrink towards lo, dlo stays finite
			b = mid
		case (dm < 0) == (dlo < 0):
			a, dlo = mid, dm
		default:
			b = mid
		}
	}

	return Root{X: 0.5 * (a + b), Iterations: iters, Found: true}, nil
}

// Brent finds the root of f in [lo, hi] with the Brent–Dekker method:
// inverse quadratic interpolation or secant steps when they stay inside
// the bracket and shrink it fast enough, bisection otherwise.
//
// The search stops when the bracket half-width drops below
// 2·ε·|b| + Tolerance/2 or after Iterations (DefaultBrentIterations) steps.
//
// Errors: ErrNilFunc, ErrNonFinite, ErrBadInterval.
func Brent(f Func, lo, hi float64, opts ...Option) (Root, error) {
	if err := validate(f, lo, hi); err != nil {
		return Root{}, fmt.Errorf("Brent: %w", err)
	}
	o := gatherOptions(opts)
	maxIter := o.Iterations
	if maxIter == 0 {
		maxIter = DefaultBrentIterations
	}

	a, b := lo, hi
	fa, fb := f(a), f(b)
	if r, done := endpointRoot(a, fa, b, fb); done {
		return r, nil
	}

	c, fc := b, fb
	var d, e float64
	for i := 1; i <= maxIter; i++ {
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			// b and c on the same side: restore the bracket from a
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol1 := 2*machEps*math.Abs(b) + 0.5*o.Tolerance
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return Root{X: b, Iterations: i, Found: true}, nil
		}
		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			var p, q float64
			s := fb / fa
			if a == c {
				// secant
				p = 2 * xm * s
				q = 1 - s
			} else {
				// inverse quadratic interpolation
				qq := fa / fc
				r := fb / fc
				p = s * (2*xm*qq*(qq-r) - (b-a)*(r-1))
				q = (qq - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
	}

	return Root{X: b, Iterations: maxIter, Found: true}, nil
}

// validate enforces the shared preconditions of every search.
func validate(f Func, lo, hi float64) error {
	if f == nil {
		return ErrNilFunc
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return fmt.Errorf("[%v, %v]: %w", lo, hi, ErrNonFinite)
	}
	if lo >= hi {
		return fmt.Errorf("[%v, %v]: %w", lo, hi, ErrBadInterval)
	}

	return nil
}

// endpointRoot resolves the cases decided by the endpoint values alone:
// an exact zero at either end, or no sign change (absent). done is false
// when [lo, hi] is a proper bracket and iteration must proceed.
func endpointRoot(lo, dlo, hi, dhi float64) (r Root, done bool) {
	switch {
	case dlo == 0:
		return Root{X: lo, Found: true}, true
	case dhi == 0:
		return Root{X: hi, Found: true}, true
	case !brackets(dlo, dhi):
		return Root{}, true
	}

	return Root{}, false
}

// brackets reports a strict sign change between two finite, non-NaN values.
func brackets(d0, d1 float64) bool {
	if math.IsNaN(d0) || math.IsNaN(d1) {
		return false
	}

	return (d0 < 0 && d1 > 0) || (d0 > 0 && d1 < 0)
}

// secant returns the zero of the line through (x0, d0) and (x1, d1).
func secant(x0, d0, x1, d1 float64) float64 {
	return x0 + (0-d0)*(x1-x0)/(d1-d0)
}
