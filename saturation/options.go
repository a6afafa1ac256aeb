package saturation

import (
	"fmt"

	"github.com/katalvlaran/fugacity/rootfind"
)

// Method selects how Solve locates the crossing.
type Method int

const (
	// Scan walks a fixed grid and refines the first sign change linearly.
	Scan Method = iota

	// Bisection halves a verified bracket a fixed number of times.
	Bisection

	// Brent uses the Brent–Dekker method.
	Brent

	// Analytic inverts the correlation where a closed form exists and
	// falls back to Brent otherwise (real-gas pressure scan).
	Analytic
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case Scan:
		return "scan"
	case Bisection:
		return "bisection"
	case Brent:
		return "brent"
	case Analytic:
		return "analytic"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a method name to a Method.
func ParseMethod(s string) (Method, error) {
	if s == "analytic" {
		return Analytic, nil
	}
	rm, err := rootfind.ParseMethod(s)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
	}

	return fromRootfind(rm), nil
}

func fromRootfind(rm rootfind.Method) Method {
	switch rm {
	case rootfind.Bisection:
		return Bisection
	case rootfind.BrentMethod:
		return Brent
	default:
		return Scan
	}
}

// search maps a numeric method onto rootfind. ok is false for Analytic
// and for unknown values.
func (m Method) search() (rootfind.Method, bool) {
	switch m {
	case Scan:
		return rootfind.LinearScan, true
	case Bisection:
		return rootfind.Bisection, true
	case Brent:
		return rootfind.BrentMethod, true
	default:
		return 0, false
	}
}

// Option customizes Solve.
type Option func(*config)

type config struct {
	method Method
	search []rootfind.Option
}

// WithMethod selects the search method. Default is Scan.
func WithMethod(m Method) Option {
	return func(c *config) {
		c.method = m
	}
}

// WithStep sets the Scan grid spacing. See rootfind.WithStep.
func WithStep(h float64) Option {
	opt := rootfind.WithStep(h)
	return func(c *config) {
		c.search = append(c.search, opt)
	}
}

// WithIterations sets the Bisection count or the Brent cap.
// See rootfind.WithIterations.
func WithIterations(n int) Option {
	opt := rootfind.WithIterations(n)
	return func(c *config) {
		c.search = append(c.search, opt)
	}
}

// WithTolerance sets the Brent tolerance. See rootfind.WithTolerance.
func WithTolerance(tol float64) Option {
	opt := rootfind.WithTolerance(tol)
	return func(c *config) {
		c.search = append(c.search, opt)
	}
}

func gatherOptions(opts []Option) config {
	c := config{method: Scan}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
