package curve

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/fugacity/equilibrium"
	"github.com/katalvlaran/fugacity/saturation"
)

// DefaultSamples is the grid size used when WithSamples is not given.
const DefaultSamples = 100

// MinSamples is the smallest grid that still includes both range ends.
const MinSamples = 2

var (
	// ErrBadRange indicates an unvalidated or empty scan range.
	ErrBadRange = errors.New("curve: scan range must satisfy lo < hi")
)

const panicSamples = "curve: WithSamples: n must be >= MinSamples"

// Option customizes Generate.
type Option func(*config)

type config struct {
	n int
}

// WithSamples sets the grid size. Panics if n < MinSamples.
func WithSamples(n int) Option {
	if n < MinSamples {
		panic(panicSamples)
	}
	return func(c *config) {
		c.n = n
	}
}

// Generate evaluates m on an evenly spaced grid of r and tags each point with
// its stable branch relative to sat. A nil sat means the system is
// single-phase over r.
//
// Complexity: O(N) time and memory.
func Generate(m equilibrium.Model, r equilibrium.ScanRange, sat *saturation.Point, opts ...Option) (Curve, error) {
	if !(r.Lo < r.Hi) {
		return nil, fmt.Errorf("Generate: [%v, %v]: %w", r.Lo, r.Hi, ErrBadRange)
	}
	cfg := config{n: DefaultSamples}
	for _, opt := range opts {
		opt(&cfg)
	}

	xs := floats.Span(make([]float64, cfg.n), r.Lo, r.Hi)
	low := LowSide(m, r)
	out := make(Curve, cfg.n)
	for i, x := range xs {
		b := low
		if sat != nil && x >= sat.Location {
			b = low.Other()
		}
		out[i] = Sample{
			X:              x,
			FugacityLiquid: m.LiquidFugacity(x),
			FugacityVapor:  m.VaporFugacity(x),
			Branch:         b,
		}
	}

	return out, nil
}

// LowSide returns the branch that is stable at the low end of r: the phase
// with the lower fugacity at r.Lo. On an exact tie at r.Lo the opposite of
// the phase stable at r.Hi is returned.
func LowSide(m equilibrium.Model, r equilibrium.ScanRange) Branch {
	if b, ok := stableAt(m, r.Lo); ok {
		return b
	}
	if b, ok := stableAt(m, r.Hi); ok {
		return b.Other()
	}

	return Liquid
}

// stableAt reports the lower-fugacity phase at x; ok is false on a tie.
func stableAt(m equilibrium.Model, x float64) (Branch, bool) {
	fl, fv := m.LiquidFugacity(x), m.VaporFugacity(x)
	switch {
	case fl < fv:
		return Liquid, true
	case fv < fl:
		return Vapor, true
	default:
		return Liquid, false
	}
}
