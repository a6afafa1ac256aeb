// SPDX-License-Identifier: MIT
// Package: fugacity/rootfind
//
// options.go — functional options shared by all search methods.
//
// Contract:
//   • Each method reads only the knobs it needs; the others are ignored.
//   • Constructors panic on meaningless values (programmer error).
//   • Defaults are named constants; no globals are mutated.

package rootfind

import "math"

const (
	// DefaultScanSteps divides [lo, hi] into this many steps when no
	// explicit step is given.
	DefaultScanSteps = 1000

	// MaxScanSteps caps the number of LinearScan steps.
	MaxScanSteps = 10000

	// DefaultBisections is the fixed iteration count for Bisection.
	DefaultBisections = 30

	// DefaultTolerance is the absolute x tolerance for BrentMethod.
	DefaultTolerance = 1e-12

	// DefaultBrentIterations caps BrentMethod iterations.
	DefaultBrentIterations = 100
)

const (
	panicStep       = "rootfind: WithStep: step must be finite and > 0"
	panicMaxSteps   = "rootfind: WithMaxSteps: n must be in [1, MaxScanSteps]"
	panicIterations = "rootfind: WithIterations: n must be >= 1"
	panicTolerance  = "rootfind: WithTolerance: tol must be finite and > 0"
)

// Option customizes a search.
type Option func(*Options)

// Options holds the resolved search knobs. Zero Step means "derive from
// the interval": (hi − lo) / DefaultScanSteps.
type Options struct {
	Step       float64
	MaxSteps   int
	Iterations int
	Tolerance  float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Step:       0,
		MaxSteps:   MaxScanSteps,
		Iterations: 0,
		Tolerance:  DefaultTolerance,
	}
}

// WithStep sets the LinearScan grid spacing.
func WithStep(h float64) Option {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		panic(panicStep)
	}
	return func(o *Options) {
		o.Step = h
	}
}

// WithMaxSteps caps LinearScan at n steps (n <= MaxScanSteps).
func WithMaxSteps(n int) Option {
	if n < 1 || n > MaxScanSteps {
		panic(panicMaxSteps)
	}
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithIterations sets the Bisection iteration count or the BrentMethod cap.
func WithIterations(n int) Option {
	if n < 1 {
		panic(panicIterations)
	}
	return func(o *Options) {
		o.Iterations = n
	}
}

// WithTolerance sets the BrentMethod absolute tolerance on x.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicTolerance)
	}
	return func(o *Options) {
		o.Tolerance = tol
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
