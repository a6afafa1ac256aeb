// SPDX-License-Identifier: MIT
// Package: fugacity/equilibrium
//
// options.go — functional options for NewModel.
//
// Contract:
//   • Options mutate a private config; later options override earlier ones.
//   • Constructors panic on meaningless values (programmer error).
//   • Defaults: BarCorrelation, liquid scale 1, real-gas deviation 0.8.

package equilibrium

import "math"

// DefaultDeviation is the real-gas deviation coefficient d in
// f_vap = P − d·(P − ln(P + 1)).
const DefaultDeviation = 0.8

// DefaultLiquidScale leaves the correlation output unconverted.
const DefaultLiquidScale = 1.0

const (
	panicLiquidScale = "equilibrium: WithLiquidScale: scale must be finite and > 0"
	panicDeviation   = "equilibrium: WithDeviation: d must be in [0, 1)"
	panicCorrelation = "equilibrium: WithCorrelation: A, B, TRef must be finite and > 0"
)

// Option customizes a Model.
type Option func(*modelConfig)

type modelConfig struct {
	corr        Correlation
	liquidScale float64
	deviation   float64
}

func defaultModelConfig() modelConfig {
	return modelConfig{
		corr:        BarCorrelation,
		liquidScale: DefaultLiquidScale,
		deviation:   DefaultDeviation,
	}
}

// WithCorrelation replaces the Clausius–Clapeyron constants.
// Panics if any constant is non-finite or <= 0.
func WithCorrelation(c Correlation) Option {
	for _, v := range []float64{c.A, c.B, c.TRef} {
		if !isFinite(v) || v <= 0 {
			panic(panicCorrelation)
		}
	}
	return func(cfg *modelConfig) {
		cfg.corr = c
	}
}

// WithLiquidScale multiplies the liquid fugacity by k, converting the
// correlation's unit into the unit of the active pressure axis.
// Panics if k is non-finite or <= 0.
func WithLiquidScale(k float64) Option {
	if !isFinite(k) || k <= 0 {
		panic(panicLiquidScale)
	}
	return func(cfg *modelConfig) {
		cfg.liquidScale = k
	}
}

// WithDeviation sets the real-gas deviation coefficient d ∈ [0, 1).
// d = 0 reproduces the ideal gas.
func WithDeviation(d float64) Option {
	if math.IsNaN(d) || d < 0 || d >= 1 {
		panic(panicDeviation)
	}
	return func(cfg *modelConfig) {
		cfg.deviation = d
	}
}
