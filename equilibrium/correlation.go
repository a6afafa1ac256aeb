// SPDX-License-Identifier: MIT
// Package: fugacity/equilibrium
//
// correlation.go — Clausius–Clapeyron correlation and its inverse.

package equilibrium

import "math"

// Reference constants of the Clausius–Clapeyron correlation.
const (
	// ReferencePressureBar is A for the bar-based correlation (1 atm).
	ReferencePressureBar = 1.01325

	// ReferencePressureScaled is A for the correlation expressed in
	// one tenth of a bar-sized unit; pair it with a ×10 liquid scale.
	ReferencePressureScaled = 0.101325

	// ReferenceSlope is B = ΔH_vap / R in K.
	ReferenceSlope = 5268.134

	// ReferenceTemperature is T_ref in K, where Clausius(T_ref) = A.
	ReferenceTemperature = 373.0
)

// Correlation is a Clausius–Clapeyron vapor-pressure correlation
//
//	p(T) = A · exp(−B · (1/T − 1/TRef))
type Correlation struct {
	A    float64 // reference pressure, p(TRef)
	B    float64 // slope, K
	TRef float64 // reference temperature, K
}

var (
	// BarCorrelation returns bar, p(373 K) = 1.01325.
	BarCorrelation = Correlation{A: ReferencePressureBar, B: ReferenceSlope, TRef: ReferenceTemperature}

	// ScaledCorrelation returns a tenth of BarCorrelation.
	ScaledCorrelation = Correlation{A: ReferencePressureScaled, B: ReferenceSlope, TRef: ReferenceTemperature}
)

// Clausius evaluates the saturation pressure at temperature t (K).
// It is strictly increasing for t > 0.
func (c Correlation) Clausius(t float64) float64 {
	return c.A * math.Exp(-c.B*(1/t-1/c.TRef))
}

// InvClausius returns the temperature whose saturation pressure is p.
// Returns NaN for p <= 0 where the logarithm is undefined.
func (c Correlation) InvClausius(p float64) float64 {
	if p <= 0 {
		return math.NaN()
	}

	return 1 / (math.Log(p/c.A)/-c.B + 1/c.TRef)
}
