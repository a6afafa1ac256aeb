// SPDX-License-Identifier: MIT
// Package: fugacity/equilibrium
//
// model.go — liquid and vapor fugacity of one fixed PhysicalState.

package equilibrium

import (
	"fmt"
	"math"
)

// Model closes the fugacity functions over a fixed PhysicalState.
//
// The scanned variable x is a temperature (K) under TemperatureScan and a
// pressure under PressureScan. A Model is a small value; copy it freely.
type Model struct {
	mode  ScanMode
	state PhysicalState
	cfg   modelConfig
}

// NewModel validates state for mode and applies opts.
//
// Errors:
//   - ErrUnknownMode: mode is not TemperatureScan or PressureScan.
//   - ErrBadPressure: TemperatureScan with a negative or non-finite pressure.
//   - ErrBadTemperature: PressureScan with a non-positive or non-finite temperature.
func NewModel(mode ScanMode, state PhysicalState, opts ...Option) (Model, error) {
	if err := state.Validate(mode); err != nil {
		return Model{}, fmt.Errorf("NewModel: %w", err)
	}
	cfg := defaultModelConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return Model{mode: mode, state: state, cfg: cfg}, nil
}

// Mode returns the scan mode.
func (m Model) Mode() ScanMode { return m.mode }

// State returns the fixed physical state.
func (m Model) State() PhysicalState { return m.state }

// Correlation returns the liquid correlation in use.
func (m Model) Correlation() Correlation { return m.cfg.corr }

// LiquidScale returns the unit factor applied to the liquid fugacity.
func (m Model) LiquidScale() float64 { return m.cfg.liquidScale }

// LiquidFugacity returns f_liq at scanned value x, in the axis unit.
// Under PressureScan x is ignored: the liquid depends on T only.
func (m Model) LiquidFugacity(x float64) float64 {
	t := x
	if m.mode == PressureScan {
		t = m.state.Temperature
	}

	return m.cfg.liquidScale * m.cfg.corr.Clausius(t)
}

// VaporFugacity returns f_vap at scanned value x.
// Under TemperatureScan x is ignored: the vapor depends on P only.
func (m Model) VaporFugacity(x float64) float64 {
	p := x
	if m.mode == TemperatureScan {
		p = m.state.Pressure
	}

	return m.vapor(p)
}

// Difference returns f_liq(x) − f_vap(x). Its root is the saturation point.
func (m Model) Difference(x float64) float64 {
	return m.LiquidFugacity(x) - m.VaporFugacity(x)
}

func (m Model) vapor(p float64) float64 {
	if !m.state.RealGas {
		return p
	}

	return RealGasFugacity(p, m.cfg.deviation)
}

// RealGasFugacity evaluates P − d·(P − ln(P + 1)). Requires P > −1.
// For P >= 0 and d ∈ (0, 1) the result is <= P with equality only at 0.
func RealGasFugacity(p, d float64) float64 {
	return p - d*(p-math.Log1p(p))
}
