// SPDX-License-Identifier: MIT
// Package: fugacity/equilibrium
//
// types.go — scan modes, units, PhysicalState and ScanRange.

package equilibrium

import (
	"fmt"
	"math"
)

// ScanMode selects which physical variable is scanned. The other one is
// fixed by the caller through PhysicalState.
type ScanMode int

const (
	// TemperatureScan scans T (K) at a fixed pressure.
	TemperatureScan ScanMode = iota

	// PressureScan scans P at a fixed temperature.
	PressureScan
)

// String implements fmt.Stringer.
func (m ScanMode) String() string {
	switch m {
	case TemperatureScan:
		return "temperature"
	case PressureScan:
		return "pressure"
	default:
		return fmt.Sprintf("ScanMode(%d)", int(m))
	}
}

// Valid reports whether m is one of the declared modes.
func (m ScanMode) Valid() bool {
	return m == TemperatureScan || m == PressureScan
}

// ParseScanMode accepts "temperature", "pressure" and their initials.
func ParseScanMode(s string) (ScanMode, error) {
	switch s {
	case "temperature", "t", "T":
		return TemperatureScan, nil
	case "pressure", "p", "P":
		return PressureScan, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMode)
	}
}

// Unit names the pressure unit of a fugacity axis.
type Unit int

const (
	// Bar is the pressure unit used by the temperature-scan plots.
	Bar Unit = iota

	// MPa is the pressure unit used by the scaled pressure-scan plots.
	MPa
)

// String implements fmt.Stringer.
func (u Unit) String() string {
	switch u {
	case Bar:
		return "bar"
	case MPa:
		return "MPa"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// VaporModel selects the vapor-phase non-ideality model.
type VaporModel int

const (
	// Ideal vapor: fugacity coefficient 1, f_vap = P.
	Ideal VaporModel = iota

	// RealGas vapor: f_vap = P − d·(P − ln(P + 1)).
	RealGas
)

// String implements fmt.Stringer.
func (v VaporModel) String() string {
	if v == RealGas {
		return "real"
	}

	return "ideal"
}

// PhysicalState is the immutable input of one recomputation.
//
// Exactly one of Temperature/Pressure is meaningful as the fixed parameter
// for a given ScanMode; the other is ignored.
type PhysicalState struct {
	Temperature float64 `json:"temperature"` // K, > 0
	Pressure    float64 `json:"pressure"`    // >= 0, unit of the active pressure axis
	RealGas     bool    `json:"real_gas"`    // enables the real-gas vapor correction
}

// Vapor returns the VaporModel implied by the RealGas flag.
func (s PhysicalState) Vapor() VaporModel {
	if s.RealGas {
		return RealGas
	}

	return Ideal
}

// Validate checks the fixed parameter for the given scan mode.
func (s PhysicalState) Validate(mode ScanMode) error {
	switch mode {
	case TemperatureScan:
		if !isFinite(s.Pressure) || s.Pressure < 0 {
			return fmt.Errorf("fixed pressure %v: %w", s.Pressure, ErrBadPressure)
		}
	case PressureScan:
		if !isFinite(s.Temperature) || s.Temperature <= 0 {
			return fmt.Errorf("fixed temperature %v: %w", s.Temperature, ErrBadTemperature)
		}
	default:
		return fmt.Errorf("%v: %w", mode, ErrUnknownMode)
	}

	return nil
}

// ScanRange is a validated closed interval [Lo, Hi] of the scanned variable.
// Build it with NewScanRange so the domain preconditions hold.
type ScanRange struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// NewScanRange validates and clamps [lo, hi] for the scan mode.
//
// Pressure ranges are clamped to lo >= 0, which keeps the real-gas
// logarithm ln(P+1) well defined. Temperature ranges require lo > 0.
func NewScanRange(mode ScanMode, lo, hi float64) (ScanRange, error) {
	if !isFinite(lo) || !isFinite(hi) {
		return ScanRange{}, fmt.Errorf("[%v, %v]: %w", lo, hi, ErrBadRange)
	}
	switch mode {
	case TemperatureScan:
		if lo <= 0 {
			return ScanRange{}, fmt.Errorf("lower bound %v: %w", lo, ErrBadTemperature)
		}
	case PressureScan:
		lo = math.Max(lo, 0)
	default:
		return ScanRange{}, fmt.Errorf("%v: %w", mode, ErrUnknownMode)
	}
	if lo >= hi {
		return ScanRange{}, fmt.Errorf("[%v, %v]: %w", lo, hi, ErrBadRange)
	}

	return ScanRange{Lo: lo, Hi: hi}, nil
}

// Width returns Hi − Lo.
func (r ScanRange) Width() float64 { return r.Hi - r.Lo }

// Contains reports whether x lies in [Lo, Hi].
func (r ScanRange) Contains(x float64) bool { return x >= r.Lo && x <= r.Hi }

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
