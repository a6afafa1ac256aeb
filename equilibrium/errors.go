// SPDX-License-Identifier: MIT
// Package: fugacity/equilibrium
//
// errors.go — sentinel errors for the equilibrium package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context is attached with fmt.Errorf("...: %w", ErrX) at the call site.
//   • Option constructors panic on nonsense values; constructors return errors.

package equilibrium

import "errors"

var (
	// ErrBadTemperature indicates a temperature that is not finite or not > 0 K.
	ErrBadTemperature = errors.New("equilibrium: temperature must be finite and > 0")

	// ErrBadPressure indicates a pressure that is not finite or is negative.
	ErrBadPressure = errors.New("equilibrium: pressure must be finite and >= 0")

	// ErrBadRange indicates a scan range with lo >= hi or non-finite bounds.
	ErrBadRange = errors.New("equilibrium: invalid scan range")

	// ErrUnknownMode indicates a ScanMode outside the declared enum.
	ErrUnknownMode = errors.New("equilibrium: unknown scan mode")
)
