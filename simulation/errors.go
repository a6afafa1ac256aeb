package simulation

import "errors"

var (
	// ErrBadPreset indicates a preset field that a Recompute cannot use.
	ErrBadPreset = errors.New("simulation: invalid preset")

	// ErrUnknownPreset indicates a name Lookup does not know.
	ErrUnknownPreset = errors.New("simulation: unknown preset")

	// ErrBadSweep indicates a sweep with fewer than two control values.
	ErrBadSweep = errors.New("simulation: sweep needs at least 2 points")
)
