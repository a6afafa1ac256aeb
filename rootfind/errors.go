// SPDX-License-Identifier: MIT
// Package: fugacity/rootfind
//
// errors.go — sentinel errors. Only invalid input is an error; an interval
// without a sign change yields Root{Found: false}, nil.

package rootfind

import "errors"

var (
	// ErrBadInterval indicates lo >= hi.
	ErrBadInterval = errors.New("rootfind: interval must satisfy lo < hi")

	// ErrNonFinite indicates a NaN or ±Inf bound.
	ErrNonFinite = errors.New("rootfind: interval bounds must be finite")

	// ErrNilFunc indicates a nil Func.
	ErrNilFunc = errors.New("rootfind: function is nil")

	// ErrUnknownMethod indicates a Method outside the declared enum.
	ErrUnknownMethod = errors.New("rootfind: unknown method")
)
