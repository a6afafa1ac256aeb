package saturation

import "errors"

var (
	// ErrBadRange indicates an unvalidated or empty scan range.
	ErrBadRange = errors.New("saturation: scan range must satisfy lo < hi")

	// ErrUnknownMethod indicates a Method outside the declared enum.
	ErrUnknownMethod = errors.New("saturation: unknown method")
)
