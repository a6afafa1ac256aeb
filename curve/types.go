package curve

import "fmt"

// Branch names the phase a sample belongs to.
type Branch int

const (
	// Liquid marks the liquid branch.
	Liquid Branch = iota

	// Vapor marks the vapor branch.
	Vapor
)

// String implements fmt.Stringer.
func (b Branch) String() string {
	switch b {
	case Liquid:
		return "liquid"
	case Vapor:
		return "vapor"
	default:
		return fmt.Sprintf("Branch(%d)", int(b))
	}
}

// Other returns the opposite branch.
func (b Branch) Other() Branch {
	if b == Liquid {
		return Vapor
	}

	return Liquid
}

// Sample is one grid point of a Curve.
type Sample struct {
	X              float64 `json:"x"`
	FugacityLiquid float64 `json:"fugacity_liquid"`
	FugacityVapor  float64 `json:"fugacity_vapor"`
	Branch         Branch  `json:"branch"`
}

// Fugacity returns the value of the active branch.
func (s Sample) Fugacity() float64 {
	if s.Branch == Liquid {
		return s.FugacityLiquid
	}

	return s.FugacityVapor
}

// Curve is an ordered sequence of samples with ascending X.
type Curve []Sample

// X returns the grid.
func (c Curve) X() []float64 {
	out := make([]float64, len(c))
	for i, s := range c {
		out[i] = s.X
	}

	return out
}

// Liquid returns the liquid fugacity over the whole grid.
func (c Curve) Liquid() []float64 {
	out := make([]float64, len(c))
	for i, s := range c {
		out[i] = s.FugacityLiquid
	}

	return out
}

// Vapor returns the vapor fugacity over the whole grid.
func (c Curve) Vapor() []float64 {
	out := make([]float64, len(c))
	for i, s := range c {
		out[i] = s.FugacityVapor
	}

	return out
}

// Active returns the fugacity of the active branch at every sample.
func (c Curve) Active() []float64 {
	out := make([]float64, len(c))
	for i, s := range c {
		out[i] = s.Fugacity()
	}

	return out
}

// Boundary returns the index of the first sample whose branch differs from
// the first sample's, or -1 when the whole curve is a single branch.
func (c Curve) Boundary() int {
	for i := 1; i < len(c); i++ {
		if c[i].Branch != c[0].Branch {
			return i
		}
	}

	return -1
}

// MarshalText encodes the branch by name, so JSON output reads "liquid"
// or "vapor" instead of an integer.
func (b Branch) MarshalText() ([]byte, error) {
	if b != Liquid && b != Vapor {
		return nil, fmt.Errorf("curve: cannot marshal %v", b)
	}

	return []byte(b.String()), nil
}
