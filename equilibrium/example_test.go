package equilibrium_test

import (
	"fmt"

	"github.com/katalvlaran/fugacity/equilibrium"
)

// ExampleCorrelation_Clausius evaluates the correlation at its reference
// point and inverts it again.
func ExampleCorrelation_Clausius() {
	c := equilibrium.BarCorrelation
	p := c.Clausius(373)
	fmt.Printf("p(373 K)=%.5f bar\n", p)
	fmt.Printf("T(p)=%.3f K\n", c.InvClausius(p))
	// Output:
	// p(373 K)=1.01325 bar
	// T(p)=373.000 K
}

// ExampleModel_VaporFugacity compares the ideal and real-gas vapor branches.
func ExampleModel_VaporFugacity() {
	ideal, _ := equilibrium.NewModel(equilibrium.PressureScan,
		equilibrium.PhysicalState{Temperature: 475})
	nonIdeal, _ := equilibrium.NewModel(equilibrium.PressureScan,
		equilibrium.PhysicalState{Temperature: 475, RealGas: true})

	fmt.Printf("ideal=%.4f real=%.4f\n", ideal.VaporFugacity(2), nonIdeal.VaporFugacity(2))
	// Output:
	// ideal=2.0000 real=1.2789
}
