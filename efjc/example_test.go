package efjc_test

import (
	"fmt"

	"github.com/katalvlaran/polychain/efjc"
	"github.com/katalvlaran/polychain/physics"
)

// ExampleEFJC_Isotensional compares the exact extension with both
// large-stiffness approximations at κ = 50.
func ExampleEFJC_Isotensional() {
	const temperature = 300.0
	chain, err := efjc.New(8, 1, 1, 50*physics.ThermalEnergy(temperature))
	if err != nil {
		fmt.Println(err)
		return
	}
	iso := chain.Isotensional()
	fmt.Printf("exact       %.6f\n", iso.NondimensionalEndToEndLengthPerLink(1, temperature))
	fmt.Printf("alternative %.6f\n", iso.Asymptotic().Alternative().NondimensionalEndToEndLengthPerLink(1, temperature))
	fmt.Printf("reduced     %.6f\n", iso.Asymptotic().Reduced().NondimensionalEndToEndLengthPerLink(1, temperature))
	// Output:
	// exact       0.344513
	// alternative 0.344815
	// reduced     0.333035
}
