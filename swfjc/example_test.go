package swfjc_test

import (
	"fmt"

	"github.com/katalvlaran/polychain/swfjc"
)

// ExampleSWFJC_Isotensional shows links stretching past their rest length
// into the well at large force.
func ExampleSWFJC_Isotensional() {
	chain, err := swfjc.New(8, 1, 1, 0.5)
	if err != nil {
		fmt.Println(err)
		return
	}
	iso := chain.Isotensional()
	fmt.Printf("alpha=%.1f\n", chain.NondimensionalWellParameter())
	fmt.Printf("gamma(3)=%.6f\n", iso.NondimensionalEndToEndLengthPerLink(3))
	fmt.Printf("gamma(40)=%.6f\n", iso.NondimensionalEndToEndLengthPerLink(40))
	// Output:
	// alpha=1.5
	// gamma(3)=0.992472
	// gamma(40)=1.450424
}
