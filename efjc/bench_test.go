package efjc_test

import (
	"testing"

	"github.com/katalvlaran/polychain/efjc"
	"github.com/katalvlaran/polychain/physics"
)

func BenchmarkExact_EndToEndLengthPerLink(b *testing.B) {
	chain, _ := efjc.New(8, 1, 1, 100*physics.ThermalEnergy(300))
	iso := chain.Isotensional()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = iso.NondimensionalEndToEndLengthPerLink(2.5, 300)
	}
}

func BenchmarkExact_SmallForce(b *testing.B) {
	chain, _ := efjc.New(8, 1, 1, 100*physics.ThermalEnergy(300))
	iso := chain.Isotensional()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = iso.NondimensionalEndToEndLengthPerLink(0.01, 300)
	}
}
