package fjc_test

import (
	"testing"

	"github.com/katalvlaran/polychain/physics"
	"github.com/katalvlaran/polychain/sampling"
	"github.com/katalvlaran/polychain/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeakPotential_Force(t *testing.T) {
	wp := mustNew(t, 10, 1, 1).WeakPotential()
	assert.Equal(t, 6.0, wp.Force(2, 3))
	assert.InDelta(t, 5.0, wp.NondimensionalForce(0.5, 100), 1e-14)
}

func TestWeakPotential_RelativeZero(t *testing.T) {
	wp := mustNew(t, 10, 1, 1).WeakPotential()
	for _, k := range []float64{1e-2, 1, 100} {
		assert.Equal(t, 0.0, wp.NondimensionalRelativeGibbsFreeEnergy(0, k))
		assert.Equal(t, 0.0, wp.NondimensionalEndToEndLengthPerLink(0, k))
	}
}

func TestWeakPotential_Consistency(t *testing.T) {
	p := sampling.DefaultParameters()
	for _, d := range sampling.NewSampler(p).Draws() {
		wp := mustNew(t, d.NumberOfLinks, d.LinkLength, d.HingeMass).WeakPotential()
		vt, kt := d.NondimensionalPotentialDistance, d.NondimensionalPotentialStiffness
		v, k, T := d.PotentialDistance(), d.PotentialStiffness(), d.Temperature
		kT := physics.ThermalEnergy(T)
		n := float64(d.NumberOfLinks)

		assert.InEpsilon(t, wp.NondimensionalForce(vt, kt), wp.Force(v, k)*d.LinkLength/kT, p.RelTol)
		assert.InEpsilon(t, wp.NondimensionalEndToEndLength(vt, kt), wp.EndToEndLength(v, k, T)/d.LinkLength, p.RelTol)
		assert.InEpsilon(t, wp.NondimensionalEndToEndLengthPerLink(vt, kt), wp.EndToEndLengthPerLink(v, k, T)/d.LinkLength, p.RelTol)
		assert.InEpsilon(t, n*wp.NondimensionalEndToEndLengthPerLink(vt, kt), wp.NondimensionalEndToEndLength(vt, kt), p.RelTol)

		assert.InEpsilon(t, wp.NondimensionalGibbsFreeEnergy(vt, kt, T), wp.GibbsFreeEnergy(v, k, T)/kT, p.RelTol)
		assert.InEpsilon(t, wp.NondimensionalGibbsFreeEnergyPerLink(vt, kt, T), wp.GibbsFreeEnergyPerLink(v, k, T)/kT, p.RelTol)
		assert.InEpsilon(t, wp.NondimensionalRelativeGibbsFreeEnergy(vt, kt), wp.RelativeGibbsFreeEnergy(v, k, T)/kT, p.RelTol)
		assert.InEpsilon(t, wp.NondimensionalRelativeGibbsFreeEnergyPerLink(vt, kt), wp.RelativeGibbsFreeEnergyPerLink(v, k, T)/kT, p.RelTol)
		assert.InEpsilon(t, n*wp.NondimensionalRelativeGibbsFreeEnergyPerLink(vt, kt), wp.NondimensionalRelativeGibbsFreeEnergy(vt, kt), p.RelTol)
		assert.InEpsilon(t,
			wp.NondimensionalGibbsFreeEnergy(vt, kt, T)-wp.NondimensionalGibbsFreeEnergy(0, kt, T),
			wp.NondimensionalRelativeGibbsFreeEnergy(vt, kt), p.RelTol)
	}
}

// TestWeakPotential_Derivative checks γ = −(1/κ̃)·∂G̃/∂ṽ by central differences.
func TestWeakPotential_Derivative(t *testing.T) {
	wp := mustNew(t, 12, 1, 1).WeakPotential()
	const h = 1e-6
	for _, k := range []float64{0.5, 5, 50} {
		for _, vt := range []float64{0.05, 0.4, 1.2} {
			dG := (wp.NondimensionalRelativeGibbsFreeEnergy(vt+h, k) - wp.NondimensionalRelativeGibbsFreeEnergy(vt-h, k)) / (2 * h)
			assert.InEpsilonf(t, wp.NondimensionalEndToEndLength(vt, k)/12, -dG/k, 1e-5, "k=%g v=%g", k, vt)
		}
	}
}

// TestWeakPotential_IsotensionalLimit checks the correction to the
// isotensional extension vanishes linearly in the potential stiffness at
// fixed mean force.
func TestWeakPotential_IsotensionalLimit(t *testing.T) {
	p := sampling.DefaultParameters()
	c := mustNew(t, 15, 1, 1)
	wp, iso := c.WeakPotential(), c.Isotensional()
	ks, err := sweep.Logspace(1e-3, 1e-1, 6)
	require.NoError(t, err)
	for _, eta := range []float64{0.05, 0.5, 2, 8} {
		diffs := make([]float64, len(ks))
		for i, k := range ks {
			vt := eta * 15 / k
			diffs[i] = wp.NondimensionalEndToEndLengthPerLink(vt, k) - iso.NondimensionalEndToEndLengthPerLink(eta)
		}
		slope, err := sweep.LogLogSlope(ks, diffs)
		require.NoError(t, err)
		assert.InDeltaf(t, 1.0, slope, p.LogLogTol, "eta=%g", eta)
	}
}
