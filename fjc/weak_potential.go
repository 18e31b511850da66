package fjc

import (
	"math"

	"github.com/katalvlaran/polychain/chain"
	"github.com/katalvlaran/polychain/numeric"
	"github.com/katalvlaran/polychain/physics"
)

// weakSeriesCutoff is the |η| below which the two hyperbolic differences
// used by WeakPotential switch to their Maclaurin series.
const weakSeriesCutoff = 0.1

// invSquareMinusCschSquare returns 1/η² − 1/sinh²η, which tends to 1/3.
func invSquareMinusCschSquare(eta float64) float64 {
	if math.Abs(eta) < weakSeriesCutoff {
		e2 := eta * eta
		return 1.0/3 + e2*(-1.0/15+e2*(2.0/189+e2*(-1.0/675+e2*2.0/10395)))
	}
	s := math.Sinh(eta)

	return 1/(eta*eta) - 1/(s*s)
}

// cothCschSquareMinusInvCube returns coth η/sinh²η − 1/η³, half the
// derivative of invSquareMinusCschSquare.
func cothCschSquareMinusInvCube(eta float64) float64 {
	if math.Abs(eta) < weakSeriesCutoff {
		e2 := eta * eta
		return eta * (-1.0/15 + e2*(4.0/189+e2*(-1.0/225+e2*8.0/10395)))
	}
	s := math.Sinh(eta)

	return 1/(s*s*math.Tanh(eta)) - 1/(eta*eta*eta)
}

// WeakPotential is the modified canonical ensemble: the chain end is pulled
// toward a point at distance v by a harmonic potential of stiffness k. In the
// weak-potential limit the chain feels the mean force k·v and the results
// are the isotensional ones corrected to first order in the nondimensional
// potential stiffness κ̃ = k(Nℓ)²/(kT).
//
// Dimensional methods take (v, k, T); nondimensional ones take ṽ = v/(Nℓ)
// and κ̃.
type WeakPotential struct {
	p *chain.Params
}

// Force returns the mean force k·v transmitted by the potential.
func (v WeakPotential) Force(potentialDistance, potentialStiffness float64) float64 {
	return potentialStiffness * potentialDistance
}

// NondimensionalForce returns η = κ̃·ṽ/N.
func (v WeakPotential) NondimensionalForce(nondimensionalPotentialDistance, nondimensionalPotentialStiffness float64) float64 {
	return nondimensionalPotentialStiffness * nondimensionalPotentialDistance / v.p.NumberOfLinksF64
}

// nondimensional converts (v, k, T) to (ṽ, κ̃).
func (v WeakPotential) nondimensional(potentialDistance, potentialStiffness, temperature float64) (float64, float64) {
	l := v.p.ContourLength
	return potentialDistance / l, potentialStiffness * l * l / physics.ThermalEnergy(temperature)
}

// EndToEndLength returns the mean end-to-end length in meters.
func (v WeakPotential) EndToEndLength(potentialDistance, potentialStiffness, temperature float64) float64 {
	d, k := v.nondimensional(potentialDistance, potentialStiffness, temperature)
	return v.p.LinkLength * v.NondimensionalEndToEndLength(d, k)
}

// EndToEndLengthPerLink returns the mean end-to-end length over N.
func (v WeakPotential) EndToEndLengthPerLink(potentialDistance, potentialStiffness, temperature float64) float64 {
	d, k := v.nondimensional(potentialDistance, potentialStiffness, temperature)
	return v.p.LinkLength * v.NondimensionalEndToEndLengthPerLink(d, k)
}

// NondimensionalEndToEndLength returns ⟨R⟩/ℓ.
func (v WeakPotential) NondimensionalEndToEndLength(nondimensionalPotentialDistance, nondimensionalPotentialStiffness float64) float64 {
	return v.p.NumberOfLinksF64 *
		v.NondimensionalEndToEndLengthPerLink(nondimensionalPotentialDistance, nondimensionalPotentialStiffness)
}

// NondimensionalEndToEndLengthPerLink returns
//
//	γ = L(η) − (κ̃/N)·[L(η)(1/η² − 1/sinh²η) + (coth η/sinh²η − 1/η³)/N].
func (v WeakPotential) NondimensionalEndToEndLengthPerLink(nondimensionalPotentialDistance, nondimensionalPotentialStiffness float64) float64 {
	n := v.p.NumberOfLinksF64
	eta := v.NondimensionalForce(nondimensionalPotentialDistance, nondimensionalPotentialStiffness)
	l := numeric.Langevin(numeric.Real(eta)).Value()

	return l - nondimensionalPotentialStiffness/n*
		(l*invSquareMinusCschSquare(eta)+cothCschSquareMinusInvCube(eta)/n)
}

// GibbsFreeEnergy returns the Gibbs free energy in joules.
func (v WeakPotential) GibbsFreeEnergy(potentialDistance, potentialStiffness, temperature float64) float64 {
	d, k := v.nondimensional(potentialDistance, potentialStiffness, temperature)
	return physics.ThermalEnergy(temperature) * v.NondimensionalGibbsFreeEnergy(d, k, temperature)
}

// GibbsFreeEnergyPerLink returns the Gibbs free energy over N in joules.
func (v WeakPotential) GibbsFreeEnergyPerLink(potentialDistance, potentialStiffness, temperature float64) float64 {
	d, k := v.nondimensional(potentialDistance, potentialStiffness, temperature)
	return physics.ThermalEnergy(temperature) * v.NondimensionalGibbsFreeEnergyPerLink(d, k, temperature)
}

// RelativeGibbsFreeEnergy returns G(v) − G(0) in joules at fixed k.
func (v WeakPotential) RelativeGibbsFreeEnergy(potentialDistance, potentialStiffness, temperature float64) float64 {
	d, k := v.nondimensional(potentialDistance, potentialStiffness, temperature)
	return physics.ThermalEnergy(temperature) * v.NondimensionalRelativeGibbsFreeEnergy(d, k)
}

// RelativeGibbsFreeEnergyPerLink returns (G(v) − G(0))/N in joules at fixed k.
func (v WeakPotential) RelativeGibbsFreeEnergyPerLink(potentialDistance, potentialStiffness, temperature float64) float64 {
	d, k := v.nondimensional(potentialDistance, potentialStiffness, temperature)
	return physics.ThermalEnergy(temperature) * v.NondimensionalRelativeGibbsFreeEnergyPerLink(d, k)
}

// NondimensionalGibbsFreeEnergy returns G/(kT).
func (v WeakPotential) NondimensionalGibbsFreeEnergy(nondimensionalPotentialDistance, nondimensionalPotentialStiffness, temperature float64) float64 {
	return v.NondimensionalRelativeGibbsFreeEnergy(nondimensionalPotentialDistance, nondimensionalPotentialStiffness) +
		v.reference(nondimensionalPotentialStiffness) -
		v.p.NumberOfLinksF64*v.p.LnHingeFactor(temperature)
}

// NondimensionalGibbsFreeEnergyPerLink returns G/(NkT).
func (v WeakPotential) NondimensionalGibbsFreeEnergyPerLink(nondimensionalPotentialDistance, nondimensionalPotentialStiffness, temperature float64) float64 {
	return v.NondimensionalGibbsFreeEnergy(nondimensionalPotentialDistance, nondimensionalPotentialStiffness, temperature) /
		v.p.NumberOfLinksF64
}

// NondimensionalRelativeGibbsFreeEnergy returns (G(ṽ) − G(0))/(kT); exactly zero at ṽ = 0.
func (v WeakPotential) NondimensionalRelativeGibbsFreeEnergy(nondimensionalPotentialDistance, nondimensionalPotentialStiffness float64) float64 {
	return v.relative(v.NondimensionalForce(nondimensionalPotentialDistance, nondimensionalPotentialStiffness),
		nondimensionalPotentialStiffness) - v.reference(nondimensionalPotentialStiffness)
}

// NondimensionalRelativeGibbsFreeEnergyPerLink returns (G(ṽ) − G(0))/(NkT).
func (v WeakPotential) NondimensionalRelativeGibbsFreeEnergyPerLink(nondimensionalPotentialDistance, nondimensionalPotentialStiffness float64) float64 {
	return v.NondimensionalRelativeGibbsFreeEnergy(nondimensionalPotentialDistance, nondimensionalPotentialStiffness) /
		v.p.NumberOfLinksF64
}

// relative returns −N ln(sinh η/η) + ½κ̃[L(η)² + (1/η² − 1/sinh²η)/N], the
// hinge-free part of G/(kT).
func (v WeakPotential) relative(eta, stiffness float64) float64 {
	n := v.p.NumberOfLinksF64
	x := numeric.Real(eta)
	l := numeric.Langevin(x).Value()

	return -n*numeric.LnSinhc(x).Value() + 0.5*stiffness*(l*l+invSquareMinusCschSquare(eta)/n)
}

// reference is relative at η = 0.
func (v WeakPotential) reference(stiffness float64) float64 {
	return v.relative(0, stiffness)
}
