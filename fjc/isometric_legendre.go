package fjc

import (
	"github.com/katalvlaran/polychain/chain"
	"github.com/katalvlaran/polychain/numeric"
	"github.com/katalvlaran/polychain/physics"
)

// NondimensionalForce returns η(γ) = L⁻¹(γ) for any Number. The inverse
// Langevin function is the rational approximant from package numeric.
func NondimensionalForce[T numeric.Number[T]](gamma T) T {
	return numeric.InverseLangevin(gamma)
}

// NondimensionalRelativeHelmholtzFreeEnergyPerLink returns η·γ − ln(sinh η/η)
// with η = L⁻¹(γ), for any Number.
func NondimensionalRelativeHelmholtzFreeEnergyPerLink[T numeric.Number[T]](gamma T) T {
	eta := numeric.InverseLangevin(gamma)
	return eta.Mul(gamma).Sub(numeric.LnSinhc(eta))
}

// IsometricLegendre approximates the constant-extension ensemble through a
// Legendre transformation of the isotensional one. It becomes exact as
// N → ∞ and is defined for every chain length. Extensions are expected in
// [0, Nℓ); γ → 1 diverges.
type IsometricLegendre struct {
	p *chain.Params
}

// Force returns the force needed to hold the chain at end-to-end length R.
func (v IsometricLegendre) Force(endToEndLength, temperature float64) float64 {
	return v.p.Force(v.NondimensionalForce(v.p.NondimensionalEndToEndLengthPerLink(endToEndLength)), temperature)
}

// NondimensionalForce returns η = L⁻¹(γ).
func (v IsometricLegendre) NondimensionalForce(gamma float64) float64 {
	return NondimensionalForce(numeric.Real(gamma)).Value()
}

// HelmholtzFreeEnergy returns ψ(R, T) in joules.
func (v IsometricLegendre) HelmholtzFreeEnergy(endToEndLength, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		v.NondimensionalHelmholtzFreeEnergy(v.p.NondimensionalEndToEndLengthPerLink(endToEndLength), temperature)
}

// HelmholtzFreeEnergyPerLink returns ψ(R, T)/N in joules.
func (v IsometricLegendre) HelmholtzFreeEnergyPerLink(endToEndLength, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		v.NondimensionalHelmholtzFreeEnergyPerLink(v.p.NondimensionalEndToEndLengthPerLink(endToEndLength), temperature)
}

// RelativeHelmholtzFreeEnergy returns ψ(R, T) − ψ(0, T) in joules.
func (v IsometricLegendre) RelativeHelmholtzFreeEnergy(endToEndLength, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		v.NondimensionalRelativeHelmholtzFreeEnergy(v.p.NondimensionalEndToEndLengthPerLink(endToEndLength))
}

// RelativeHelmholtzFreeEnergyPerLink returns (ψ(R, T) − ψ(0, T))/N in joules.
func (v IsometricLegendre) RelativeHelmholtzFreeEnergyPerLink(endToEndLength, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		v.NondimensionalRelativeHelmholtzFreeEnergyPerLink(v.p.NondimensionalEndToEndLengthPerLink(endToEndLength))
}

// NondimensionalHelmholtzFreeEnergy returns ψ/(kT) at γ.
func (v IsometricLegendre) NondimensionalHelmholtzFreeEnergy(gamma, temperature float64) float64 {
	return v.p.NumberOfLinksF64 * v.NondimensionalHelmholtzFreeEnergyPerLink(gamma, temperature)
}

// NondimensionalHelmholtzFreeEnergyPerLink returns ψ/(NkT) at γ.
func (v IsometricLegendre) NondimensionalHelmholtzFreeEnergyPerLink(gamma, temperature float64) float64 {
	return v.NondimensionalRelativeHelmholtzFreeEnergyPerLink(gamma) - v.p.LnHingeFactor(temperature)
}

// NondimensionalRelativeHelmholtzFreeEnergy returns (ψ − ψ₀)/(kT) at γ.
func (v IsometricLegendre) NondimensionalRelativeHelmholtzFreeEnergy(gamma float64) float64 {
	return v.p.NumberOfLinksF64 * v.NondimensionalRelativeHelmholtzFreeEnergyPerLink(gamma)
}

// NondimensionalRelativeHelmholtzFreeEnergyPerLink returns (ψ − ψ₀)/(NkT) at γ.
func (v IsometricLegendre) NondimensionalRelativeHelmholtzFreeEnergyPerLink(gamma float64) float64 {
	return NondimensionalRelativeHelmholtzFreeEnergyPerLink(numeric.Real(gamma)).Value()
}
