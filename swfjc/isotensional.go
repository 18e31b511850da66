package swfjc

import (
	"github.com/katalvlaran/polychain/chain"
	"github.com/katalvlaran/polychain/physics"
)

// Isotensional is the constant-force ensemble. The well parameter does not
// depend on temperature, so only absolute free energies take one.
type Isotensional struct {
	p     *chain.Params
	alpha float64
}

// Legendre returns the Helmholtz free energies ψ = φ + η·γ as functions of force.
func (v Isotensional) Legendre() Legendre {
	return Legendre{v}
}

// EndToEndLength returns the mean end-to-end length at force f.
func (v Isotensional) EndToEndLength(force, temperature float64) float64 {
	return v.p.LinkLength * v.NondimensionalEndToEndLength(v.p.NondimensionalForce(force, temperature))
}

// EndToEndLengthPerLink returns the mean end-to-end length over N.
func (v Isotensional) EndToEndLengthPerLink(force, temperature float64) float64 {
	return v.p.LinkLength * v.NondimensionalEndToEndLengthPerLink(v.p.NondimensionalForce(force, temperature))
}

// NondimensionalEndToEndLength returns ⟨R⟩/ℓ.
func (v Isotensional) NondimensionalEndToEndLength(eta float64) float64 {
	return v.p.NumberOfLinksF64 * v.NondimensionalEndToEndLengthPerLink(eta)
}

// NondimensionalEndToEndLengthPerLink returns γ = ⟨R⟩/(Nℓ), which exceeds
// one at large force when the well is wider than zero.
func (v Isotensional) NondimensionalEndToEndLengthPerLink(eta float64) float64 {
	_, gamma := partition(eta, v.alpha)
	return gamma
}

// GibbsFreeEnergy returns φ(f, T) in joules.
func (v Isotensional) GibbsFreeEnergy(force, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		v.NondimensionalGibbsFreeEnergy(v.p.NondimensionalForce(force, temperature), temperature)
}

// GibbsFreeEnergyPerLink returns φ(f, T)/N in joules.
func (v Isotensional) GibbsFreeEnergyPerLink(force, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		v.NondimensionalGibbsFreeEnergyPerLink(v.p.NondimensionalForce(force, temperature), temperature)
}

// RelativeGibbsFreeEnergy returns φ(f, T) − φ(0, T) in joules.
func (v Isotensional) RelativeGibbsFreeEnergy(force, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		v.NondimensionalRelativeGibbsFreeEnergy(v.p.NondimensionalForce(force, temperature))
}

// RelativeGibbsFreeEnergyPerLink returns (φ(f, T) − φ(0, T))/N in joules.
func (v Isotensional) RelativeGibbsFreeEnergyPerLink(force, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		v.NondimensionalRelativeGibbsFreeEnergyPerLink(v.p.NondimensionalForce(force, temperature))
}

// NondimensionalGibbsFreeEnergy returns φ/(kT).
func (v Isotensional) NondimensionalGibbsFreeEnergy(eta, temperature float64) float64 {
	return v.p.NumberOfLinksF64 * v.NondimensionalGibbsFreeEnergyPerLink(eta, temperature)
}

// NondimensionalGibbsFreeEnergyPerLink returns −ln z(η) − ln(8π²mℓ²kT/h²).
func (v Isotensional) NondimensionalGibbsFreeEnergyPerLink(eta, temperature float64) float64 {
	lnZ, _ := partition(eta, v.alpha)
	return -lnZ - v.p.LnHingeFactor(temperature)
}

// NondimensionalRelativeGibbsFreeEnergy returns (φ − φ₀)/(kT).
func (v Isotensional) NondimensionalRelativeGibbsFreeEnergy(eta float64) float64 {
	return v.p.NumberOfLinksF64 * v.NondimensionalRelativeGibbsFreeEnergyPerLink(eta)
}

// NondimensionalRelativeGibbsFreeEnergyPerLink returns −ln(z(η)/z(0)).
func (v Isotensional) NondimensionalRelativeGibbsFreeEnergyPerLink(eta float64) float64 {
	lnZ, _ := partition(eta, v.alpha)
	lnZ0, _ := partition(0, v.alpha)
	return lnZ0 - lnZ
}

// Legendre is the Helmholtz free energy of the square-well chain as a
// function of the applied force.
type Legendre struct {
	v Isotensional
}

// HelmholtzFreeEnergy returns ψ(f, T) in joules.
func (l Legendre) HelmholtzFreeEnergy(force, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		l.NondimensionalHelmholtzFreeEnergy(l.v.p.NondimensionalForce(force, temperature), temperature)
}

// HelmholtzFreeEnergyPerLink returns ψ(f, T)/N in joules.
func (l Legendre) HelmholtzFreeEnergyPerLink(force, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		l.NondimensionalHelmholtzFreeEnergyPerLink(l.v.p.NondimensionalForce(force, temperature), temperature)
}

// RelativeHelmholtzFreeEnergy returns ψ(f, T) − ψ(0, T) in joules.
func (l Legendre) RelativeHelmholtzFreeEnergy(force, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		l.NondimensionalRelativeHelmholtzFreeEnergy(l.v.p.NondimensionalForce(force, temperature))
}

// RelativeHelmholtzFreeEnergyPerLink returns (ψ(f, T) − ψ(0, T))/N in joules.
func (l Legendre) RelativeHelmholtzFreeEnergyPerLink(force, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		l.NondimensionalRelativeHelmholtzFreeEnergyPerLink(l.v.p.NondimensionalForce(force, temperature))
}

// NondimensionalHelmholtzFreeEnergy returns ψ/(kT).
func (l Legendre) NondimensionalHelmholtzFreeEnergy(eta, temperature float64) float64 {
	return l.v.p.NumberOfLinksF64 * l.NondimensionalHelmholtzFreeEnergyPerLink(eta, temperature)
}

// NondimensionalHelmholtzFreeEnergyPerLink returns φ/(NkT) + η·γ.
func (l Legendre) NondimensionalHelmholtzFreeEnergyPerLink(eta, temperature float64) float64 {
	return l.v.NondimensionalGibbsFreeEnergyPerLink(eta, temperature) + eta*l.v.NondimensionalEndToEndLengthPerLink(eta)
}

// NondimensionalRelativeHelmholtzFreeEnergy returns (ψ − ψ₀)/(kT).
func (l Legendre) NondimensionalRelativeHelmholtzFreeEnergy(eta float64) float64 {
	return l.v.p.NumberOfLinksF64 * l.NondimensionalRelativeHelmholtzFreeEnergyPerLink(eta)
}

// NondimensionalRelativeHelmholtzFreeEnergyPerLink returns (ψ − ψ₀)/(NkT).
func (l Legendre) NondimensionalRelativeHelmholtzFreeEnergyPerLink(eta float64) float64 {
	return l.v.NondimensionalRelativeGibbsFreeEnergyPerLink(eta) + eta*l.v.NondimensionalEndToEndLengthPerLink(eta)
}
