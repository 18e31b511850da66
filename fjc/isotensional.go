package fjc

import (
	"github.com/katalvlaran/polychain/chain"
	"github.com/katalvlaran/polychain/numeric"
	"github.com/katalvlaran/polychain/physics"
)

// NondimensionalEndToEndLengthPerLink returns γ(η) = L(η) for any Number,
// so derivatives can be taken with numeric.Dual.
func NondimensionalEndToEndLengthPerLink[T numeric.Number[T]](eta T) T {
	return numeric.Langevin(eta)
}

// NondimensionalRelativeGibbsFreeEnergyPerLink returns −ln(sinh η / η) for any Number.
func NondimensionalRelativeGibbsFreeEnergyPerLink[T numeric.Number[T]](eta T) T {
	return numeric.LnSinhc(eta).Neg()
}

// Isotensional is the constant-force ensemble.
// Dimensional methods take a force in newtons and a temperature in kelvin;
// nondimensional ones take η = f·ℓ/(kT).
type Isotensional struct {
	p *chain.Params
}

// Legendre returns the Helmholtz free energies obtained from this ensemble
// by a Legendre transformation.
func (v Isotensional) Legendre() IsotensionalLegendre {
	return IsotensionalLegendre{p: v.p}
}

// EndToEndLength returns the mean end-to-end length ⟨R⟩ at force f.
func (v Isotensional) EndToEndLength(force, temperature float64) float64 {
	return v.p.LinkLength * v.NondimensionalEndToEndLength(v.p.NondimensionalForce(force, temperature))
}

// EndToEndLengthPerLink returns ⟨R⟩/N.
func (v Isotensional) EndToEndLengthPerLink(force, temperature float64) float64 {
	return v.p.LinkLength * v.NondimensionalEndToEndLengthPerLink(v.p.NondimensionalForce(force, temperature))
}

// NondimensionalEndToEndLength returns ⟨R⟩/ℓ = N·L(η).
func (v Isotensional) NondimensionalEndToEndLength(eta float64) float64 {
	return v.p.NumberOfLinksF64 * v.NondimensionalEndToEndLengthPerLink(eta)
}

// NondimensionalEndToEndLengthPerLink returns γ = L(η).
func (v Isotensional) NondimensionalEndToEndLengthPerLink(eta float64) float64 {
	return NondimensionalEndToEndLengthPerLink(numeric.Real(eta)).Value()
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

// NondimensionalGibbsFreeEnergyPerLink returns −ln(sinh η/η) − ln(8π²mℓ²kT/h²).
func (v Isotensional) NondimensionalGibbsFreeEnergyPerLink(eta, temperature float64) float64 {
	return v.NondimensionalRelativeGibbsFreeEnergyPerLink(eta) - v.p.LnHingeFactor(temperature)
}

// NondimensionalRelativeGibbsFreeEnergy returns (φ − φ₀)/(kT).
func (v Isotensional) NondimensionalRelativeGibbsFreeEnergy(eta float64) float64 {
	return v.p.NumberOfLinksF64 * v.NondimensionalRelativeGibbsFreeEnergyPerLink(eta)
}

// NondimensionalRelativeGibbsFreeEnergyPerLink returns −ln(sinh η/η).
func (v Isotensional) NondimensionalRelativeGibbsFreeEnergyPerLink(eta float64) float64 {
	return NondimensionalRelativeGibbsFreeEnergyPerLink(numeric.Real(eta)).Value()
}

// IsotensionalLegendre holds the Helmholtz free energy ψ = φ + η·γ as a
// function of the applied force.
type IsotensionalLegendre struct {
	p *chain.Params
}

// HelmholtzFreeEnergy returns ψ(f, T) in joules.
func (v IsotensionalLegendre) HelmholtzFreeEnergy(force, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		v.NondimensionalHelmholtzFreeEnergy(v.p.NondimensionalForce(force, temperature), temperature)
}

// HelmholtzFreeEnergyPerLink returns ψ(f, T)/N in joules.
func (v IsotensionalLegendre) HelmholtzFreeEnergyPerLink(force, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		v.NondimensionalHelmholtzFreeEnergyPerLink(v.p.NondimensionalForce(force, temperature), temperature)
}

// RelativeHelmholtzFreeEnergy returns ψ(f, T) − ψ(0, T) in joules.
func (v IsotensionalLegendre) RelativeHelmholtzFreeEnergy(force, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		v.NondimensionalRelativeHelmholtzFreeEnergy(v.p.NondimensionalForce(force, temperature))
}

// RelativeHelmholtzFreeEnergyPerLink returns (ψ(f, T) − ψ(0, T))/N in joules.
func (v IsotensionalLegendre) RelativeHelmholtzFreeEnergyPerLink(force, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		v.NondimensionalRelativeHelmholtzFreeEnergyPerLink(v.p.NondimensionalForce(force, temperature))
}

// NondimensionalHelmholtzFreeEnergy returns ψ/(kT).
func (v IsotensionalLegendre) NondimensionalHelmholtzFreeEnergy(eta, temperature float64) float64 {
	return v.p.NumberOfLinksF64 * v.NondimensionalHelmholtzFreeEnergyPerLink(eta, temperature)
}

// NondimensionalHelmholtzFreeEnergyPerLink returns η·L(η) − ln(sinh η/η) − ln(8π²mℓ²kT/h²).
func (v IsotensionalLegendre) NondimensionalHelmholtzFreeEnergyPerLink(eta, temperature float64) float64 {
	return v.NondimensionalRelativeHelmholtzFreeEnergyPerLink(eta) - v.p.LnHingeFactor(temperature)
}

// NondimensionalRelativeHelmholtzFreeEnergy returns (ψ − ψ₀)/(kT).
func (v IsotensionalLegendre) NondimensionalRelativeHelmholtzFreeEnergy(eta float64) float64 {
	return v.p.NumberOfLinksF64 * v.NondimensionalRelativeHelmholtzFreeEnergyPerLink(eta)
}

// NondimensionalRelativeHelmholtzFreeEnergyPerLink returns η·L(η) − ln(sinh η/η).
func (v IsotensionalLegendre) NondimensionalRelativeHelmholtzFreeEnergyPerLink(eta float64) float64 {
	x := numeric.Real(eta)
	return x.Mul(numeric.Langevin(x)).Sub(numeric.LnSinhc(x)).Value()
}
