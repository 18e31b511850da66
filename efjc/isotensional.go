package efjc

import (
	"math"

	"github.com/katalvlaran/polychain/chain"
	"github.com/katalvlaran/polychain/physics"
)

// ensemble implements every isotensional quantity on top of a model.
type ensemble struct {
	p         *chain.Params
	stiffness float64
	m         model
}

// Isotensional is the exact constant-force ensemble.
type Isotensional struct{ ensemble }

// Asymptotic returns the large-stiffness approximations of this ensemble.
func (v Isotensional) Asymptotic() Asymptotic {
	return Asymptotic{p: v.p, stiffness: v.stiffness}
}

// Asymptotic groups the large-stiffness approximations.
type Asymptotic struct {
	p         *chain.Params
	stiffness float64
}

// Alternative returns the approximation correct to first order in 1/κ.
func (a Asymptotic) Alternative() Alternative {
	return Alternative{ensemble{p: a.p, stiffness: a.stiffness, m: alternative{}}}
}

// Reduced returns the approximation that only stretches independent links.
func (a Asymptotic) Reduced() Reduced {
	return Reduced{ensemble{p: a.p, stiffness: a.stiffness, m: reduced{}}}
}

// Alternative is the isotensional ensemble expanded to first order in 1/κ:
//
//	γ = L(η) + (η + coth η − η/sinh²η)/κ
//	φ = −ln(sinh η/η) − (η²/2 + η coth η)/κ − ½ln(2πkT/k) − ln(8π²mℓ²kT/h²)
type Alternative struct{ ensemble }

// Reduced is the isotensional ensemble with only the link-stretching term:
//
//	γ = L(η) + η/κ
//	φ = −ln(sinh η/η) − η²/(2κ) − ½ln(2πkT/k) − ln(8π²mℓ²kT/h²)
type Reduced struct{ ensemble }

// Legendre returns the Helmholtz free energies obtained from this ensemble
// by a Legendre transformation.
func (e ensemble) Legendre() Legendre {
	return Legendre{e}
}

func (e ensemble) kappa(temperature float64) float64 {
	return e.p.NondimensionalLinkStiffness(e.stiffness, temperature)
}

// constant is the per-link nondimensional normalization
// −½ln(2πkT/k) − ln(8π²mℓ²kT/h²).
func (e ensemble) constant(temperature float64) float64 {
	return -0.5*math.Log(2*math.Pi*physics.ThermalEnergy(temperature)/e.stiffness) - e.p.LnHingeFactor(temperature)
}

// EndToEndLength returns the mean end-to-end length at force f.
func (e ensemble) EndToEndLength(force, temperature float64) float64 {
	return e.p.LinkLength * e.NondimensionalEndToEndLength(e.p.NondimensionalForce(force, temperature), temperature)
}

// EndToEndLengthPerLink returns the mean end-to-end length over N.
func (e ensemble) EndToEndLengthPerLink(force, temperature float64) float64 {
	return e.p.LinkLength * e.NondimensionalEndToEndLengthPerLink(e.p.NondimensionalForce(force, temperature), temperature)
}

// NondimensionalEndToEndLength returns ⟨R⟩/ℓ.
func (e ensemble) NondimensionalEndToEndLength(eta, temperature float64) float64 {
	return e.p.NumberOfLinksF64 * e.NondimensionalEndToEndLengthPerLink(eta, temperature)
}

// NondimensionalEndToEndLengthPerLink returns γ = ⟨R⟩/(Nℓ).
func (e ensemble) NondimensionalEndToEndLengthPerLink(eta, temperature float64) float64 {
	return e.m.extension(eta, e.kappa(temperature))
}

// GibbsFreeEnergy returns φ(f, T) in joules.
func (e ensemble) GibbsFreeEnergy(force, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		e.NondimensionalGibbsFreeEnergy(e.p.NondimensionalForce(force, temperature), temperature)
}

// GibbsFreeEnergyPerLink returns φ(f, T)/N in joules.
func (e ensemble) GibbsFreeEnergyPerLink(force, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		e.NondimensionalGibbsFreeEnergyPerLink(e.p.NondimensionalForce(force, temperature), temperature)
}

// RelativeGibbsFreeEnergy returns φ(f, T) − φ(0, T) in joules.
func (e ensemble) RelativeGibbsFreeEnergy(force, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		e.NondimensionalRelativeGibbsFreeEnergy(e.p.NondimensionalForce(force, temperature), temperature)
}

// RelativeGibbsFreeEnergyPerLink returns (φ(f, T) − φ(0, T))/N in joules.
func (e ensemble) RelativeGibbsFreeEnergyPerLink(force, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		e.NondimensionalRelativeGibbsFreeEnergyPerLink(e.p.NondimensionalForce(force, temperature), temperature)
}

// NondimensionalGibbsFreeEnergy returns φ/(kT).
func (e ensemble) NondimensionalGibbsFreeEnergy(eta, temperature float64) float64 {
	return e.p.NumberOfLinksF64 * e.NondimensionalGibbsFreeEnergyPerLink(eta, temperature)
}

// NondimensionalGibbsFreeEnergyPerLink returns φ/(NkT).
func (e ensemble) NondimensionalGibbsFreeEnergyPerLink(eta, temperature float64) float64 {
	return e.m.energy(eta, e.kappa(temperature)) + e.constant(temperature)
}

// NondimensionalRelativeGibbsFreeEnergy returns (φ − φ₀)/(kT).
func (e ensemble) NondimensionalRelativeGibbsFreeEnergy(eta, temperature float64) float64 {
	return e.p.NumberOfLinksF64 * e.NondimensionalRelativeGibbsFreeEnergyPerLink(eta, temperature)
}

// NondimensionalRelativeGibbsFreeEnergyPerLink returns (φ − φ₀)/(NkT); exactly zero at η = 0.
func (e ensemble) NondimensionalRelativeGibbsFreeEnergyPerLink(eta, temperature float64) float64 {
	k := e.kappa(temperature)
	return e.m.energy(eta, k) - e.m.energy(0, k)
}

// Legendre holds the Helmholtz free energy ψ = φ + η·γ as a function of
// the applied force, for whichever ensemble produced it.
type Legendre struct {
	e ensemble
}

// HelmholtzFreeEnergy returns ψ(f, T) in joules.
func (l Legendre) HelmholtzFreeEnergy(force, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		l.NondimensionalHelmholtzFreeEnergy(l.e.p.NondimensionalForce(force, temperature), temperature)
}

// HelmholtzFreeEnergyPerLink returns ψ(f, T)/N in joules.
func (l Legendre) HelmholtzFreeEnergyPerLink(force, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		l.NondimensionalHelmholtzFreeEnergyPerLink(l.e.p.NondimensionalForce(force, temperature), temperature)
}

// RelativeHelmholtzFreeEnergy returns ψ(f, T) − ψ(0, T) in joules.
func (l Legendre) RelativeHelmholtzFreeEnergy(force, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		l.NondimensionalRelativeHelmholtzFreeEnergy(l.e.p.NondimensionalForce(force, temperature), temperature)
}

// RelativeHelmholtzFreeEnergyPerLink returns (ψ(f, T) − ψ(0, T))/N in joules.
func (l Legendre) RelativeHelmholtzFreeEnergyPerLink(force, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		l.NondimensionalRelativeHelmholtzFreeEnergyPerLink(l.e.p.NondimensionalForce(force, temperature), temperature)
}

// NondimensionalHelmholtzFreeEnergy returns ψ/(kT).
func (l Legendre) NondimensionalHelmholtzFreeEnergy(eta, temperature float64) float64 {
	return l.e.p.NumberOfLinksF64 * l.NondimensionalHelmholtzFreeEnergyPerLink(eta, temperature)
}

// NondimensionalHelmholtzFreeEnergyPerLink returns ψ/(NkT) = φ/(NkT) + η·γ.
func (l Legendre) NondimensionalHelmholtzFreeEnergyPerLink(eta, temperature float64) float64 {
	return l.e.NondimensionalGibbsFreeEnergyPerLink(eta, temperature) +
		eta*l.e.NondimensionalEndToEndLengthPerLink(eta, temperature)
}

// NondimensionalRelativeHelmholtzFreeEnergy returns (ψ − ψ₀)/(kT).
func (l Legendre) NondimensionalRelativeHelmholtzFreeEnergy(eta, temperature float64) float64 {
	return l.e.p.NumberOfLinksF64 * l.NondimensionalRelativeHelmholtzFreeEnergyPerLink(eta, temperature)
}

// NondimensionalRelativeHelmholtzFreeEnergyPerLink returns (ψ − ψ₀)/(NkT).
func (l Legendre) NondimensionalRelativeHelmholtzFreeEnergyPerLink(eta, temperature float64) float64 {
	return l.e.NondimensionalRelativeGibbsFreeEnergyPerLink(eta, temperature) +
		eta*l.e.NondimensionalEndToEndLengthPerLink(eta, temperature)
}
