package fjc

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polychain/chain"
	"github.com/katalvlaran/polychain/numeric"
	"github.com/katalvlaran/polychain/physics"
)

const (
	// nearOriginExtension is the γ below which the alternating sum is
	// replaced by its Taylor polynomial; dividing the sum by γ amplifies its
	// cancellation error as γ → 0.
	nearOriginExtension = 0.01

	// nearOriginOrder is the degree of that polynomial in γ, plus one.
	nearOriginOrder = 6
)

// Isometric is the exact constant-extension ensemble. Its equilibrium
// distribution is the finite sum
//
//	P̃(γ) = nⁿ/(8π(n−2)!γ) · Σ_{s=0}^{⌊n(1−γ)/2⌋} (−1)ˢ C(n,s) ((1−γ)/2 − s/n)^{n−2}
//
// normalized so that ∫ 4πγ²P̃(γ) dγ = 1 over [0, 1].
type Isometric struct {
	p      *chain.Params
	lnNorm float64   // ln(nⁿ/(8π(n−2)!))
	near   []float64 // Taylor coefficients of Σ(γ)/γ at the origin
	lnP0   float64   // ln P̃(0)
}

// newIsometric precomputes everything lnDistribution needs for one chain.
//
// Algorithm Outline:
//  1. Reject n outside [MinExactLinks, MaxExactLinks].
//  2. lnNorm = n·ln n − ln (n−2)! − ln 8π.
//  3. For k = 1..min(nearOriginOrder, n−2), differentiate the first
//     polynomial piece of Σ k times at γ = 0:
//     c_k = (−1/2)ᵏ Σ_{2s<n} (−1)ˢ C(n,s) C(n−2,k) (1/2 − s/n)^{n−2−k}
//     Each term is formed as exp of a sum of logs.
//  4. lnP0 = lnDistribution(0), evaluated through the c_k polynomial, so
//     relative energies are exactly zero at the origin.
//
// Complexity:
//
//	Time   = O(n·order) setup, O(n) per later lnDistribution call
//	Memory = O(order)
//
// Errors:
//   - ErrChainTooShort if n < MinExactLinks.
//   - ErrChainTooLong  if n > MaxExactLinks.
func newIsometric(p *chain.Params) (Isometric, error) {
	n := p.NumberOfLinks
	switch {
	case n < MinExactLinks:
		return Isometric{}, fmt.Errorf("fjc.Isometric: n=%d: %w", n, ErrChainTooShort)
	case n > MaxExactLinks:
		return Isometric{}, fmt.Errorf("fjc.Isometric: n=%d: %w", n, ErrChainTooLong)
	}
	nf := p.NumberOfLinksF64

	// Σ is a polynomial of degree n−2 on the first piece γ ∈ (0, 1/n], where
	// only the terms with 2s < n survive. Coefficient k−1 is Σ⁽ᵏ⁾(0)/k!.
	near := make([]float64, 0, nearOriginOrder)
	for k := 1; k <= min(nearOriginOrder, n-2); k++ {
		var d float64
		for s := 0; 2*s < n; s++ {
			t := math.Exp(numeric.LnBinomial(n, s) + numeric.LnBinomial(n-2, k) +
				float64(n-2-k)*math.Log(0.5-float64(s)/nf))
			if s%2 == 1 {
				t = -t
			}
			d += t
		}
		near = append(near, d*math.Pow(-0.5, float64(k)))
	}

	v := Isometric{
		p:      p,
		lnNorm: nf*math.Log(nf) - numeric.LnFactorial(n-2) - math.Log(8*math.Pi),
		near:   near,
	}
	v.lnP0 = v.lnDistribution(0)

	return v, nil
}

// Legendre returns the thermodynamic-limit approximation of this ensemble.
func (v Isometric) Legendre() IsometricLegendre {
	return IsometricLegendre{p: v.p}
}

// lnDistribution returns ln P̃(γ); −Inf outside the support.
func (v Isometric) lnDistribution(gamma float64) float64 {
	g := math.Abs(gamma)
	if g >= 1 {
		return math.Inf(-1)
	}
	if g < nearOriginExtension {
		var r float64
		for k := len(v.near) - 1; k >= 0; k-- {
			r = r*g + v.near[k]
		}
		return v.lnNorm + math.Log(r)
	}

	n := v.p.NumberOfLinks
	nf := v.p.NumberOfLinksF64
	m := 0.5 * (1 - g)
	var sum float64
	for s := 0; s <= int(nf*m); s++ {
		b := m - float64(s)/nf
		if b <= 0 {
			break
		}
		t := math.Exp(numeric.LnBinomial(n, s) + float64(n-2)*math.Log(b))
		if s%2 == 1 {
			t = -t
		}
		sum += t
	}
	if sum <= 0 {
		return math.Inf(-1)
	}

	return v.lnNorm - math.Log(g) + math.Log(sum)
}

// EquilibriumDistribution returns P(R) = P̃(R/Nℓ)/(Nℓ)³.
func (v Isometric) EquilibriumDistribution(endToEndLength float64) float64 {
	l := v.p.ContourLength
	return v.NondimensionalEquilibriumDistribution(v.p.NondimensionalEndToEndLengthPerLink(endToEndLength)) / (l * l * l)
}

// NondimensionalEquilibriumDistribution returns P̃(γ); zero for |γ| ≥ 1.
func (v Isometric) NondimensionalEquilibriumDistribution(gamma float64) float64 {
	return math.Exp(v.lnDistribution(gamma))
}

// EquilibriumRadialDistribution returns g(R) = g̃(R/Nℓ)/(Nℓ).
func (v Isometric) EquilibriumRadialDistribution(endToEndLength float64) float64 {
	return v.NondimensionalEquilibriumRadialDistribution(v.p.NondimensionalEndToEndLengthPerLink(endToEndLength)) /
		v.p.ContourLength
}

// NondimensionalEquilibriumRadialDistribution returns g̃(γ) = 4πγ²P̃(γ).
func (v Isometric) NondimensionalEquilibriumRadialDistribution(gamma float64) float64 {
	return 4 * math.Pi * gamma * gamma * v.NondimensionalEquilibriumDistribution(gamma)
}

// HelmholtzFreeEnergy returns ψ(R, T) = −kT ln P(R) − NkT ln(8π²mℓ²kT/h²).
func (v Isometric) HelmholtzFreeEnergy(endToEndLength, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		(v.NondimensionalHelmholtzFreeEnergy(v.p.NondimensionalEndToEndLengthPerLink(endToEndLength), temperature) +
			3*math.Log(v.p.ContourLength))
}

// HelmholtzFreeEnergyPerLink returns ψ(R, T)/N.
func (v Isometric) HelmholtzFreeEnergyPerLink(endToEndLength, temperature float64) float64 {
	return v.HelmholtzFreeEnergy(endToEndLength, temperature) / v.p.NumberOfLinksF64
}

// RelativeHelmholtzFreeEnergy returns ψ(R, T) − ψ(0, T) = −kT ln(P(R)/P(0)).
func (v Isometric) RelativeHelmholtzFreeEnergy(endToEndLength, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		v.NondimensionalRelativeHelmholtzFreeEnergy(v.p.NondimensionalEndToEndLengthPerLink(endToEndLength))
}

// RelativeHelmholtzFreeEnergyPerLink returns (ψ(R, T) − ψ(0, T))/N.
func (v Isometric) RelativeHelmholtzFreeEnergyPerLink(endToEndLength, temperature float64) float64 {
	return physics.ThermalEnergy(temperature) *
		v.NondimensionalRelativeHelmholtzFreeEnergyPerLink(v.p.NondimensionalEndToEndLengthPerLink(endToEndLength))
}

// NondimensionalHelmholtzFreeEnergy returns −ln P̃(γ) − N ln(8π²mℓ²kT/h²).
func (v Isometric) NondimensionalHelmholtzFreeEnergy(gamma, temperature float64) float64 {
	return -v.lnDistribution(gamma) - v.p.NumberOfLinksF64*v.p.LnHingeFactor(temperature)
}

// NondimensionalHelmholtzFreeEnergyPerLink returns the nondimensional Helmholtz free energy over N.
func (v Isometric) NondimensionalHelmholtzFreeEnergyPerLink(gamma, temperature float64) float64 {
	return v.NondimensionalHelmholtzFreeEnergy(gamma, temperature) / v.p.NumberOfLinksF64
}

// NondimensionalRelativeHelmholtzFreeEnergy returns −ln(P̃(γ)/P̃(0)); exactly zero at γ = 0.
func (v Isometric) NondimensionalRelativeHelmholtzFreeEnergy(gamma float64) float64 {
	return v.lnP0 - v.lnDistribution(gamma)
}

// NondimensionalRelativeHelmholtzFreeEnergyPerLink returns −ln(P̃(γ)/P̃(0))/N.
func (v Isometric) NondimensionalRelativeHelmholtzFreeEnergyPerLink(gamma float64) float64 {
	return v.NondimensionalRelativeHelmholtzFreeEnergy(gamma) / v.p.NumberOfLinksF64
}
