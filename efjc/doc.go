// SPDX-License-Identifier: MIT

// Package efjc models the extensible freely-jointed chain: a freely-jointed
// chain whose links are harmonic springs of rest length ℓ and stiffness k.
//
// Nondimensional link stiffness:
//
//	κ = k·ℓ²/(kT). It depends on temperature, so every nondimensional method
//	takes the temperature alongside η.
//
// Views:
//
//	Isotensional()                          exact closed forms
//	Isotensional().Asymptotic().Alternative()  expansion to first order in 1/κ
//	Isotensional().Asymptotic().Reduced()      only the link-stretching term
//	<any of the above>.Legendre()           Helmholtz energies ψ = φ + η·γ
//
//	The exact per-link partition function is
//
//	  z(η) = ∫₀^∞ s² exp(−κ(s−1)²/2) sinh(ηs)/(ηs) ds,
//
//	evaluated through erfc and erfcx from package special so it neither
//	overflows for large η nor cancels for small η. The asymptotic views
//	approach it like κ⁻² (alternative) and κ⁻¹ (reduced).
//
// Free energies carry the stiffness normalization −½ln(2πkT/k) and the
// hinge-mass term; relative free energies are measured from η = 0 and carry
// neither.
package efjc
