// SPDX-License-Identifier: MIT

// Package fjc models the freely-jointed chain: N rigid links of length ℓ
// joined by freely rotating hinges of mass m.
//
// What is an ensemble view?
//
//	An FJC is a set of validated parameters. Each thermodynamic ensemble is
//	a small value type returned by a method on *FJC that shares the same
//	*chain.Params pointer:
//
//	  Isotensional()          force is prescribed, extension fluctuates
//	  Isotensional().Legendre()  Helmholtz energies as functions of force
//	  Isometric()             end-to-end length is prescribed (exact, small N)
//	  IsometricLegendre()     thermodynamic-limit approximation of Isometric
//	  WeakPotential()         chain end tethered by a weak harmonic potential
//
// Conventions:
//
//	η = f·ℓ/(kT), γ = R/(Nℓ). Every quantity comes in a dimensional and a
//	nondimensional form, and most in total and per-link forms; totals are
//	always N times the per-link value. "Relative" free energies are measured
//	from the zero-force (or zero-extension) state and omit the hinge-mass
//	term.
//
// Exact isometric statistics:
//
//	The distribution of the end-to-end vector is a finite alternating sum
//	over binomial terms. The alternation cancels catastrophically for long
//	chains, so the exact view refuses N > MaxExactLinks; use
//	IsometricLegendre there.
//
// Example:
//
//	chain, err := fjc.New(8, 1.0, 1.0)
//	if err != nil {
//	    return err
//	}
//	gamma := chain.Isotensional().NondimensionalEndToEndLengthPerLink(1.0)
//	eta := chain.IsometricLegendre().NondimensionalForce(gamma)
package fjc
