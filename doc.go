// Package polychain collects single-chain statistical mechanics for polymer
// models, from the rigid freely-jointed chain to extensible and square-well
// variants.
//
// Every model is a set of validated parameters with small ensemble views:
//
//	fjc/      freely-jointed chain: isotensional, exact isometric (N ≤ 32),
//	          isometric Legendre approximation and the weak-potential ensemble
//	efjc/     extensible links (harmonic stretching), exact and the two
//	          large-stiffness asymptotic layers
//	swfjc/    square-well links of length in [ℓ, ℓ + w]
//
// Supporting packages:
//
//	chain/    shared parameters, validators and sentinel errors
//	numeric/  generic real and dual-number kernels (Langevin, its inverse,
//	          ln sinhc, factorials)
//	special/  scaled complementary error function, erf and erfc
//	physics/  Boltzmann and Planck constants, thermal energy, hinge factor
//	sampling/ deterministic randomized parameter draws, YAML-configurable
//	sweep/    parallel parameter sweeps and log-log convergence fits
//
// Quick example:
//
//	c, _ := fjc.New(8, 1, 1)
//	gamma := c.Isotensional().NondimensionalEndToEndLengthPerLink(1.0)
//
// Forces are nondimensionalized as η = fℓ/(kT) and lengths as γ = R/(Nℓ).
package polychain
