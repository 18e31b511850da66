// Package chain holds the physical parameters shared by every single-chain
// model and the conversions between dimensional and nondimensional variables.
//
// A Params value is built once, validated, and then only read: model
// packages (fjc, efjc, swfjc) keep a *Params and hand the same pointer to
// every ensemble view they return, so there is a single source of truth for
// the chain's physical parameters.
//
// Nondimensionalization:
//
//	η = f·ℓ/(kT)        nondimensional force
//	γ = R/(Nℓ)          nondimensional end-to-end length per link
//	κ = k·ℓ²/(kT)       nondimensional link stiffness
package chain
