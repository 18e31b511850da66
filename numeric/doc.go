// Package numeric provides a capability-based number abstraction and the
// Langevin family of functions written once against it.
//
// Why an interface?
//
//	The inverse-Langevin approximant and the Legendre-transformed free
//	energies are needed both as plain float64 values and as derivatives.
//	Writing them against Number[T] lets the same code run on Real (plain
//	evaluation) and on Dual (forward-mode automatic differentiation), so a
//	force can be differentiated into a stiffness without duplicating the
//	approximation.
//
// Capabilities:
//
//	Value, Neg, Add, Sub, Mul, Div, Inv          arithmetic
//	AddReal, MulReal, DivReal                    mixing with plain float64
//	Exp, Log, Sinh, Cosh, Tanh                   elementary functions
//
// Usage:
//
//	eta := numeric.InverseLangevin(numeric.Real(0.5))
//	d := numeric.InverseLangevin(numeric.NewDual(0.5, 1))
//	stiffness := d.Derivative()
package numeric
