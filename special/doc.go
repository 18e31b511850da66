// SPDX-License-Identifier: MIT

// Package special evaluates the scaled complementary error function and the
// error functions derived from it.
//
// What is erfcx?
//
//	erfcx(x) = exp(x²)·erfc(x)
//
//	It stays O(1/x) for large positive x where erfc underflows, which makes
//	it the natural building block for expressions that multiply erfc by a
//	large exponential (the extensible freely-jointed chain is one of them).
//
// Evaluation strategy:
//   - x ≥ 50: two-term rational approximation in 1/x (leading 1/(x√π) above 5e7).
//   - 0 ≤ x < 50: piecewise degree-6 polynomials on 100 unit segments of
//     z = 400/(4+x), stored in a constant table.
//   - x < 0: erfcx(x) = 2·exp(x²) − erfcx(−x), with the correction dropped
//     below −6.1 and saturation to math.MaxFloat64 below −26.7.
//
// Every function is total over the reals; relative accuracy is ~1e-14.
//
//	y := special.Erfcx(3.2)
//	e := special.Erf(-0.4)
package special
