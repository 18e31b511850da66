// SPDX-License-Identifier: MIT

package special

import "math"

const (
	erfcxSegments = 100 // unit segments of z covered by erfcxTable
	erfcxDegree   = 6   // polynomial degree per segment

	invSqrtPi = 0.56418958354775628694807945156 // 1/√π

	asymptoticCutoff = 50.0  // x ≥ asymptoticCutoff uses the rational tail
	leadingCutoff    = 5e7   // x > leadingCutoff keeps only the 1/x term
	saturationCutoff = -26.7 // exp(x²) overflows below this
	mirrorCutoff     = -6.1  // the mirrored correction is negligible below this

	zScale  = 400.0 // z = zScale/(zOffset + |x|)
	zOffset = 4.0
)

// Erfcx returns the scaled complementary error function exp(x²)·erfc(x).
//
// Special cases are:
//
//	Erfcx(0) = 1
//	Erfcx(+Inf) = 0
//	Erfcx(x) = math.MaxFloat64 for x < -26.7
//	Erfcx(NaN) = NaN
func Erfcx(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if x >= 0 {
		if x >= asymptoticCutoff {
			if x > leadingCutoff {
				return invSqrtPi / x
			}
			x2 := x * x

			return invSqrtPi * (x2*(x2+4.5) + 2) / (x * (x2*(x2+5) + 3.75))
		}

		return erfcxPoly(zScale / (zOffset + x))
	}
	switch {
	case x < saturationCutoff:
		return math.MaxFloat64
	case x < mirrorCutoff:
		return 2 * math.Exp(x*x)
	default:
		return 2*math.Exp(x*x) - erfcxPoly(zScale/(zOffset-x))
	}
}

// erfcxPoly evaluates the segment polynomial selected by the integer part of
// z. z ≥ 100 only happens at x = 0, where erfcx is exactly one.
func erfcxPoly(z float64) float64 {
	seg := int(z)
	if seg >= erfcxSegments {
		return 1
	}
	c := &erfcxTable[seg]
	t := 2*z - float64(2*seg+1)

	// Horner, highest order first.
	r := c[erfcxDegree]
	for k := erfcxDegree - 1; k >= 0; k-- {
		r = c[k] + r*t
	}

	return r
}

// Erfc returns the complementary error function.
//
// For x ≥ 0 it is Erfcx(x)/exp(x²). Negative arguments use the reflection
// erfc(x) = 2 − erfcx(−x)·exp(−x²), which is the same quantity without the
// overflowing intermediate exp(x²).
func Erfc(x float64) float64 {
	if x < 0 {
		return 2 - Erfcx(-x)*math.Exp(-x*x)
	}

	return Erfcx(x) / math.Exp(x*x)
}

// Erf returns the error function, 1 − Erfc(x). It is odd by construction.
func Erf(x float64) float64 {
	if x < 0 {
		return -Erf(-x)
	}

	return 1 - Erfc(x)
}
