package swfjc

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/katalvlaran/polychain/numeric"
)

const (
	gSeriesCutoff   = 0.5  // u below which g and g' are summed from their series
	gSeriesTerms    = 7    // terms of that series
	largeArgument   = 20.0 // αη above which exponentials are rescaled by e^{−αη}
	narrowWell      = 1e-4 // α − 1 below which the well is integrated numerically
	quadratureNodes = 12
)

// shellG returns g(u)·e^{−shift} and g'(u)·e^{−shift} for u ≥ 0, where
// g(u) = (u cosh u − sinh u)/u³ = Σ_{k≥1} 2k·u^{2k−2}/(2k+1)!.
func shellG(u, shift float64) (g, dg float64) {
	if u < gSeriesCutoff {
		u2 := u * u
		pow := 1.0 // u^{2k−2}
		odd := u   // u^{2k−3}, from k = 2
		fact := 6.0
		g = 2 / fact
		for k := 2; k <= gSeriesTerms; k++ {
			fact *= float64(2*k) * float64(2*k+1)
			pow *= u2
			g += float64(2*k) * pow / fact
			dg += float64(2*k) * float64(2*k-2) * odd / fact
			odd *= u2
		}
		s := math.Exp(-shift)
		return g * s, dg * s
	}
	ep := math.Exp(u - shift)
	em := math.Exp(-u - shift)
	g = ((u-1)*ep + (u+1)*em) / (2 * u * u * u)
	dg = (ep-em)/(2*u*u) - 3*g/u

	return g, dg
}

// partition returns ln z(η) and γ = d ln z/dη for the normalized square-well
// partition function; α = 1 is the freely-jointed chain.
func partition(eta, alpha float64) (lnZ, gamma float64) {
	if eta < 0 {
		lnZ, gamma = partition(-eta, alpha)
		return lnZ, -gamma
	}
	am1 := alpha - 1
	if am1 == 0 {
		x := numeric.Real(eta)
		return numeric.LnSinhc(x).Value(), numeric.Langevin(x).Value()
	}
	a3m1 := am1 * (alpha*alpha + alpha + 1)

	if am1 < narrowWell {
		// z ∝ ∫₁^α a² sinhc(aη) da and γ is the matching average of a·L(aη).
		shift := 0.0
		if eta > largeArgument {
			shift = eta
		}
		den := quad.Fixed(func(a float64) float64 {
			return a * a * math.Exp(numeric.LnSinhc(numeric.Real(a*eta)).Value()-shift)
		}, 1, alpha, quadratureNodes, quad.Legendre{}, 0)
		num := quad.Fixed(func(a float64) float64 {
			u := numeric.Real(a * eta)
			return a * a * a * math.Exp(numeric.LnSinhc(u).Value()-shift) * numeric.Langevin(u).Value()
		}, 1, alpha, quadratureNodes, quad.Legendre{}, 0)
		return shift + math.Log(3*den/a3m1), num / den
	}

	shift := 0.0
	if alpha*eta > largeArgument {
		shift = alpha * eta
	}
	ga, dga := shellG(alpha*eta, shift)
	g1, dg1 := shellG(eta, shift)
	a3 := alpha * alpha * alpha
	d := a3*ga - g1

	return shift + math.Log(3*d/a3m1), (a3*alpha*dga - dg1) / d
}
