package efjc

import (
	"math"

	"github.com/katalvlaran/polychain/special"
)

// partitionSeriesCutoff is the η below which z is summed from its moment
// series; the closed form divides two differences that vanish with η.
const partitionSeriesCutoff = 0.05

// stretchMoments returns Mⱼ = ∫₀^∞ sʲ exp(−κ(s−1)²/2) ds for j = 0..8.
func stretchMoments(kappa float64) [9]float64 {
	// Gⱼ = ∫_{−1}^∞ uʲ exp(−κu²/2) du, by parts from G₀ and G₁.
	var g [9]float64
	tail := math.Exp(-0.5*kappa) / kappa
	g[0] = math.Sqrt(math.Pi/(2*kappa)) * (2 - special.Erfc(math.Sqrt(0.5*kappa)))
	g[1] = tail
	for j := 2; j < len(g); j++ {
		sign := 1.0
		if j%2 == 0 {
			sign = -1
		}
		g[j] = sign*tail + float64(j-1)/kappa*g[j-2]
	}

	// s = 1 + u
	var m [9]float64
	for j := range m {
		binom := 1.0
		for i := 0; i <= j; i++ {
			m[j] += binom * g[i]
			binom = binom * float64(j-i) / float64(i+1)
		}
	}

	return m
}

// gaussianTail returns J(μ) = ∫₀^∞ s·exp(−κ(s−μ)²/2) ds and its derivative
// J'(μ) = ∫₀^∞ exp(−κ(s−μ)²/2) ds.
func gaussianTail(mu, kappa float64) (j, dj float64) {
	c := math.Sqrt(math.Pi / (2 * kappa))
	x := mu * math.Sqrt(0.5*kappa)
	if mu >= 0 {
		dj = c * (2 - special.Erfc(x))
		return mu*dj + math.Exp(-x*x)/kappa, dj
	}
	g := math.Exp(-x * x)
	ex := special.Erfcx(-x)

	return g * (mu*c*ex + 1/kappa), g * c * ex
}

// partition returns ln z(η) and γ = d ln z/dη for
//
//	z(η) = ∫₀^∞ s² exp(−κ(s−1)²/2) sinh(ηs)/(ηs) ds.
//
// Two branches:
//   - η < partitionSeriesCutoff: expand sinh(ηs)/(ηs) in even powers of ηs.
//     Then z = M₂ + η²M₄/6 + η⁴M₆/120 + η⁶M₈/5040, where the M_j are the stretch
//     moments from stretchMoments. γ follows by term-wise differentiation.
//   - otherwise: write sinh as two exponentials and complete the square in
//     each. This gives
//     ln z = η + η²/2κ − ln 2η + ln D,   D = J(1 + η/κ) − e^{−2η}·J(1 − η/κ),
//     with J from gaussianTail. γ = 1 + η/κ − 1/η + D'/D.
//     The e^{−2η} factor keeps D bounded, so the branch never overflows.
//
// Negative η is reflected: z is even in η and γ is odd.
//
// Complexity: O(1). The erfc/erfcx table look-ups dominate.
func partition(eta, kappa float64) (lnZ, gamma float64) {
	if eta < 0 {
		lnZ, gamma = partition(-eta, kappa)
		return lnZ, -gamma
	}
	if eta < partitionSeriesCutoff {
		m := stretchMoments(kappa)
		e2 := eta * eta
		r := e2 * (m[4]/6 + e2*(m[6]/120+e2*m[8]/5040)) / m[2]
		dz := eta * (m[4]/3 + e2*(m[6]/30+e2*m[8]/840)) / m[2]
		return math.Log(m[2]) + math.Log1p(r), dz / (1 + r)
	}

	// z = (I₊ − I₋)/(2η) with I± = exp(±η + η²/2κ)·J(1 ± η/κ).
	jUp, djUp := gaussianTail(1+eta/kappa, kappa)
	jDown, djDown := gaussianTail(1-eta/kappa, kappa)
	w := math.Exp(-2 * eta)
	d := jUp - w*jDown
	dd := djUp/kappa + w*(2*jDown+djDown/kappa)

	return eta + 0.5*eta*eta/kappa - math.Log(2*eta) + math.Log(d), 1 + eta/kappa - 1/eta + dd/d
}
