package numeric

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// LnFactorial returns ln(n!) through the log-gamma function, so it never
// overflows. Negative n yields +Inf (1/Γ has poles there).
func LnFactorial(n int) float64 {
	if n < 0 {
		return math.Inf(1)
	}
	v, _ := math.Lgamma(float64(n) + 1)

	return v
}

// LnBinomial returns ln C(n, k) for 0 ≤ k ≤ n and −Inf otherwise.
// combin panics outside that range, so the guard stays here.
func LnBinomial(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}

	return combin.LogGeneralizedBinomial(float64(n), float64(k))
}
