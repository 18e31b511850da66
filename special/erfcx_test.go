package special_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/polychain/special"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErfcx_AtZero checks erfcx(0) = erfc(0) = 1 exactly.
func TestErfcx_AtZero(t *testing.T) {
	assert.Equal(t, 1.0, special.Erfcx(0))
}

// TestErfcx_MatchesStdlib compares the table evaluation with math.Erfc
// across the bulk and the mirrored negative branch.
func TestErfcx_MatchesStdlib(t *testing.T) {
	var x float64
	for x = -6; x < 25; x += 0.0137 {
		want := math.Erfc(x) * math.Exp(x*x)
		got := special.Erfcx(x)
		require.InEpsilonf(t, want, got, 5e-13, "x=%g", x)
	}
}

// TestErfcx_ContinuityAtAsymptoticCutoff checks the rational tail meets the
// polynomial branch at x = 50.
func TestErfcx_ContinuityAtAsymptoticCutoff(t *testing.T) {
	below := special.Erfcx(math.Nextafter(50, 0))
	at := special.Erfcx(50)
	assert.InDelta(t, below, at, 1e-8)
	assert.InEpsilon(t, 1/(50*math.SqrtPi), at, 1e-3, "tail ~ 1/(x√π)")
}

// TestErfcx_LeadingTail checks the 1/(x√π) branch above 5e7.
func TestErfcx_LeadingTail(t *testing.T) {
	x := 1e8
	assert.InEpsilon(t, 1/(x*math.SqrtPi), special.Erfcx(x), 1e-15)
	assert.InEpsilon(t, special.Erfcx(5e7), special.Erfcx(math.Nextafter(5e7, math.Inf(1))), 1e-12)
}

// TestErfcx_NegativeTail covers the exponential and saturation branches.
func TestErfcx_NegativeTail(t *testing.T) {
	for _, x := range []float64{-6.2, -10, -20, -26.6} {
		assert.Equalf(t, 2*math.Exp(x*x), special.Erfcx(x), "x=%g", x)
	}
	assert.Equal(t, math.MaxFloat64, special.Erfcx(-26.8))
	assert.Equal(t, math.MaxFloat64, special.Erfcx(-1e3))
}

// TestErfcx_SpecialValues covers NaN and +Inf.
func TestErfcx_SpecialValues(t *testing.T) {
	assert.True(t, math.IsNaN(special.Erfcx(math.NaN())))
	assert.Equal(t, 0.0, special.Erfcx(math.Inf(1)))
}

// TestErf_Odd verifies erf(x) = -erf(-x), including the saturated tails.
func TestErf_Odd(t *testing.T) {
	for _, x := range []float64{1e-9, 0.1, 0.5, 1, 2.5, 6, 6.2, 15, 26.7, 30, 80, 1e9} {
		assert.Equalf(t, special.Erf(x), -special.Erf(-x), "x=%g", x)
	}
	assert.Equal(t, 1.0, special.Erf(30))
	assert.Equal(t, -1.0, special.Erf(-30))
}

// TestErf_MatchesStdlib compares erf and erfc against the math package.
func TestErf_MatchesStdlib(t *testing.T) {
	cases := []float64{-5, -2, -0.7, -0.01, 0.01, 0.3, 1, 1.7, 3, 4.5}
	for _, x := range cases {
		assert.InDeltaf(t, math.Erf(x), special.Erf(x), 1e-14, "erf x=%g", x)
		assert.InEpsilonf(t, math.Erfc(x), special.Erfc(x), 1e-12, "erfc x=%g", x)
	}
	assert.Equal(t, 0.0, special.Erf(0))
	assert.Equal(t, 0.0, special.Erfc(40))
	assert.Equal(t, 2.0, special.Erfc(-40))
}
