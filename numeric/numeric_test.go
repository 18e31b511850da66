package numeric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/polychain/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
)

func closedLangevin(x float64) float64 { return 1/math.Tanh(x) - 1/x }

// TestLangevin_ClosedForm compares against coth x − 1/x away from the origin
// and checks the series branch joins it smoothly.
func TestLangevin_ClosedForm(t *testing.T) {
	for _, x := range []float64{-30, -2, -0.5, 0.002, 0.1, 1, 5, 100} {
		assert.InEpsilonf(t, closedLangevin(x), numeric.Langevin(numeric.Real(x)).Value(), 1e-12, "x=%g", x)
	}
	below := numeric.Langevin(numeric.Real(math.Nextafter(1e-3, 0))).Value()
	above := numeric.Langevin(numeric.Real(1e-3)).Value()
	assert.InEpsilon(t, above, below, 1e-9)
	assert.Equal(t, 0.0, numeric.Langevin(numeric.Real(0)).Value())
	assert.InDelta(t, math.Cosh(1)/math.Sinh(1)-1, numeric.Langevin(numeric.Real(1)).Value(), 1e-15)
}

// TestLangevin_DualDerivative checks dL/dx = 1/x² − 1/sinh²x through dual numbers.
func TestLangevin_DualDerivative(t *testing.T) {
	for _, x := range []float64{1e-4, 0.3, 1, 4, 12} {
		d := numeric.Langevin(numeric.NewDual(x, 1))
		want := 1/(x*x) - 1/(math.Sinh(x)*math.Sinh(x))
		if x < 1e-3 {
			want = 1.0/3 - x*x/15
		}
		assert.InEpsilonf(t, want, d.Derivative(), 1e-6, "x=%g", x)
		assert.InDeltaf(t, numeric.Langevin(numeric.Real(x)).Value(), d.Value(), 1e-15, "x=%g", x)
	}
}

// TestInverseLangevin_RoundTrip verifies L(L⁻¹(x)) ≈ x within the
// approximant's accuracy, and odd symmetry.
func TestInverseLangevin_RoundTrip(t *testing.T) {
	for x := -0.99; x < 0.995; x += 0.01 {
		if math.Abs(x) < 1e-9 {
			continue
		}
		eta := numeric.InverseLangevin(numeric.Real(x))
		require.InEpsilonf(t, x, numeric.Langevin(eta).Value(), 1e-3, "x=%g", x)
		require.Equalf(t, -eta.Value(), numeric.InverseLangevin(numeric.Real(-x)).Value(), "x=%g", x)
	}
	assert.Equal(t, 0.0, numeric.InverseLangevin(numeric.Real(0)).Value())
	assert.True(t, math.IsInf(numeric.InverseLangevin(numeric.Real(1)).Value(), 1), "pole at full extension")
}

// TestInverseLangevin_Slope checks the small-extension slope of 3 and the
// derivative of the inverse against 1/L'(η).
func TestInverseLangevin_Slope(t *testing.T) {
	d := numeric.InverseLangevin(numeric.NewDual(0, 1))
	assert.InDelta(t, 3.0, d.Derivative(), 1e-12)

	x := 0.6
	eta := numeric.InverseLangevin(numeric.NewDual(x, 1))
	lp := numeric.Langevin(numeric.NewDual(eta.Value(), 1)).Derivative()
	assert.InEpsilon(t, 1/lp, eta.Derivative(), 2e-2)
}

// TestLnSinhc covers the series, direct and large-argument branches.
func TestLnSinhc(t *testing.T) {
	assert.Equal(t, 0.0, numeric.LnSinhc(numeric.Real(0)).Value())
	assert.InEpsilon(t, 1e-8/6-1e-16/180, numeric.LnSinhc(numeric.Real(1e-4)).Value(), 1e-14)
	for _, x := range []float64{5e-3, 0.5, 3, 19.9, 20.1} {
		want := math.Log(math.Sinh(x) / x)
		assert.InEpsilonf(t, want, numeric.LnSinhc(numeric.Real(x)).Value(), 1e-10, "x=%g", x)
		assert.Equalf(t, numeric.LnSinhc(numeric.Real(x)), numeric.LnSinhc(numeric.Real(-x)), "even x=%g", x)
	}
	big := numeric.LnSinhc(numeric.Real(1e4)).Value()
	assert.InEpsilon(t, 1e4-math.Ln2-math.Log(1e4), big, 1e-15)

	// d/dx ln sinhc x = L(x)
	for _, x := range []float64{0.2, 2, 30} {
		d := numeric.LnSinhc(numeric.NewDual(x, 1))
		assert.InEpsilonf(t, closedLangevin(x), d.Derivative(), 1e-9, "x=%g", x)
	}
}

// TestXCothX checks the series branch and the closed form.
func TestXCothX(t *testing.T) {
	assert.Equal(t, 1.0, numeric.XCothX(numeric.Real(0)).Value())
	for _, x := range []float64{1e-4, 0.5, 7} {
		assert.InEpsilonf(t, x/math.Tanh(x), numeric.XCothX(numeric.Real(x)).Value(), 1e-12, "x=%g", x)
	}
}

// TestDual_Arithmetic exercises each Dual capability against known derivatives.
func TestDual_Arithmetic(t *testing.T) {
	x := numeric.NewDual(2, 1)
	c := numeric.NewDual(3, 0)

	assert.Equal(t, numeric.NewDual(-2, -1), x.Neg())
	assert.Equal(t, numeric.NewDual(5, 1), x.Add(c))
	assert.Equal(t, numeric.NewDual(-1, 1), x.Sub(c))
	assert.Equal(t, numeric.NewDual(6, 3), x.Mul(c))
	assert.InDelta(t, 1.0/3, x.Div(c).Derivative(), 1e-15)
	assert.InDelta(t, -0.25, x.Inv().Derivative(), 1e-15)
	assert.Equal(t, numeric.NewDual(4.5, 1), x.AddReal(2.5))
	assert.Equal(t, numeric.NewDual(4, 2), x.MulReal(2))
	assert.Equal(t, numeric.NewDual(1, 0.5), x.DivReal(2))
	assert.InDelta(t, math.Exp(2), x.Exp().Derivative(), 1e-12)
	assert.InDelta(t, 0.5, x.Log().Derivative(), 1e-15)
	assert.InDelta(t, math.Cosh(2), x.Sinh().Derivative(), 1e-12)
	assert.InDelta(t, math.Sinh(2), x.Cosh().Derivative(), 1e-12)
	assert.InDelta(t, 1-math.Tanh(2)*math.Tanh(2), x.Tanh().Derivative(), 1e-12)
}

// TestLnFactorial checks exact small values and the overflow-free large range.
func TestLnFactorial(t *testing.T) {
	assert.Equal(t, 0.0, numeric.LnFactorial(0))
	assert.InDelta(t, math.Log(120), numeric.LnFactorial(5), 1e-13)
	assert.InDelta(t, math.Log(252), numeric.LnBinomial(10, 5), 1e-12)
	assert.True(t, math.IsInf(numeric.LnBinomial(3, 4), -1))
	assert.True(t, math.IsInf(numeric.LnFactorial(-1), 1))
	assert.False(t, math.IsInf(numeric.LnFactorial(1000), 0))
}

// TestLnBinomial compares with exact integer binomials over the range the
// exact isometric sums use and checks the out-of-range guard.
func TestLnBinomial(t *testing.T) {
	for n := 0; n <= 32; n++ {
		for k := 0; k <= n; k++ {
			want := math.Log(float64(combin.Binomial(n, k)))
			assert.InDeltaf(t, want, numeric.LnBinomial(n, k), 1e-11, "C(%d,%d)", n, k)
			assert.InDeltaf(t, numeric.LnBinomial(n, k), numeric.LnBinomial(n, n-k), 1e-12, "C(%d,%d) symmetry", n, k)
		}
	}
	assert.NotPanics(t, func() {
		assert.True(t, math.IsInf(numeric.LnBinomial(5, -1), -1))
		assert.True(t, math.IsInf(numeric.LnBinomial(-2, 0), -1))
	})
}
