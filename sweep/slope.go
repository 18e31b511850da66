package sweep

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
)

// LogLogSlope returns the least-squares slope of ln|y| against ln x.
// Zero y values are rejected since their logarithm is undefined.
func LogLogSlope(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("LogLogSlope: %d vs %d: %w", len(xs), len(ys), ErrLengthMismatch)
	}
	if len(xs) < minGridSize {
		return 0, fmt.Errorf("LogLogSlope: %w", ErrTooFewPoints)
	}
	lx := make([]float64, len(xs))
	ly := make([]float64, len(ys))
	for i := range xs {
		y := math.Abs(ys[i])
		if !(xs[i] > 0) || !(y > 0) || math.IsInf(xs[i], 0) || math.IsInf(y, 0) {
			return 0, fmt.Errorf("LogLogSlope: point %d (%g, %g): %w", i, xs[i], ys[i], ErrNonPositive)
		}
		lx[i], ly[i] = math.Log(xs[i]), math.Log(y)
	}
	_, beta := stat.LinearRegression(lx, ly, nil, false)

	return beta, nil
}

// Converged reports whether got agrees with want to within absTol or
// relTol, whichever is looser.
func Converged(want, got, absTol, relTol float64) bool {
	return scalar.EqualWithinAbsOrRel(want, got, absTol, relTol)
}
