package sweep

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const minGridSize = 2 // smallest grid that has both endpoints

// Linspace returns n evenly spaced values from start to stop inclusive.
// The last value is exactly stop.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < minGridSize {
		return nil, fmt.Errorf("Linspace: n=%d: %w", n, ErrTooFewPoints)
	}
	out := floats.Span(make([]float64, n), start, stop)
	out[n-1] = stop

	return out, nil
}

// Logspace returns n geometrically spaced values from start to stop
// inclusive. Both endpoints must be positive and are returned exactly.
func Logspace(start, stop float64, n int) ([]float64, error) {
	if !(start > 0) || !(stop > 0) || math.IsInf(start, 0) || math.IsInf(stop, 0) {
		return nil, fmt.Errorf("Logspace: [%g, %g]: %w", start, stop, ErrNonPositive)
	}
	if n < minGridSize {
		return nil, fmt.Errorf("Logspace: n=%d: %w", n, ErrTooFewPoints)
	}
	out := floats.LogSpan(make([]float64, n), start, stop)
	out[0], out[n-1] = start, stop

	return out, nil
}
