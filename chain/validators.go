package chain

import (
	"fmt"
	"math"
)

// Positive returns err wrapped with the offending value unless v is finite
// and strictly positive.
func Positive(name string, v float64, err error) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s=%g: %w", name, v, err)
	}

	return nil
}

// NonNegative is Positive with zero allowed.
func NonNegative(name string, v float64, err error) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%s=%g: %w", name, v, err)
	}

	return nil
}
