// SPDX-License-Identifier: MIT
// Package sampling: sentinel errors for parameter validation.

package sampling

import "errors"

var (
	// ErrInvalidTolerance indicates a non-positive or non-finite tolerance.
	ErrInvalidTolerance = errors.New("sampling: tolerances must be positive and finite")

	// ErrInvalidLoopCount indicates number_of_loops < 1.
	ErrInvalidLoopCount = errors.New("sampling: number of loops must be >= 1")

	// ErrInvalidLinkRange indicates an empty or non-positive number-of-links range.
	ErrInvalidLinkRange = errors.New("sampling: number of links range must satisfy 1 <= minimum <= maximum")

	// ErrInvalidRange indicates a non-finite reference or a negative or non-finite scale.
	ErrInvalidRange = errors.New("sampling: range reference must be finite and scale non-negative")

	// ErrDecode wraps YAML decoding failures.
	ErrDecode = errors.New("sampling: cannot decode parameters")
)
