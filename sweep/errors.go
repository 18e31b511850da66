// SPDX-License-Identifier: MIT
// Package sweep: sentinel errors.

package sweep

import "errors"

var (
	// ErrTooFewPoints indicates a grid or fit with fewer than two points.
	ErrTooFewPoints = errors.New("sweep: at least two points are required")

	// ErrLengthMismatch indicates x and y slices of different length.
	ErrLengthMismatch = errors.New("sweep: x and y must have equal length")

	// ErrNonPositive indicates a value that must be positive for a logarithm.
	ErrNonPositive = errors.New("sweep: values must be positive and finite")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("sweep: workers must be >= 1")

	// ErrNilLogger indicates a nil logger passed to WithLogger.
	ErrNilLogger = errors.New("sweep: logger must not be nil")
)
