// SPDX-License-Identifier: MIT
// Package chain: sentinel errors for parameter validation.
//
// Every message is prefixed with "chain: ..." and constructors return these
// sentinels wrapped with context via %w; callers match them with errors.Is.

package chain

import "errors"

var (
	// ErrInvalidNumberOfLinks indicates a link count below one.
	ErrInvalidNumberOfLinks = errors.New("chain: number of links must be >= 1")

	// ErrInvalidLinkLength indicates a non-positive or non-finite link length.
	ErrInvalidLinkLength = errors.New("chain: link length must be positive and finite")

	// ErrInvalidHingeMass indicates a non-positive or non-finite hinge mass.
	ErrInvalidHingeMass = errors.New("chain: hinge mass must be positive and finite")

	// ErrInvalidLinkStiffness indicates a non-positive or non-finite link stiffness.
	ErrInvalidLinkStiffness = errors.New("chain: link stiffness must be positive and finite")

	// ErrInvalidWellWidth indicates a negative or non-finite square-well width.
	ErrInvalidWellWidth = errors.New("chain: well width must be non-negative and finite")
)
