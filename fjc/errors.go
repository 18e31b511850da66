// SPDX-License-Identifier: MIT
// Package fjc: sentinel errors.

package fjc

import "errors"

var (
	// ErrChainTooShort indicates fewer than MinExactLinks links for the exact isometric view.
	ErrChainTooShort = errors.New("fjc: exact isometric statistics need at least 3 links")

	// ErrChainTooLong indicates more than MaxExactLinks links for the exact isometric view.
	ErrChainTooLong = errors.New("fjc: exact isometric statistics are unstable beyond MaxExactLinks links")
)
