// SPDX-License-Identifier: MIT

package swfjc

import (
	"fmt"

	"github.com/katalvlaran/polychain/chain"
)

// SWFJC is a square-well freely-jointed chain.
type SWFJC struct {
	*chain.Params
	WellWidth float64

	alpha float64
}

// New validates the parameters and returns a square-well freely-jointed chain.
// A zero well width is allowed and reproduces the freely-jointed chain.
//
// Errors: the chain.ErrInvalid* sentinels, wrapped.
func New(numberOfLinks int, linkLength, hingeMass, wellWidth float64) (*SWFJC, error) {
	p, err := chain.NewParams(numberOfLinks, linkLength, hingeMass)
	if err != nil {
		return nil, fmt.Errorf("swfjc.New: %w", err)
	}
	if err := chain.NonNegative("wellWidth", wellWidth, chain.ErrInvalidWellWidth); err != nil {
		return nil, fmt.Errorf("swfjc.New: %w", err)
	}

	return &SWFJC{Params: p, WellWidth: wellWidth, alpha: 1 + wellWidth/linkLength}, nil
}

// NondimensionalWellParameter returns α = 1 + w/ℓ.
func (c *SWFJC) NondimensionalWellParameter() float64 {
	return c.alpha
}

// Isotensional returns the constant-force ensemble view.
func (c *SWFJC) Isotensional() Isotensional {
	return Isotensional{p: c.Params, alpha: c.alpha}
}
