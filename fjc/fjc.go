package fjc

import (
	"fmt"

	"github.com/katalvlaran/polychain/chain"
)

const (
	// MinExactLinks is the shortest chain the exact isometric view accepts.
	MinExactLinks = 3

	// MaxExactLinks is the longest chain the exact isometric view accepts.
	// Beyond it the alternating sum loses more than 1e-7 to cancellation.
	MaxExactLinks = 32
)

// FJC is a freely-jointed chain. The embedded Params are shared by every
// ensemble view and must not be modified after New.
type FJC struct {
	*chain.Params
}

// New validates the parameters and returns a freely-jointed chain.
//
// Errors: the chain.ErrInvalid* sentinels, wrapped.
func New(numberOfLinks int, linkLength, hingeMass float64) (*FJC, error) {
	p, err := chain.NewParams(numberOfLinks, linkLength, hingeMass)
	if err != nil {
		return nil, fmt.Errorf("fjc.New: %w", err)
	}

	return &FJC{Params: p}, nil
}

// Isotensional returns the constant-force ensemble view.
func (c *FJC) Isotensional() Isotensional {
	return Isotensional{p: c.Params}
}

// Isometric returns the exact constant-extension ensemble view.
//
// Errors: ErrChainTooShort if N < MinExactLinks, ErrChainTooLong if N > MaxExactLinks.
func (c *FJC) Isometric() (Isometric, error) {
	return newIsometric(c.Params)
}

// IsometricLegendre returns the Legendre-transformation approximation of the
// constant-extension ensemble, valid for any N.
func (c *FJC) IsometricLegendre() IsometricLegendre {
	return IsometricLegendre{p: c.Params}
}

// WeakPotential returns the modified canonical ensemble view in the
// weak-potential limit.
func (c *FJC) WeakPotential() WeakPotential {
	return WeakPotential{p: c.Params}
}
