package efjc

import (
	"fmt"

	"github.com/katalvlaran/polychain/chain"
)

// EFJC is an extensible freely-jointed chain.
type EFJC struct {
	*chain.Params
	LinkStiffness float64
}

// New validates the parameters and returns an extensible freely-jointed chain.
//
// Errors: the chain.ErrInvalid* sentinels, wrapped.
func New(numberOfLinks int, linkLength, hingeMass, linkStiffness float64) (*EFJC, error) {
	p, err := chain.NewParams(numberOfLinks, linkLength, hingeMass)
	if err != nil {
		return nil, fmt.Errorf("efjc.New: %w", err)
	}
	if err := chain.Positive("linkStiffness", linkStiffness, chain.ErrInvalidLinkStiffness); err != nil {
		return nil, fmt.Errorf("efjc.New: %w", err)
	}

	return &EFJC{Params: p, LinkStiffness: linkStiffness}, nil
}

// Isotensional returns the exact constant-force ensemble view.
func (c *EFJC) Isotensional() Isotensional {
	return Isotensional{ensemble{p: c.Params, stiffness: c.LinkStiffness, m: exact{}}}
}

// NondimensionalLinkStiffness returns κ = k·ℓ²/(kT).
func (c *EFJC) NondimensionalLinkStiffness(temperature float64) float64 {
	return c.Params.NondimensionalLinkStiffness(c.LinkStiffness, temperature)
}
