package chain

import (
	"fmt"

	"github.com/katalvlaran/polychain/physics"
)

// Params are the physical parameters common to every chain model.
// NumberOfLinksF64 and ContourLength are derived once at construction.
type Params struct {
	NumberOfLinks    int
	LinkLength       float64
	HingeMass        float64
	NumberOfLinksF64 float64
	ContourLength    float64
}

// NewParams validates and returns the shared parameters.
//
// Errors:
//   - ErrInvalidNumberOfLinks if numberOfLinks < 1.
//   - ErrInvalidLinkLength, ErrInvalidHingeMass for non-positive or non-finite values.
func NewParams(numberOfLinks int, linkLength, hingeMass float64) (*Params, error) {
	if numberOfLinks < 1 {
		return nil, fmt.Errorf("NewParams: numberOfLinks=%d: %w", numberOfLinks, ErrInvalidNumberOfLinks)
	}
	if err := Positive("linkLength", linkLength, ErrInvalidLinkLength); err != nil {
		return nil, fmt.Errorf("NewParams: %w", err)
	}
	if err := Positive("hingeMass", hingeMass, ErrInvalidHingeMass); err != nil {
		return nil, fmt.Errorf("NewParams: %w", err)
	}
	n := float64(numberOfLinks)

	return &Params{
		NumberOfLinks:    numberOfLinks,
		LinkLength:       linkLength,
		HingeMass:        hingeMass,
		NumberOfLinksF64: n,
		ContourLength:    n * linkLength,
	}, nil
}

// NondimensionalForce returns η = f·ℓ/(kT).
func (p *Params) NondimensionalForce(force, temperature float64) float64 {
	return force * p.LinkLength / physics.ThermalEnergy(temperature)
}

// Force returns f = η·kT/ℓ.
func (p *Params) Force(nondimensionalForce, temperature float64) float64 {
	return nondimensionalForce * physics.ThermalEnergy(temperature) / p.LinkLength
}

// NondimensionalEndToEndLengthPerLink returns γ = R/(Nℓ).
func (p *Params) NondimensionalEndToEndLengthPerLink(endToEndLength float64) float64 {
	return endToEndLength / p.ContourLength
}

// NondimensionalLinkStiffness returns κ = k·ℓ²/(kT).
func (p *Params) NondimensionalLinkStiffness(linkStiffness, temperature float64) float64 {
	return linkStiffness * p.LinkLength * p.LinkLength / physics.ThermalEnergy(temperature)
}

// LnHingeFactor returns the per-link hinge-mass term at temperature T.
func (p *Params) LnHingeFactor(temperature float64) float64 {
	return physics.LnHingeFactor(p.HingeMass, p.LinkLength, temperature)
}
