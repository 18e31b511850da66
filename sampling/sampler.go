package sampling

import (
	"math/rand"

	"github.com/katalvlaran/polychain/physics"
)

// Draw is one randomized parameter set. Nondimensional quantities are
// stored; the dimensional ones are derived on demand.
type Draw struct {
	NumberOfLinks int
	LinkLength    float64
	HingeMass     float64
	Temperature   float64

	NondimensionalForce                 float64
	NondimensionalEndToEndLengthPerLink float64
	NondimensionalPotentialDistance     float64
	NondimensionalPotentialStiffness    float64
	NondimensionalLinkStiffness         float64
	NondimensionalWellWidth             float64
}

// ContourLength returns N·ℓ.
func (d Draw) ContourLength() float64 { return float64(d.NumberOfLinks) * d.LinkLength }

// Force returns η·kT/ℓ.
func (d Draw) Force() float64 {
	return d.NondimensionalForce * physics.ThermalEnergy(d.Temperature) / d.LinkLength
}

// EndToEndLength returns γ·N·ℓ.
func (d Draw) EndToEndLength() float64 {
	return d.NondimensionalEndToEndLengthPerLink * d.ContourLength()
}

// PotentialDistance returns ṽ·N·ℓ.
func (d Draw) PotentialDistance() float64 {
	return d.NondimensionalPotentialDistance * d.ContourLength()
}

// PotentialStiffness returns κ̃·kT/(Nℓ)².
func (d Draw) PotentialStiffness() float64 {
	l := d.ContourLength()
	return d.NondimensionalPotentialStiffness * physics.ThermalEnergy(d.Temperature) / (l * l)
}

// LinkStiffness returns κ·kT/ℓ².
func (d Draw) LinkStiffness() float64 {
	return d.NondimensionalLinkStiffness * physics.ThermalEnergy(d.Temperature) / (d.LinkLength * d.LinkLength)
}

// WellWidth returns w̃·ℓ.
func (d Draw) WellWidth() float64 {
	return d.NondimensionalWellWidth * d.LinkLength
}

// Sampler produces a deterministic stream of Draw values.
// It is not safe for concurrent use; see Stream.
type Sampler struct {
	params Parameters
	rng    *rand.Rand
}

// NewSampler returns a Sampler seeded with p.Seed (0 selects a fixed default).
// p is used as given; call Validate first when it comes from user input.
func NewSampler(p Parameters) *Sampler {
	return &Sampler{params: p, rng: rngFromSeed(p.Seed)}
}

// Parameters returns the configuration the sampler draws from.
func (s *Sampler) Parameters() Parameters { return s.params }

// Stream returns an independent sampler for stream id, derived from the
// configured seed only, so the result does not depend on how many draws
// the parent has already made.
func (s *Sampler) Stream(id uint64) *Sampler {
	seed := s.params.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	return &Sampler{params: s.params, rng: rand.New(rand.NewSource(deriveSeed(seed, id)))}
}

// Draw returns the next parameter set.
func (s *Sampler) Draw() Draw {
	p := &s.params
	links := p.NumberOfLinksMinimum + s.rng.Intn(p.NumberOfLinksMaximum-p.NumberOfLinksMinimum+1)

	return Draw{
		NumberOfLinks: links,
		LinkLength:    p.LinkLength.At(s.rng.Float64()),
		HingeMass:     p.HingeMass.At(s.rng.Float64()),
		Temperature:   p.Temperature.At(s.rng.Float64()),

		NondimensionalForce:                 p.NondimensionalForce.At(s.rng.Float64()),
		NondimensionalEndToEndLengthPerLink: p.NondimensionalEndToEndLengthPerLink.At(s.rng.Float64()),
		NondimensionalPotentialDistance:     p.NondimensionalPotentialDistance.At(s.rng.Float64()),
		NondimensionalPotentialStiffness:    p.NondimensionalPotentialStiffness.At(s.rng.Float64()),
		NondimensionalLinkStiffness:         p.NondimensionalLinkStiffness.At(s.rng.Float64()),
		NondimensionalWellWidth:             p.NondimensionalWellWidth.At(s.rng.Float64()),
	}
}

// Draws returns the next NumberOfLoops parameter sets.
func (s *Sampler) Draws() []Draw {
	out := make([]Draw, s.params.NumberOfLoops)
	for i := range out {
		out[i] = s.Draw()
	}
	return out
}
