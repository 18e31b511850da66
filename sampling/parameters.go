package sampling

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Range describes a quantity drawn as Reference + Scale·(0.5 − u).
type Range struct {
	Reference float64 `yaml:"reference"`
	Scale     float64 `yaml:"scale"`
}

// At maps u ∈ [0, 1) onto the range.
func (r Range) At(u float64) float64 {
	return r.Reference + r.Scale*(0.5-u)
}

// Min returns the smallest value At can return.
func (r Range) Min() float64 { return r.Reference - 0.5*r.Scale }

// Max returns the supremum of the values At can return.
func (r Range) Max() float64 { return r.Reference + 0.5*r.Scale }

// Parameters configure the randomized cross-checks.
type Parameters struct {
	Seed int64 `yaml:"seed"`

	AbsTol                   float64 `yaml:"abs_tol"`
	RelTol                   float64 `yaml:"rel_tol"`
	RelTolThermodynamicLimit float64 `yaml:"rel_tol_thermodynamic_limit"`
	LogLogTol                float64 `yaml:"log_log_tol"`
	LogLogScale              float64 `yaml:"log_log_scale"`
	NumberOfLoops            int     `yaml:"number_of_loops"`

	NumberOfLinksMinimum int `yaml:"number_of_links_minimum"`
	NumberOfLinksMaximum int `yaml:"number_of_links_maximum"`

	HingeMass                           Range `yaml:"hinge_mass"`
	LinkLength                          Range `yaml:"link_length"`
	Temperature                         Range `yaml:"temperature"`
	NondimensionalForce                 Range `yaml:"nondimensional_force"`
	NondimensionalEndToEndLengthPerLink Range `yaml:"nondimensional_end_to_end_length_per_link"`
	NondimensionalPotentialDistance     Range `yaml:"nondimensional_potential_distance"`
	NondimensionalPotentialStiffness    Range `yaml:"nondimensional_potential_stiffness"`
	NondimensionalLinkStiffness         Range `yaml:"nondimensional_link_stiffness"`
	NondimensionalWellWidth             Range `yaml:"nondimensional_well_width"`

	NondimensionalPotentialDistanceSmall  float64 `yaml:"nondimensional_potential_distance_small"`
	NondimensionalPotentialDistanceLarge1 float64 `yaml:"nondimensional_potential_distance_large_1"`
	NondimensionalPotentialDistanceLarge2 float64 `yaml:"nondimensional_potential_distance_large_2"`
	NondimensionalPotentialStiffnessSmall float64 `yaml:"nondimensional_potential_stiffness_small"`
	NondimensionalPotentialStiffnessLarge float64 `yaml:"nondimensional_potential_stiffness_large"`
}

// DefaultParameters returns the stock harness configuration.
func DefaultParameters() Parameters {
	return Parameters{
		Seed: defaultSeed,

		AbsTol:                   1e-8,
		RelTol:                   1e-6,
		RelTolThermodynamicLimit: 1e-1,
		LogLogTol:                5e-2,
		LogLogScale:              12e-1,
		NumberOfLoops:            8,

		NumberOfLinksMinimum: 5,
		NumberOfLinksMaximum: 25,

		HingeMass:                           Range{Reference: 1, Scale: 1},
		LinkLength:                          Range{Reference: 1, Scale: 1},
		Temperature:                         Range{Reference: 300, Scale: 100},
		NondimensionalForce:                 Range{Reference: 50, Scale: 100},
		NondimensionalEndToEndLengthPerLink: Range{Reference: 0.5, Scale: 0.99},
		NondimensionalPotentialDistance:     Range{Reference: 1, Scale: 2},
		NondimensionalPotentialStiffness:    Range{Reference: 50, Scale: 100},
		NondimensionalLinkStiffness:         Range{Reference: 500, Scale: 500},
		NondimensionalWellWidth:             Range{Reference: 0.5, Scale: 0.99},

		NondimensionalPotentialDistanceSmall:  0.25,
		NondimensionalPotentialDistanceLarge1: 1,
		NondimensionalPotentialDistanceLarge2: 1.25,
		NondimensionalPotentialStiffnessSmall: 1e-2,
		NondimensionalPotentialStiffnessLarge: 1e2,
	}
}

// ParseParameters overlays a YAML document on DefaultParameters and
// validates the result. Unknown keys are rejected.
//
// Errors: ErrDecode, or any sentinel returned by Validate.
func ParseParameters(data []byte) (Parameters, error) {
	return ReadParameters(bytes.NewReader(data))
}

// ReadParameters is ParseParameters for a stream.
func ReadParameters(r io.Reader) (Parameters, error) {
	p := DefaultParameters()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Parameters{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}

	return p, nil
}

// Validate reports the first inconsistent field. Ranges of strictly
// positive quantities (hinge mass, link length, temperature, link
// stiffness) must keep Min above zero.
func (p Parameters) Validate() error {
	for _, t := range []struct {
		name string
		v    float64
	}{
		{"abs_tol", p.AbsTol},
		{"rel_tol", p.RelTol},
		{"rel_tol_thermodynamic_limit", p.RelTolThermodynamicLimit},
		{"log_log_tol", p.LogLogTol},
		{"log_log_scale", p.LogLogScale},
	} {
		if !finite(t.v) || t.v <= 0 {
			return fmt.Errorf("Validate: %s=%g: %w", t.name, t.v, ErrInvalidTolerance)
		}
	}
	if p.NumberOfLoops < 1 {
		return fmt.Errorf("Validate: number_of_loops=%d: %w", p.NumberOfLoops, ErrInvalidLoopCount)
	}
	if p.NumberOfLinksMinimum < 1 || p.NumberOfLinksMinimum > p.NumberOfLinksMaximum {
		return fmt.Errorf("Validate: [%d, %d]: %w", p.NumberOfLinksMinimum, p.NumberOfLinksMaximum, ErrInvalidLinkRange)
	}
	for _, r := range []struct {
		name string
		r    Range
	}{
		{"hinge_mass", p.HingeMass},
		{"link_length", p.LinkLength},
		{"temperature", p.Temperature},
		{"nondimensional_force", p.NondimensionalForce},
		{"nondimensional_end_to_end_length_per_link", p.NondimensionalEndToEndLengthPerLink},
		{"nondimensional_potential_distance", p.NondimensionalPotentialDistance},
		{"nondimensional_potential_stiffness", p.NondimensionalPotentialStiffness},
		{"nondimensional_link_stiffness", p.NondimensionalLinkStiffness},
		{"nondimensional_well_width", p.NondimensionalWellWidth},
	} {
		if !finite(r.r.Reference) || !finite(r.r.Scale) || r.r.Scale < 0 {
			return fmt.Errorf("Validate: %s=%+v: %w", r.name, r.r, ErrInvalidRange)
		}
	}
	// Draws of these feed model constructors that require strictly positive
	// values, so the whole range must stay above zero.
	for _, r := range []struct {
		name string
		r    Range
	}{
		{"hinge_mass", p.HingeMass},
		{"link_length", p.LinkLength},
		{"temperature", p.Temperature},
		{"nondimensional_link_stiffness", p.NondimensionalLinkStiffness},
	} {
		if r.r.Min() <= 0 {
			return fmt.Errorf("Validate: %s min=%g: %w", r.name, r.r.Min(), ErrInvalidRange)
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
