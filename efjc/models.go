package efjc

import (
	"math"

	"github.com/katalvlaran/polychain/numeric"
)

// model is one closed form of the per-link isotensional statistics.
// energy is the per-link nondimensional Gibbs free energy without the
// stiffness normalization and hinge-mass terms; extension is −∂energy/∂η.
type model interface {
	extension(eta, kappa float64) float64
	energy(eta, kappa float64) float64
}

type exact struct{}

func (exact) extension(eta, kappa float64) float64 {
	_, g := partition(eta, kappa)
	return g
}

func (exact) energy(eta, kappa float64) float64 {
	lnZ, _ := partition(eta, kappa)
	return 0.5*math.Log(2*math.Pi/kappa) - lnZ
}

// alternative keeps every term of first order in 1/κ.
type alternative struct{}

func (alternative) extension(eta, kappa float64) float64 {
	return numeric.Langevin(numeric.Real(eta)).Value() + (eta+cothMinusXCschSquare(eta))/kappa
}

func (alternative) energy(eta, kappa float64) float64 {
	x := numeric.Real(eta)
	return -numeric.LnSinhc(x).Value() - (0.5*eta*eta+numeric.XCothX(x).Value())/kappa
}

// reduced keeps only the stretching of independent links.
type reduced struct{}

func (reduced) extension(eta, kappa float64) float64 {
	return numeric.Langevin(numeric.Real(eta)).Value() + eta/kappa
}

func (reduced) energy(eta, kappa float64) float64 {
	return -numeric.LnSinhc(numeric.Real(eta)).Value() - 0.5*eta*eta/kappa
}

// cothMinusXCschSquare returns coth η − η/sinh²η, which vanishes like 2η/3.
func cothMinusXCschSquare(eta float64) float64 {
	if math.Abs(eta) < 0.1 {
		e2 := eta * eta
		return eta * (2.0/3 + e2*(-4.0/45+e2*(4.0/315-e2*8.0/4725)))
	}
	s := math.Sinh(eta)

	return 1/math.Tanh(eta) - eta/(s*s)
}
