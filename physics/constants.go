package physics

import "math"

const (
	// BoltzmannConstant is k in J/K.
	BoltzmannConstant = 1.380649e-23

	// PlanckConstant is h in J·s.
	PlanckConstant = 6.62607015e-34
)

// ThermalEnergy returns k·T.
func ThermalEnergy(temperature float64) float64 {
	return BoltzmannConstant * temperature
}

// LnHingeFactor returns ln(8π²·m·ℓ²·kT/h²), the per-link contribution of the
// hinge mass to every absolute free energy.
func LnHingeFactor(hingeMass, linkLength, temperature float64) float64 {
	return math.Log(8 * math.Pi * math.Pi * hingeMass * linkLength * linkLength *
		ThermalEnergy(temperature) / (PlanckConstant * PlanckConstant))
}
