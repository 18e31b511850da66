package efjc_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/polychain/chain"
	"github.com/katalvlaran/polychain/efjc"
	"github.com/katalvlaran/polychain/fjc"
	"github.com/katalvlaran/polychain/physics"
	"github.com/katalvlaran/polychain/sampling"
	"github.com/katalvlaran/polychain/sweep"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roomTemperature = 300.0

// stiffnessFor returns the link stiffness giving nondimensional stiffness
// kappa for a unit link at room temperature.
func stiffnessFor(kappa float64) float64 {
	return kappa * physics.ThermalEnergy(roomTemperature)
}

func mustNew(t *testing.T, n int, l, m, k float64) *efjc.EFJC {
	t.Helper()
	c, err := efjc.New(n, l, m, k)
	require.NoError(t, err)
	return c
}

// view is the isotensional surface shared by the exact and asymptotic forms.
type view interface {
	EndToEndLength(force, temperature float64) float64
	EndToEndLengthPerLink(force, temperature float64) float64
	NondimensionalEndToEndLength(eta, temperature float64) float64
	NondimensionalEndToEndLengthPerLink(eta, temperature float64) float64
	GibbsFreeEnergy(force, temperature float64) float64
	GibbsFreeEnergyPerLink(force, temperature float64) float64
	RelativeGibbsFreeEnergy(force, temperature float64) float64
	RelativeGibbsFreeEnergyPerLink(force, temperature float64) float64
	NondimensionalGibbsFreeEnergy(eta, temperature float64) float64
	NondimensionalGibbsFreeEnergyPerLink(eta, temperature float64) float64
	NondimensionalRelativeGibbsFreeEnergy(eta, temperature float64) float64
	NondimensionalRelativeGibbsFreeEnergyPerLink(eta, temperature float64) float64
	Legendre() efjc.Legendre
}

func views(c *efjc.EFJC) map[string]view {
	iso := c.Isotensional()
	return map[string]view{
		"exact":       iso,
		"alternative": iso.Asymptotic().Alternative(),
		"reduced":     iso.Asymptotic().Reduced(),
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := efjc.New(8, 1, 1, 0)
	assert.ErrorIs(t, err, chain.ErrInvalidLinkStiffness)
	_, err = efjc.New(8, 1, 1, math.Inf(1))
	assert.ErrorIs(t, err, chain.ErrInvalidLinkStiffness)
	_, err = efjc.New(0, 1, 1, 1)
	assert.ErrorIs(t, err, chain.ErrInvalidNumberOfLinks)

	c := mustNew(t, 8, 1, 1, stiffnessFor(50))
	assert.InEpsilon(t, 50.0, c.NondimensionalLinkStiffness(roomTemperature), 1e-12)
}

// TestExact_ReferenceValues pins the exact closed form at a few points.
func TestExact_ReferenceValues(t *testing.T) {
	cases := []struct {
		eta, kappa  float64
		energy, gam float64
	}{
		{1, 50, -0.19736117517459661, 0.3445133362764108},
		{3, 5, -2.577565913402885, 1.3933632258399378},
		{10, 500, -7.124070351761865, 0.9219607882822981},
		{0.3, 1, -0.7313343343062652, 0.5085920218067104},
	}
	for _, tc := range cases {
		c := mustNew(t, 4, 1, 1, stiffnessFor(tc.kappa))
		iso := c.Isotensional()
		// strip −½ln(2πkT/k) and the hinge-mass term
		got := iso.NondimensionalGibbsFreeEnergyPerLink(tc.eta, roomTemperature) +
			0.5*math.Log(2*math.Pi*physics.ThermalEnergy(roomTemperature)/c.LinkStiffness) +
			c.LnHingeFactor(roomTemperature)
		assert.InEpsilonf(t, tc.energy, got, 1e-10, "eta=%g kappa=%g", tc.eta, tc.kappa)
		assert.InEpsilonf(t, tc.gam, iso.NondimensionalEndToEndLengthPerLink(tc.eta, roomTemperature), 1e-9,
			"eta=%g kappa=%g", tc.eta, tc.kappa)
	}
}

// TestViews_ExtensionIsForceDerivative checks γ = −∂φ/∂η by central
// differences for every view, including across the series cutoff.
func TestViews_ExtensionIsForceDerivative(t *testing.T) {
	const h = 1e-5
	for _, kappa := range []float64{5, 40, 900} {
		for name, v := range views(mustNew(t, 6, 1, 1, stiffnessFor(kappa))) {
			for _, eta := range []float64{0.01, 0.05, 0.3, 2, 15} {
				dphi := (v.NondimensionalRelativeGibbsFreeEnergyPerLink(eta+h, roomTemperature) -
					v.NondimensionalRelativeGibbsFreeEnergyPerLink(eta-h, roomTemperature)) / (2 * h)
				assert.InEpsilonf(t, -dphi, v.NondimensionalEndToEndLengthPerLink(eta, roomTemperature), 1e-6,
					"%s kappa=%g eta=%g", name, kappa, eta)
			}
		}
	}
}

func TestViews_RelativeZero(t *testing.T) {
	for name, v := range views(mustNew(t, 6, 1, 1, stiffnessFor(70))) {
		assert.Equal(t, 0.0, v.NondimensionalRelativeGibbsFreeEnergy(0, roomTemperature), name)
		assert.Equal(t, 0.0, v.Legendre().NondimensionalRelativeHelmholtzFreeEnergy(0, roomTemperature), name)
		assert.Equal(t, 0.0, v.NondimensionalEndToEndLengthPerLink(0, roomTemperature), name)
		assert.InDelta(t,
			-v.NondimensionalEndToEndLengthPerLink(0.7, roomTemperature),
			v.NondimensionalEndToEndLengthPerLink(-0.7, roomTemperature), 1e-15, name)
	}
}

// TestExact_SeriesBranch checks the small-force series joins the closed form.
func TestExact_SeriesBranch(t *testing.T) {
	for _, kappa := range []float64{1, 10, 100, 1e4} {
		iso := mustNew(t, 5, 1, 1, stiffnessFor(kappa)).Isotensional()
		below := iso.NondimensionalEndToEndLengthPerLink(math.Nextafter(0.05, 0), roomTemperature)
		above := iso.NondimensionalEndToEndLengthPerLink(0.05, roomTemperature)
		assert.InEpsilonf(t, above, below, 1e-8, "kappa=%g", kappa)
		below = iso.NondimensionalRelativeGibbsFreeEnergyPerLink(math.Nextafter(0.05, 0), roomTemperature)
		above = iso.NondimensionalRelativeGibbsFreeEnergyPerLink(0.05, roomTemperature)
		assert.InEpsilonf(t, above, below, 1e-8, "kappa=%g", kappa)
	}
}

// check is one identity evaluated on a draw: got must match want.
type check struct {
	label     string
	want, got float64
}

// consistencyChecks evaluates every identity between the dimensional,
// nondimensional, total and per-link forms of each view for one draw.
func consistencyChecks(d sampling.Draw) ([]check, error) {
	c, err := efjc.New(d.NumberOfLinks, d.LinkLength, d.HingeMass, d.LinkStiffness())
	if err != nil {
		return nil, err
	}
	eta, f, T := d.NondimensionalForce, d.Force(), d.Temperature
	kT := physics.ThermalEnergy(T)
	n := float64(d.NumberOfLinks)

	out := []check{{"stiffness", d.NondimensionalLinkStiffness, c.NondimensionalLinkStiffness(T)}}
	for name, v := range views(c) {
		leg := v.Legendre()
		gamma := v.NondimensionalEndToEndLengthPerLink(eta, T)
		out = append(out,
			check{name + " length", v.NondimensionalEndToEndLength(eta, T), v.EndToEndLength(f, T) / d.LinkLength},
			check{name + " length per link", v.NondimensionalEndToEndLengthPerLink(eta, T), v.EndToEndLengthPerLink(f, T) / d.LinkLength},
			check{name + " length total", n * gamma, v.NondimensionalEndToEndLength(eta, T)},
			check{name + " gibbs", v.NondimensionalGibbsFreeEnergy(eta, T), v.GibbsFreeEnergy(f, T) / kT},
			check{name + " gibbs per link", v.NondimensionalGibbsFreeEnergyPerLink(eta, T), v.GibbsFreeEnergyPerLink(f, T) / kT},
			check{name + " relative gibbs", v.NondimensionalRelativeGibbsFreeEnergy(eta, T), v.RelativeGibbsFreeEnergy(f, T) / kT},
			check{name + " relative gibbs per link", v.NondimensionalRelativeGibbsFreeEnergyPerLink(eta, T), v.RelativeGibbsFreeEnergyPerLink(f, T) / kT},
			check{name + " relative gibbs total", n * v.NondimensionalRelativeGibbsFreeEnergyPerLink(eta, T), v.NondimensionalRelativeGibbsFreeEnergy(eta, T)},
			check{name + " relative gibbs reference",
				v.NondimensionalGibbsFreeEnergy(eta, T) - v.NondimensionalGibbsFreeEnergy(0, T),
				v.NondimensionalRelativeGibbsFreeEnergy(eta, T)},
			check{name + " legendre", v.NondimensionalGibbsFreeEnergyPerLink(eta, T) + eta*gamma, leg.NondimensionalHelmholtzFreeEnergyPerLink(eta, T)},
			check{name + " relative legendre", v.NondimensionalRelativeGibbsFreeEnergyPerLink(eta, T) + eta*gamma, leg.NondimensionalRelativeHelmholtzFreeEnergyPerLink(eta, T)},
			check{name + " helmholtz", leg.NondimensionalHelmholtzFreeEnergy(eta, T), leg.HelmholtzFreeEnergy(f, T) / kT},
			check{name + " helmholtz per link", leg.NondimensionalHelmholtzFreeEnergyPerLink(eta, T), leg.HelmholtzFreeEnergyPerLink(f, T) / kT},
			check{name + " relative helmholtz", leg.NondimensionalRelativeHelmholtzFreeEnergy(eta, T), leg.RelativeHelmholtzFreeEnergy(f, T) / kT},
			check{name + " relative helmholtz per link", leg.NondimensionalRelativeHelmholtzFreeEnergyPerLink(eta, T), leg.RelativeHelmholtzFreeEnergyPerLink(f, T) / kT},
		)
	}

	return out, nil
}

// TestViews_Consistency fans the randomized draws out over sweep.Map and
// checks every identity of every view.
func TestViews_Consistency(t *testing.T) {
	p := sampling.DefaultParameters()
	draws := sampling.NewSampler(p).Draws()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	results, err := sweep.Map(context.Background(), draws,
		func(_ context.Context, d sampling.Draw) ([]check, error) { return consistencyChecks(d) },
		sweep.WithWorkers(4), sweep.WithLogger(logger))
	require.NoError(t, err)
	require.Len(t, results, len(draws))

	for i, checks := range results {
		require.NotEmpty(t, checks)
		for _, c := range checks {
			assert.Truef(t, sweep.Converged(c.want, c.got, p.AbsTol, p.RelTol),
				"draw %d %s: want %g got %g", i, c.label, c.want, c.got)
		}
	}
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "sweep: done", hook.LastEntry().Message)
}

// TestAsymptotic_Convergence checks the alternative form approaches the
// exact extension like κ⁻² and the reduced one like κ⁻¹.
func TestAsymptotic_Convergence(t *testing.T) {
	p := sampling.DefaultParameters()
	kappas, err := sweep.Logspace(100, 1600, 5)
	require.NoError(t, err)
	for _, eta := range []float64{0.5, 1, 2} {
		alt := make([]float64, len(kappas))
		red := make([]float64, len(kappas))
		for i, kappa := range kappas {
			iso := mustNew(t, 10, 1, 1, stiffnessFor(kappa)).Isotensional()
			want := iso.NondimensionalEndToEndLengthPerLink(eta, roomTemperature)
			alt[i] = iso.Asymptotic().Alternative().NondimensionalEndToEndLengthPerLink(eta, roomTemperature)/want - 1
			red[i] = iso.Asymptotic().Reduced().NondimensionalEndToEndLengthPerLink(eta, roomTemperature)/want - 1
		}
		slope, err := sweep.LogLogSlope(kappas, alt)
		require.NoError(t, err)
		assert.InDeltaf(t, -2.0, slope, p.LogLogTol, "alternative eta=%g", eta)
		slope, err = sweep.LogLogSlope(kappas, red)
		require.NoError(t, err)
		assert.InDeltaf(t, -1.0, slope, p.LogLogTol, "reduced eta=%g", eta)
	}
}

// TestExact_RigidLimit checks a very stiff chain behaves like the FJC.
func TestExact_RigidLimit(t *testing.T) {
	rigid, err := fjc.New(10, 1, 1)
	require.NoError(t, err)
	iso := mustNew(t, 10, 1, 1, stiffnessFor(1e7)).Isotensional()
	for _, eta := range []float64{0.02, 0.5, 3, 20} {
		assert.InEpsilonf(t,
			rigid.Isotensional().NondimensionalEndToEndLengthPerLink(eta),
			iso.NondimensionalEndToEndLengthPerLink(eta, roomTemperature), 1e-5, "eta=%g", eta)
		assert.InDeltaf(t,
			rigid.Isotensional().NondimensionalRelativeGibbsFreeEnergyPerLink(eta),
			iso.NondimensionalRelativeGibbsFreeEnergyPerLink(eta, roomTemperature), 1e-4, "eta=%g", eta)
	}
}
