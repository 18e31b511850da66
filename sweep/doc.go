// SPDX-License-Identifier: MIT

// Package sweep evaluates chain models over many independent inputs and
// measures how approximations converge.
//
// Parallel evaluation:
//
//	Every chain evaluation is a pure function of its inputs, so a sweep is
//	embarrassingly parallel. Map fans the inputs out over a bounded pool of
//	goroutines (golang.org/x/sync/errgroup), keeps the output order equal to
//	the input order, and cancels the remaining work on the first error.
//
//	  out, err := sweep.Map(ctx, forces, func(_ context.Context, eta float64) (float64, error) {
//	      return chain.Isotensional().NondimensionalEndToEndLengthPerLink(eta), nil
//	  }, sweep.WithWorkers(4))
//
// Grids:
//
//	Linspace and Logspace build the evenly and geometrically spaced inputs
//	the convergence checks run on.
//
// Convergence:
//
//	LogLogSlope fits log|error| against log(parameter) by least squares
//	(gonum stat.LinearRegression). An approximation whose error decays like
//	xᵖ has slope p: the Legendre transformation converges like N⁻¹, the
//	reduced extensible chain like κ⁻¹, the alternative one like κ⁻².
//
// Logging:
//
//	Map logs start and finish at Debug level through the logrus logger set
//	with WithLogger; the default logger discards everything.
package sweep
