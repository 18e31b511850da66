// Package sampling draws randomized chain parameters for property-style
// cross-checks of the chain models.
//
// Overview:
//
//	A Parameters value carries tolerances, a loop count, and a
//	(reference, scale) Range per physical quantity. A Sampler turns it into
//	a deterministic stream of Draw values, each quantity sampled as
//
//	  reference + scale·(0.5 − u),  u ~ U[0, 1)
//
//	and the number of links uniformly in [NumberOfLinksMinimum, NumberOfLinksMaximum].
//
// Configuration:
//
//	DefaultParameters returns the stock harness values. ParseParameters
//	overlays a YAML document on top of them and validates the result, so a
//	file only needs the keys it changes:
//
//	  number_of_loops: 32
//	  nondimensional_force:
//	    reference: 10
//	    scale: 20
//
// Determinism:
//
//	The same Seed yields the same draws on every platform. Stream derives
//	independent substreams for parallel consumers; a *Sampler itself is not
//	safe for concurrent use.
package sampling
