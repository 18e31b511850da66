// Package swfjc models the square-well freely-jointed chain: every link
// length is free to take any value in [ℓ, ℓ + w] with equal energy, so the
// links are inextensible below ℓ and above ℓ + w and floppy in between.
//
// With α = 1 + w/ℓ the per-link isotensional partition function is
//
//	z(η) = 3/(α³ − 1) · ∫₁^α a² sinh(aη)/(aη) da
//	     = 3/(α³ − 1) · (α³g(αη) − g(η)),   g(u) = (u cosh u − sinh u)/u³,
//
// normalized so that w = 0 is exactly the freely-jointed chain. The closed
// form is used for wells wider than 1e-4·ℓ; narrower wells are integrated by
// Gauss–Legendre quadrature (gonum integrate/quad) to avoid the cancellation
// between the two g terms.
package swfjc
