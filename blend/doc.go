// Package blend combines several grading curves into one composite
// curve under user-specified proportions.
//
// 🚀 What is blending?
//
//	A concrete mix rarely uses a single aggregate: sand, crushed stone
//	and filler each bring their own particle-size distribution, and the
//	mix designer controls only their mass proportions.  The composite
//	gradation is the proportion-weighted sum of the component curves:
//	  P(d) = Σ wᵢ · Pᵢ(d),  Σ wᵢ = 1
//
// ✨ Key features:
//   - Proportions are auto-normalized: {25, 75} and {0.25, 0.75} yield
//     the same composite — callers never pre-normalize.
//   - Component curves may sample entirely different sieve sets; the
//     composite is evaluated on the union of all sampled sizes with
//     each component read through clamped linear interpolation.
//   - The result is passed through curve.Normalize before returning:
//     weighted sums of monotone curves are monotone on paper, but
//     floating-point noise at shared sieve sizes is clamped away.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gradix/blend"
//
//	composite, err := blend.Blend([]blend.Component{
//	  {Curve: sand, Proportion: 35},
//	  {Curve: gravel, Proportion: 65},
//	})
//	if err != nil {
//	  // handle ErrNoComponents / ErrNilCurve /
//	  //        ErrNegativeProportion / ErrZeroProportionSum
//	}
//
// Performance:
//
//   - Time: O(U·(N + log M)) for N components, union size U, curve size M
//   - Memory: O(U)
//
// See example_test.go for a sand/gravel scenario.
package blend
