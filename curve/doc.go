// Package curve provides the canonical grading-curve representation for
// sieve-analysis data, plus interpolation and normalization over it.
//
// 🚀 What is a grading curve?
//
//	A grading curve (particle-size distribution, PSD) maps sieve size in
//	millimeters to the cumulative mass percent passing that sieve.  It is
//	the fundamental record of aggregate gradation in concrete mix design:
//	  • table editors produce one from lab sieve results
//	  • blending combines several into a composite
//	  • gradation statistics and model fits are derived from one
//
// ✨ Key guarantees:
//   - Curves are immutable: every transformation returns a new Curve.
//   - Points are constructor-sorted ascending by size, sizes unique,
//     percents validated into [0,100].
//   - PercentAt clamps outside the sampled size range (unsampled tails
//     of a cumulative distribution are not extrapolated).
//   - SizeAt never divides by zero on flat (equal-percent) segments.
//   - Normalize repairs monotonicity with a clamp-forward pass and is
//     idempotent; Smooth preserves both endpoints exactly.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gradix/curve"
//
//	c, err := curve.New([]curve.SievePoint{
//	  {SizeMM: 0.15, PercentPassing: 6},
//	  {SizeMM: 0.30, PercentPassing: 10},
//	  {SizeMM: 4.75, PercentPassing: 40},
//	})
//	if err != nil {
//	  // handle ErrInvalidCurve
//	}
//	p := c.PercentAt(1.18)        // forward lookup, clamped
//	d, err := c.SizeAt(10)        // inverse lookup, ErrNoSolution possible
//	m := c.Normalize()            // monotone repair, new Curve
//
// Performance:
//
//   - PercentAt: O(log n) (binary search over sorted sizes)
//   - SizeAt:    O(n) (bracket scan)
//   - Normalize / Smooth: O(n)
//
// See example_test.go for worked scenarios.
package curve
