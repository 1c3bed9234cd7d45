// Package gradation derives the classical gradation statistics of a
// grading curve: characteristic D-sizes, uniformity and curvature
// coefficients, fineness modulus, and a qualitative classification.
//
// 🚀 What do the numbers mean?
//
//   - D10/D30/D60 — sieve size at which 10/30/60% of the mass passes;
//     D10 is the classical "effective size".
//   - Cu = D60/D10 — coefficient of uniformity: how wide the
//     distribution is.
//   - Cc = D30²/(D10·D60) — coefficient of curvature: how smoothly
//     the curve transitions between its extremes.
//   - Fineness modulus — Σ(cumulative % retained)/100 over the fixed
//     standard sieve set; the classical coarseness index of a sand.
//
// ✨ Key decisions:
//   - Every D-value (and Cu/Cc built on them) is optional: a curve that
//     never drops below 15% passing simply has no D10, and the record
//     says so with a nil field — not a missing map key, not a zero.
//   - Sieves absent from the sample are read through clamped linear
//     interpolation, so a lab set of any granularity works.
//   - Classification is a deterministic rule table; any missing input
//     short-circuits the affected line to "insufficient data".
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gradix/gradation"
//
//	params, err := gradation.Compute(c)
//	if err != nil { ... }
//	if params.D10 != nil {
//	  fmt.Printf("effective size %.2f mm\n", *params.D10)
//	}
//	cls := gradation.Classify(params)
//	fmt.Println(cls.Grading, "/", cls.Size, "/", cls.Quality)
//
// Complexity: O(n) per statistic; the whole Compute is O(n).
package gradation
