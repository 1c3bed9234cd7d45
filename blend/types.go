// Package blend defines the blend-request component type.
package blend

import "github.com/katalvlaran/gradix/curve"

// proportionEpsilon — proportion sums at or below this magnitude are
// treated as zero and rejected; dividing by them would amplify noise
// into nonsense percents.
const proportionEpsilon = 1e-12

// Component is one entry of a blend request: an aggregate's grading
// curve and its proportion in the mix.
//
// Proportion is a relative weight, not a percentage: any positive scale
// works ({1, 3} ≡ {25, 75} ≡ {0.25, 0.75}), because Blend normalizes
// the weights to sum to 1 before combining. A zero proportion is legal
// and contributes nothing; negative proportions are rejected.
type Component struct {
	Curve      *curve.Curve
	Proportion float64
}
