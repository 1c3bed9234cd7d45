package blend

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gradix/curve"
)

// Blend combines the component curves into one composite grading curve.
//
// Algorithm:
//  1. Validate: non-empty request, every curve non-nil, no negative
//     proportion, proportion sum strictly positive.
//  2. Normalize proportions to sum to 1 (stable summation).
//  3. Build the union of all distinct sieve sizes across components.
//  4. At each union size, sum proportionᵢ × componentᵢ.PercentAt(size);
//     components that do not sample a size are read through clamped
//     linear interpolation, so differing sieve sets combine cleanly.
//  5. Assemble the (size, weighted percent) pairs into a new Curve and
//     run curve.Normalize on it — the weighted sum of monotone curves
//     is monotone in exact arithmetic, but float rounding at shared
//     boundary sizes can dip by an ulp and must be clamped.
//
// Properties (each covered in blend_test.go):
//   - a single component with any positive proportion reproduces its
//     (normalized) curve;
//   - identical components reproduce the shared curve regardless of
//     proportion split;
//   - uniformly rescaling all proportions never changes the result.
//
// Complexity: O(U·(N + log M)) time for N components with union size U
// and per-curve size M; O(U) memory.
func Blend(components []Component) (*curve.Curve, error) {
	if len(components) == 0 {
		return nil, ErrNoComponents
	}

	weights := make([]float64, len(components))
	for i, comp := range components {
		if comp.Curve == nil {
			return nil, fmt.Errorf("%w: component %d", ErrNilCurve, i)
		}
		if comp.Proportion < 0 {
			return nil, fmt.Errorf("%w: component %d has proportion %g", ErrNegativeProportion, i, comp.Proportion)
		}
		weights[i] = comp.Proportion
	}

	total := floats.Sum(weights)
	if total <= proportionEpsilon {
		return nil, fmt.Errorf("%w: sum %g", ErrZeroProportionSum, total)
	}
	floats.Scale(1/total, weights)

	union := sizeUnion(components)

	pts := make([]curve.SievePoint, len(union))
	for i, size := range union {
		var percent float64
		for j, comp := range components {
			percent += weights[j] * comp.Curve.PercentAt(size)
		}
		// Renormalized weights can sum to 1±ulp; pin the convex
		// combination back into [0,100] so curve.New never rejects it.
		if percent < 0 {
			percent = 0
		} else if percent > 100 {
			percent = 100
		}
		pts[i] = curve.SievePoint{SizeMM: size, PercentPassing: percent}
	}

	composite, err := curve.New(pts)
	if err != nil {
		// Unreachable with valid components: the union carries ≥2 unique
		// positive sizes and percents were pinned above.
		return nil, err
	}

	return composite.Normalize(), nil
}

// sizeUnion collects the distinct sieve sizes of all components, sorted
// ascending. Sizes are compared exactly: shared standard sieves are
// bit-identical across curves, and near-duplicates from differing lab
// sets are legitimate distinct samples.
func sizeUnion(components []Component) []float64 {
	var sizes []float64
	for _, comp := range components {
		for _, p := range comp.Curve.Points() {
			sizes = append(sizes, p.SizeMM)
		}
	}
	sort.Float64s(sizes)

	out := sizes[:1]
	for _, s := range sizes[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}

	return out
}
