package curve

import (
	"fmt"
	"math"
	"sort"
)

// PercentAt — forward lookup: cumulative percent passing at an arbitrary
// sieve size.
//
// Algorithm:
//  1. Clamp: size ≤ MinSize returns the first point's percent, and
//     size ≥ MaxSize the last point's. A cumulative distribution has
//     unsampled tails; inventing values beyond the sampled range would
//     fabricate data, so the nearest endpoint is the honest answer.
//  2. Otherwise binary-search the bracketing pair (sizes are sorted and
//     unique) and interpolate linearly between the two samples.
//
// Complexity: O(log n).
func (c *Curve) PercentAt(size float64) float64 {
	if size <= c.MinSize() {
		return c.pts[0].PercentPassing
	}
	if size >= c.MaxSize() {
		return c.pts[len(c.pts)-1].PercentPassing
	}

	// First index whose size is ≥ the query; the bracket is [i-1, i].
	i := sort.Search(len(c.pts), func(k int) bool { return c.pts[k].SizeMM >= size })
	lo, hi := c.pts[i-1], c.pts[i]
	if hi.SizeMM == size {
		return hi.PercentPassing
	}

	t := (size - lo.SizeMM) / (hi.SizeMM - lo.SizeMM)

	return lo.PercentPassing + t*(hi.PercentPassing-lo.PercentPassing)
}

// PercentRetained is the cumulative percent retained at size:
// 100 − PercentAt(size). Convenience for fineness-modulus style sums.
func (c *Curve) PercentRetained(size float64) float64 {
	return maxPercent - c.PercentAt(size)
}

// SizeAt — inverse lookup: the sieve size at which the given cumulative
// percent passes.
//
// Algorithm:
//  1. Scan consecutive point pairs in ascending size order for the first
//     bracket whose percents enclose the target.
//  2. Interpolate the size linearly within that bracket.
//  3. Flat bracket (both percents equal): any size in the segment is a
//     valid answer, so the boundary nearest the target percent is
//     returned — the lower one on an exact tie — instead of dividing by
//     the zero percent span.
//
// Returns ErrNoSolution when percent lies outside PercentRange: the
// curve simply does not sample that part of the distribution.
//
// Complexity: O(n).
func (c *Curve) SizeAt(percent float64) (float64, error) {
	for i := 1; i < len(c.pts); i++ {
		lo, hi := c.pts[i-1], c.pts[i]
		if percent < math.Min(lo.PercentPassing, hi.PercentPassing) ||
			percent > math.Max(lo.PercentPassing, hi.PercentPassing) {
			continue
		}
		// Degenerate flat segment: percent span is zero.
		if lo.PercentPassing == hi.PercentPassing {
			return lo.SizeMM, nil
		}

		t := (percent - lo.PercentPassing) / (hi.PercentPassing - lo.PercentPassing)

		return lo.SizeMM + t*(hi.SizeMM-lo.SizeMM), nil
	}

	lo, hi := c.PercentRange()

	return 0, fmt.Errorf("%w: %g%% not in sampled range [%g%%, %g%%]", ErrNoSolution, percent, lo, hi)
}
