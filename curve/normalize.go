package curve

import "fmt"

// Normalize repairs the cumulative-distribution invariant: percent
// passing must be non-decreasing as size increases.
//
// Algorithm (clamp-forward pass):
//
//	Walk points in ascending size order; whenever a point's percent is
//	below the running maximum, replace it with that maximum. Values are
//	only ever raised to the previous level, never lowered, so a single
//	pass suffices and the operation is idempotent:
//	Normalize(Normalize(c)) == Normalize(c).
//
// Typical inputs needing repair: hand-edited sieve tables and blended
// composites carrying floating-point noise at shared sieve sizes.
//
// Returns a new Curve; c is never mutated.
//
// Complexity: O(n).
func (c *Curve) Normalize() *Curve {
	pts := c.Points()
	for i := 1; i < len(pts); i++ {
		if pts[i].PercentPassing < pts[i-1].PercentPassing {
			pts[i].PercentPassing = pts[i-1].PercentPassing
		}
	}

	return &Curve{pts: pts}
}

// Smooth applies a centered moving average of the given odd width to
// interior points. The first and last points are left untouched so the
// curve's endpoints — its sampled extremes — survive exactly.
//
// window must be odd and ≥ 1 (1 is the identity); pass 0 to accept
// DefaultSmoothWindow. Near the ends the window shrinks to the indices
// that exist, keeping the average unweighted over actual samples.
//
// Smoothing can reintroduce tiny monotonicity violations on noisy
// input; run Normalize afterwards when the invariant matters.
//
// Returns ErrBadWindow for even or negative widths.
//
// Complexity: O(n·window).
func (c *Curve) Smooth(window int) (*Curve, error) {
	if window == 0 {
		window = DefaultSmoothWindow
	}
	if window < 1 || window%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWindow, window)
	}

	pts := c.Points()
	if window == 1 {
		return &Curve{pts: pts}, nil
	}

	half := window / 2
	src := c.pts
	for i := 1; i < len(src)-1; i++ {
		lo, hi := i-half, i+half
		if lo < 0 {
			lo = 0
		}
		if hi > len(src)-1 {
			hi = len(src) - 1
		}

		sum := 0.0
		for j := lo; j <= hi; j++ {
			sum += src[j].PercentPassing
		}
		pts[i].PercentPassing = sum / float64(hi-lo+1)
	}

	return &Curve{pts: pts}, nil
}
