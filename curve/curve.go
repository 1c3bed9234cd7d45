package curve

import (
	"fmt"
	"math"
	"sort"
)

// isFinite reports whether v is an ordinary number: not NaN, not ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// New validates raw sieve points and assembles a canonical Curve.
//
// Validation, in order:
//  1. at least MinPoints points — a single sample cannot be interpolated;
//  2. every field finite (NaN and ±Inf rejected) and every
//     PercentPassing within [0,100];
//  3. after sorting ascending by SizeMM: every size strictly positive
//     and no two points sharing a size.
//
// The input slice is copied; callers may reuse or mutate it afterwards.
// Monotonicity of percents is NOT required here — raw lab data and
// user-edited tables routinely violate it; run Normalize before any
// stage that assumes a proper cumulative distribution.
//
// Returns ErrInvalidCurve (wrapped with the offending detail) on any
// validation failure.
func New(points []SievePoint) (*Curve, error) {
	if len(points) < MinPoints {
		return nil, fmt.Errorf("%w: need at least %d points, got %d", ErrInvalidCurve, MinPoints, len(points))
	}

	// Copy before sorting so the caller's slice stays untouched.
	pts := make([]SievePoint, len(points))
	copy(pts, points)

	for _, p := range pts {
		// NaN compares false against every bound, so reject non-finite
		// values explicitly before the range checks.
		if !isFinite(p.SizeMM) || !isFinite(p.PercentPassing) {
			return nil, fmt.Errorf("%w: non-finite value at point (%g mm, %g%%)",
				ErrInvalidCurve, p.SizeMM, p.PercentPassing)
		}
		if p.PercentPassing < minPercent || p.PercentPassing > maxPercent {
			return nil, fmt.Errorf("%w: percent passing %g outside [0,100] at size %g mm",
				ErrInvalidCurve, p.PercentPassing, p.SizeMM)
		}
	}

	sort.Slice(pts, func(i, j int) bool { return pts[i].SizeMM < pts[j].SizeMM })

	if pts[0].SizeMM <= 0 {
		return nil, fmt.Errorf("%w: sieve size must be positive, got %g mm", ErrInvalidCurve, pts[0].SizeMM)
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].SizeMM == pts[i-1].SizeMM {
			return nil, fmt.Errorf("%w: duplicate sieve size %g mm", ErrInvalidCurve, pts[i].SizeMM)
		}
	}

	return &Curve{pts: pts}, nil
}

// Points returns a defensive copy of the curve's points, sorted
// ascending by size. Mutating the returned slice does not affect c.
func (c *Curve) Points() []SievePoint {
	out := make([]SievePoint, len(c.pts))
	copy(out, c.pts)

	return out
}

// Len reports the number of sieve points.
func (c *Curve) Len() int { return len(c.pts) }

// MinSize returns the smallest sampled sieve size, in millimeters.
func (c *Curve) MinSize() float64 { return c.pts[0].SizeMM }

// MaxSize returns the largest sampled sieve size, in millimeters.
func (c *Curve) MaxSize() float64 { return c.pts[len(c.pts)-1].SizeMM }

// PercentRange returns the smallest and largest percent passing present
// on the curve. For a normalized curve these are simply the first and
// last points' percents; for raw data the whole curve is scanned. The
// range bounds inverse lookups: SizeAt(p) has a solution iff
// lo ≤ p ≤ hi.
func (c *Curve) PercentRange() (lo, hi float64) {
	lo, hi = c.pts[0].PercentPassing, c.pts[0].PercentPassing
	for _, p := range c.pts[1:] {
		if p.PercentPassing < lo {
			lo = p.PercentPassing
		}
		if p.PercentPassing > hi {
			hi = p.PercentPassing
		}
	}

	return lo, hi
}
