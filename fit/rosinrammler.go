package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/gradix/curve"
)

// rrInitialN is the uniformity exponent the optimizer starts from;
// n ≈ 1 is the middle of the range crushed aggregates actually show.
const rrInitialN = 1.0

// FitRosinRammler estimates the Rosin–Rammler distribution
//
//	P(d) = 100·(1 − exp(−ln2·(d/d50)^n))
//
// by nonlinear least squares: the sum of squared residuals between
// model and sample percents, at the curve's own sizes, is minimized
// with derivative-free Nelder–Mead.
//
// Parameterization details:
//   - The ln2 factor makes d50 the literal median: P(d50) = 50 exactly,
//     whatever n is.
//   - The search runs over (log d50, log n), so both parameters stay
//     positive without constrained optimization; the simplex cannot
//     step into a negative median.
//   - Initial d50 is the curve's own 50th percentile when sampled,
//     falling back to the geometric center of the size range; initial
//     n is rrInitialN.
//
// Fails with ErrNoConvergence when the optimizer reports failure.
//
// Complexity: O(n) per objective evaluation; the simplex typically
// needs a few hundred evaluations on curves this size.
func FitRosinRammler(c *curve.Curve) (Model, error) {
	sizes, pcts, err := samples(c)
	if err != nil {
		return nil, err
	}

	d50 := initialMedian(c)

	objective := func(x []float64) float64 {
		m := RosinRammler{D50: math.Exp(x[0]), N: math.Exp(x[1])}
		var ss float64
		for i, d := range sizes {
			r := pcts[i] - m.PercentAt(d)
			ss += r * r
		}

		return ss
	}

	problem := optimize.Problem{Func: objective}
	x0 := []float64{math.Log(d50), math.Log(rrInitialN)}

	result, err := optimize.Minimize(problem, x0, nil, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoConvergence, err)
	}
	if err = result.Status.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoConvergence, err)
	}

	m := RosinRammler{
		D50:  math.Exp(result.X[0]),
		N:    math.Exp(result.X[1]),
		Span: domainOf(c),
	}
	m.R2 = rSquared(m, sizes, pcts)

	return m, nil
}

// initialMedian seeds d50: the curve's own median size when the 50%
// percentile is sampled, otherwise the geometric midpoint of the size
// range (sizes span decades, so the arithmetic midpoint would start
// the simplex far into the coarse tail).
func initialMedian(c *curve.Curve) float64 {
	if d, err := c.SizeAt(50); err == nil && d > 0 {
		return d
	}

	return math.Sqrt(c.MinSize() * c.MaxSize())
}
