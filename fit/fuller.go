package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/gradix/curve"
)

// FitFuller estimates the Fuller / Gates–Gaudin–Schumann power law
// P(d) = 100·(d/d_max)^q in closed form.
//
// Linearization: taking logs of both sides,
//
//	log(P/100) = q·log(d) − q·log(d_max)
//
// which is ordinary least squares of y = log(P/100) on x = log(d):
// the slope is the exponent q and d_max = exp(−intercept/q).
//
// Points with percent ≤ 0 are excluded before the transform — zero
// passing has no logarithm and carries no information about the power
// law's shape. If fewer than two usable points remain the fit fails
// with ErrInsufficientData; a non-positive estimated exponent (percent
// falling as size grows) fails with ErrDegenerateFit, since the model
// family cannot represent it.
//
// r² is reported in percent space over ALL sample points, excluded
// ones included, so it stays comparable with the other families.
//
// Complexity: O(n).
func FitFuller(c *curve.Curve) (Model, error) {
	sizes, pcts, err := samples(c)
	if err != nil {
		return nil, err
	}

	var xs, ys []float64
	for i, p := range pcts {
		if p <= 0 {
			continue
		}
		xs = append(xs, math.Log(sizes[i]))
		ys = append(ys, math.Log(p/100))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("%w: only %d points with positive percent", ErrInsufficientData, len(xs))
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	if !(slope > 0) || math.IsInf(intercept, 0) || math.IsNaN(intercept) {
		return nil, fmt.Errorf("%w: log-log slope %g not a positive exponent", ErrDegenerateFit, slope)
	}

	m := Fuller{
		DMax:     math.Exp(-intercept / slope),
		Exponent: slope,
		Span:     domainOf(c),
	}
	m.R2 = rSquared(m, sizes, pcts)

	return m, nil
}
