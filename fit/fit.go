package fit

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gradix/curve"
)

// Fit estimates a model of the requested family from the curve's
// sample points.
//
// Shared validation, before any family-specific work:
//   - non-nil curve;
//   - at least MinFitPoints samples (ErrInsufficientData);
//   - variance in sieve size (ErrDegenerateFit) — curve.New already
//     forbids duplicate sizes, but the guard stays: fitting code must
//     not rely on its callers' constructors.
//
// Family-specific behavior and failure modes are documented on
// FitFuller, FitRosinRammler and FitPolynomial.
func Fit(c *curve.Curve, family Family, opts Options) (Model, error) {
	switch family {
	case FamilyFuller:
		return FitFuller(c)
	case FamilyRosinRammler:
		return FitRosinRammler(c)
	case FamilyPolynomial:
		return FitPolynomial(c, opts.Degree)
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFamily, int(family))
	}
}

// samples validates the shared preconditions and splits the curve into
// parallel size/percent columns.
func samples(c *curve.Curve) (sizes, pcts []float64, err error) {
	if c == nil {
		return nil, nil, ErrNilCurve
	}
	if c.Len() < MinFitPoints {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInsufficientData, c.Len())
	}

	pts := c.Points()
	sizes = make([]float64, len(pts))
	pcts = make([]float64, len(pts))
	for i, p := range pts {
		sizes[i] = p.SizeMM
		pcts[i] = p.PercentPassing
	}

	// Zero variance in the independent variable: nothing to regress on.
	if floats.Max(sizes) == floats.Min(sizes) {
		return nil, nil, fmt.Errorf("%w: all sizes identical (%g mm)", ErrDegenerateFit, sizes[0])
	}

	return sizes, pcts, nil
}

// rSquared computes 1 − SSres/SStot of the model's predictions over the
// curve's own sample points, the comparison metric shared by all
// families.
//
// Constant observations (SStot = 0) are the one ambiguous case: a model
// matching the constant exactly fits perfectly (r² = 1), anything else
// explains none of a variance that does not exist (r² = 0).
func rSquared(m Model, sizes, pcts []float64) float64 {
	mean := floats.Sum(pcts) / float64(len(pcts))

	var ssRes, ssTot float64
	for i, d := range sizes {
		r := pcts[i] - m.PercentAt(d)
		ssRes += r * r
		t := pcts[i] - mean
		ssTot += t * t
	}

	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}

		return 0
	}

	return 1 - ssRes/ssTot
}

// domainOf is the size span of the fitted data.
func domainOf(c *curve.Curve) Domain {
	return Domain{MinSize: c.MinSize(), MaxSize: c.MaxSize()}
}
