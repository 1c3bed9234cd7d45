package fit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gradix/curve"
)

// FitPolynomial estimates P(d) = Σ cₖ·dᵏ of the given degree by
// ordinary least squares over the curve's (size, percent) pairs.
//
// The Vandermonde design matrix is solved through a QR factorization
// rather than the normal equations: squaring the condition number of a
// Vandermonde system built from sizes spanning three decades is how
// polynomial fits quietly fall apart.
//
// degree 0 is the default sentinel and selects DefaultPolynomialDegree;
// degrees above n−1 are clamped to n−1 (the interpolating polynomial)
// so small curves still fit; only negative degrees fail with
// ErrBadDegree.
//
// Complexity: O(n·k²) for n points, degree k.
func FitPolynomial(c *curve.Curve, degree int) (Model, error) {
	sizes, pcts, err := samples(c)
	if err != nil {
		return nil, err
	}

	if degree == 0 {
		degree = DefaultPolynomialDegree
	}
	if degree < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDegree, degree)
	}
	if degree > len(sizes)-1 {
		degree = len(sizes) - 1
	}

	n, k := len(sizes), degree+1
	a := mat.NewDense(n, k, nil)
	for i, d := range sizes {
		v := 1.0
		for j := 0; j < k; j++ {
			a.Set(i, j, v)
			v *= d
		}
	}
	b := mat.NewVecDense(n, pcts)

	var qr mat.QR
	qr.Factorize(a)

	var x mat.VecDense
	if err = qr.SolveVecTo(&x, false, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateFit, err)
	}

	coeffs := make([]float64, k)
	copy(coeffs, x.RawVector().Data)

	m := Polynomial{
		Coefficients: coeffs,
		Span:         domainOf(c),
	}
	m.R2 = rSquared(m, sizes, pcts)

	return m, nil
}
