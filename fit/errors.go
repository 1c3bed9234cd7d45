// errors.go — sentinel errors for the fit package.
//
// Error policy: sentinels only, errors.Is for branching, context
// attached with %w at the call site. See curve/errors.go.

package fit

import "errors"

// ErrNilCurve indicates a fit was requested without a curve.
var ErrNilCurve = errors.New("fit: nil curve")

// ErrInsufficientData indicates fewer usable points than MinFitPoints;
// two parameters against two points is interpolation, not estimation.
var ErrInsufficientData = errors.New("fit: need at least 3 points")

// ErrDegenerateFit indicates zero variance in the data the fit runs
// on — identical sizes, or a slope the model family cannot represent.
var ErrDegenerateFit = errors.New("fit: degenerate input")

// ErrBadFamily indicates an unknown Family value in Fit.
var ErrBadFamily = errors.New("fit: unknown model family")

// ErrBadDegree indicates a polynomial degree below 1.
var ErrBadDegree = errors.New("fit: polynomial degree must be at least 1")

// ErrNoConvergence indicates the iterative Rosin–Rammler optimizer
// failed to reach a minimum.
var ErrNoConvergence = errors.New("fit: optimizer did not converge")
