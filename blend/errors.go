// errors.go — sentinel errors for the blend package.
//
// Error policy: sentinels only, errors.Is for branching, context
// attached with %w at the call site. See curve/errors.go.

package blend

import "errors"

// ErrNoComponents indicates an empty blend request.
var ErrNoComponents = errors.New("blend: at least one component required")

// ErrNilCurve indicates a component without a curve.
var ErrNilCurve = errors.New("blend: component curve is nil")

// ErrNegativeProportion indicates a component with a negative weight;
// mass proportions cannot be negative.
var ErrNegativeProportion = errors.New("blend: negative proportion")

// ErrZeroProportionSum indicates that all proportions sum to (near)
// zero — the one unrecoverable blend input: there is no scale at which
// the weights describe a mix. Any strictly positive sum is auto-
// normalized instead of rejected.
var ErrZeroProportionSum = errors.New("blend: proportions sum to zero")
