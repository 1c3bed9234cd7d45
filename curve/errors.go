// errors.go — sentinel errors for the curve package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w wrapping at the call site;
//     sentinels are never wrapped with formatted strings at definition.
//   • No function in this package panics on user input.

package curve

import "errors"

// ErrInvalidCurve indicates malformed sieve data: fewer than MinPoints
// points, a duplicate sieve size, or a percent passing outside [0,100].
// Usage: if errors.Is(err, curve.ErrInvalidCurve) { /* reject input */ }.
var ErrInvalidCurve = errors.New("curve: invalid sieve data")

// ErrNoSolution indicates an inverse lookup target outside the curve's
// sampled percent range; there is no sieve size to report.
// Usage: if errors.Is(err, curve.ErrNoSolution) { /* show "—" */ }.
var ErrNoSolution = errors.New("curve: percent outside sampled range")

// ErrBadWindow indicates a smoothing window that is not a positive odd
// integer. Pass 0 to accept DefaultSmoothWindow.
var ErrBadWindow = errors.New("curve: smoothing window must be positive and odd")
