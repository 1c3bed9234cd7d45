// errors.go — sentinel errors for the gradation package.

package gradation

import "errors"

// ErrNilCurve indicates Compute or Dx was called without a curve.
var ErrNilCurve = errors.New("gradation: nil curve")
