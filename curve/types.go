// Package curve defines the SievePoint and Curve value types.
package curve

// MinPoints is the minimum number of sieve points an interpolable curve
// must carry; with a single point there is no segment to interpolate.
const MinPoints = 2

// DefaultSmoothWindow is the moving-average width used by Smooth when
// the caller passes window = 0: each interior point is averaged with
// its two immediate neighbors.
const DefaultSmoothWindow = 3

// percent bounds of a cumulative passing curve.
const (
	minPercent = 0.0
	maxPercent = 100.0
)

// SievePoint is one sieve-analysis sample: the mesh opening in
// millimeters and the cumulative mass percent passing that opening.
//
// Fields:
//   - SizeMM         — sieve opening, strictly positive, millimeters.
//   - PercentPassing — cumulative percent in [0,100].
type SievePoint struct {
	SizeMM         float64
	PercentPassing float64
}

// Curve is an immutable grading curve: sieve points sorted ascending by
// size with unique sizes and validated percents.
//
// Construct with New; the zero Curve is not usable. Curves are safe for
// unsynchronized concurrent reads — no method mutates the receiver, and
// every transformation (Normalize, Smooth, blending) returns a new Curve.
type Curve struct {
	pts []SievePoint // sorted ascending by SizeMM, sizes unique
}
