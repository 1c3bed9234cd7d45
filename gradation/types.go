// Package gradation defines the derived-statistics record types.
package gradation

// StandardSieves is the fixed sieve set, in millimeters, over which
// the fineness modulus is accumulated (the classic 9.5 mm…0.15 mm
// stack of ASTM C136-style sieve analysis).
var StandardSieves = []float64{9.5, 4.75, 2.36, 1.18, 0.60, 0.30, 0.15}

// Percentile targets of the characteristic D-sizes.
const (
	percentileD10 = 10.0
	percentileD30 = 30.0
	percentileD60 = 60.0
)

// Classification rule-table thresholds.
const (
	cuWellGraded   = 4.0   // Cu above this → well graded
	cuUniform      = 2.0   // Cu below this → uniformly graded
	coarseBoundary = 4.75  // D60 above this → coarse aggregate (mm)
	finesBoundary  = 0.075 // D60 above this → fine aggregate, else fines (mm)
	ccGoodLow      = 1.0   // good-gradation Cc band, lower bound
	ccGoodHigh     = 3.0   // good-gradation Cc band, upper bound
)

// Classification labels. Exported so callers can switch on them without
// string literals.
const (
	WellGraded      = "well graded"
	UniformlyGraded = "uniformly graded"
	PoorlyGraded    = "poorly graded"

	CoarseAggregate = "coarse aggregate"
	FineAggregate   = "fine aggregate"
	Fines           = "fines"

	GoodGradation      = "good gradation"
	GapGradedOrUniform = "gap graded or uniform"
	InsufficientData   = "insufficient data"
)

// Parameters is the flat record of derived gradation statistics.
//
// D10, D30 and D60 are nil when the curve does not span the requested
// percentile — a coarse curve that starts at 15% passing has no D10,
// and that absence is a typed state. Cu requires D10 and D60 (with
// D10 > 0); Cc additionally requires D30. FinenessModulus always
// exists: clamped interpolation defines every standard sieve.
type Parameters struct {
	D10, D30, D60   *float64 // characteristic sizes, mm
	Cu, Cc          *float64 // uniformity and curvature coefficients
	FinenessModulus float64
}

// Classification is the qualitative reading of Parameters: one label
// per rule-table line. Lines with missing inputs carry
// InsufficientData.
type Classification struct {
	Grading string // WellGraded / UniformlyGraded / PoorlyGraded
	Size    string // CoarseAggregate / FineAggregate / Fines
	Quality string // GoodGradation / GapGradedOrUniform
}
