package gradation

import "github.com/katalvlaran/gradix/curve"

// Dx returns the sieve size at which the given cumulative percent of
// mass passes — D10 is Dx(c, 10), D60 is Dx(c, 60), and so on.
//
// Propagates curve.ErrNoSolution when the curve does not span the
// requested percentile.
func Dx(c *curve.Curve, percent float64) (float64, error) {
	if c == nil {
		return 0, ErrNilCurve
	}

	return c.SizeAt(percent)
}

// Compute derives the full Parameters record from a grading curve.
//
// Rules:
//   - D10/D30/D60 via inverse interpolation, each independently nil
//     when the curve's percent range does not reach the percentile.
//   - Cu = D60/D10 only when both exist and D10 > 0 (a zero effective
//     size would make the ratio meaningless, not infinite).
//   - Cc = D30²/(D10·D60) only when all three exist (D10 > 0 implied).
//   - FinenessModulus = Σ (100 − percent passing at sieve)/100 over
//     StandardSieves, reading unsampled sieves through interpolation.
//
// The only error is ErrNilCurve; every statistic the curve cannot
// support is a nil field, not a failure — the caller renders absence
// however it likes ("—" in a results table).
//
// Complexity: O(n) per D-value, O(n·log n) overall on tiny n; in
// practice microseconds.
func Compute(c *curve.Curve) (Parameters, error) {
	if c == nil {
		return Parameters{}, ErrNilCurve
	}

	var p Parameters
	p.D10 = percentile(c, percentileD10)
	p.D30 = percentile(c, percentileD30)
	p.D60 = percentile(c, percentileD60)

	if p.D10 != nil && p.D60 != nil && *p.D10 > 0 {
		cu := *p.D60 / *p.D10
		p.Cu = &cu

		if p.D30 != nil {
			cc := (*p.D30 * *p.D30) / (*p.D10 * *p.D60)
			p.Cc = &cc
		}
	}

	fm := 0.0
	for _, sieve := range StandardSieves {
		fm += c.PercentRetained(sieve) / 100
	}
	p.FinenessModulus = fm

	return p, nil
}

// percentile wraps the inverse lookup into the optional-field shape:
// nil on ErrNoSolution, the address of the size otherwise.
func percentile(c *curve.Curve, percent float64) *float64 {
	d, err := c.SizeAt(percent)
	if err != nil {
		// SizeAt's only failure mode is ErrNoSolution.
		return nil
	}

	return &d
}

// Classify reads Parameters through the deterministic rule table.
//
// Grading (needs Cu):     Cu > 4 → WellGraded, Cu < 2 → UniformlyGraded,
// otherwise PoorlyGraded.
// Size (needs D60):       D60 > 4.75 → CoarseAggregate,
// D60 > 0.075 → FineAggregate, otherwise Fines.
// Quality (needs Cu, Cc): 1 ≤ Cc ≤ 3 and Cu > 4 → GoodGradation,
// otherwise GapGradedOrUniform.
//
// A missing input short-circuits only its own line to InsufficientData;
// the remaining lines still classify.
func Classify(p Parameters) Classification {
	cls := Classification{
		Grading: InsufficientData,
		Size:    InsufficientData,
		Quality: InsufficientData,
	}

	if p.Cu != nil {
		switch {
		case *p.Cu > cuWellGraded:
			cls.Grading = WellGraded
		case *p.Cu < cuUniform:
			cls.Grading = UniformlyGraded
		default:
			cls.Grading = PoorlyGraded
		}
	}

	if p.D60 != nil {
		switch {
		case *p.D60 > coarseBoundary:
			cls.Size = CoarseAggregate
		case *p.D60 > finesBoundary:
			cls.Size = FineAggregate
		default:
			cls.Size = Fines
		}
	}

	if p.Cu != nil && p.Cc != nil {
		if *p.Cc >= ccGoodLow && *p.Cc <= ccGoodHigh && *p.Cu > cuWellGraded {
			cls.Quality = GoodGradation
		} else {
			cls.Quality = GapGradedOrUniform
		}
	}

	return cls
}
