// Package fit defines the model families, options and fitted-model types.
package fit

import "math"

// MinFitPoints is the minimum sample count any fit accepts: with three
// points a two-parameter model still has one degree of freedom left.
const MinFitPoints = 3

// DefaultPolynomialDegree is the degree used when Options.Degree is 0:
// a cubic captures the S-shape of typical gradings without ringing.
const DefaultPolynomialDegree = 3

// Family selects the model shape to fit.
type Family int

const (
	// FamilyFuller — power law P(d) = 100·(d/d_max)^q, the
	// Gates–Gaudin–Schumann / Fuller–Thompson maximum-density model.
	FamilyFuller Family = iota

	// FamilyRosinRammler — P(d) = 100·(1 − exp(−ln2·(d/d50)^n)),
	// the Weibull-type distribution of crushed and milled materials.
	FamilyRosinRammler

	// FamilyPolynomial — empirical P(d) = Σ cₖ·dᵏ of Options.Degree.
	FamilyPolynomial
)

// String names the family for logs and error context.
func (f Family) String() string {
	switch f {
	case FamilyFuller:
		return "Fuller"
	case FamilyRosinRammler:
		return "RosinRammler"
	case FamilyPolynomial:
		return "Polynomial"
	default:
		return "unknown"
	}
}

// Options configures Fit.
//
// Fields:
//   - Degree — polynomial degree (FamilyPolynomial only); 0 means
//     DefaultPolynomialDegree. Degrees above n−1 are clamped to n−1 so
//     small curves still fit exactly rather than failing.
type Options struct {
	Degree int
}

// DefaultOptions returns the canonical configuration.
func DefaultOptions() Options {
	return Options{Degree: DefaultPolynomialDegree}
}

// Domain is the sieve-size interval, in millimeters, over which a fit
// was computed. Model predictions outside it are extrapolations.
type Domain struct {
	MinSize, MaxSize float64
}

// Model is a fitted distribution: evaluable, comparable by r², and
// tagged with its family and fit domain. Concrete types Fuller,
// RosinRammler and Polynomial expose the estimated parameters.
type Model interface {
	// Family reports which model shape this is.
	Family() Family
	// PercentAt predicts cumulative percent passing at a sieve size,
	// clamped into [0,100].
	PercentAt(size float64) float64
	// RSquared is 1 − SSres/SStot over the fitted curve's own samples.
	RSquared() float64
	// Domain is the size interval the fit was computed on.
	Domain() Domain
}

// Fuller is the fitted power-law model P(d) = 100·(d/DMax)^Exponent.
type Fuller struct {
	DMax     float64 // size at which 100% passes, mm
	Exponent float64 // grading exponent q (0.5 is the classical Fuller value)
	R2       float64
	Span     Domain
}

// Family implements Model.
func (m Fuller) Family() Family { return FamilyFuller }

// PercentAt implements Model. Above DMax the power law exceeds 100,
// which has no physical meaning for a passing percentage; the value is
// clamped.
func (m Fuller) PercentAt(size float64) float64 {
	if size <= 0 {
		return 0
	}

	return clampPercent(100 * math.Pow(size/m.DMax, m.Exponent))
}

// RSquared implements Model.
func (m Fuller) RSquared() float64 { return m.R2 }

// Domain implements Model.
func (m Fuller) Domain() Domain { return m.Span }

// RosinRammler is the fitted model
// P(d) = 100·(1 − exp(−ln2·(d/D50)^N)); D50 is the literal median size.
type RosinRammler struct {
	D50  float64 // median size, mm
	N    float64 // uniformity exponent; higher = narrower distribution
	R2   float64
	Span Domain
}

// Family implements Model.
func (m RosinRammler) Family() Family { return FamilyRosinRammler }

// PercentAt implements Model.
func (m RosinRammler) PercentAt(size float64) float64 {
	if size <= 0 {
		return 0
	}

	return clampPercent(100 * (1 - math.Exp(-math.Ln2*math.Pow(size/m.D50, m.N))))
}

// RSquared implements Model.
func (m RosinRammler) RSquared() float64 { return m.R2 }

// Domain implements Model.
func (m RosinRammler) Domain() Domain { return m.Span }

// Polynomial is the fitted empirical model P(d) = Σ Coefficients[k]·dᵏ,
// coefficients in ascending power order.
type Polynomial struct {
	Coefficients []float64
	R2           float64
	Span         Domain
}

// Family implements Model.
func (m Polynomial) Family() Family { return FamilyPolynomial }

// PercentAt implements Model (Horner evaluation, clamped).
func (m Polynomial) PercentAt(size float64) float64 {
	v := 0.0
	for k := len(m.Coefficients) - 1; k >= 0; k-- {
		v = v*size + m.Coefficients[k]
	}

	return clampPercent(v)
}

// RSquared implements Model.
func (m Polynomial) RSquared() float64 { return m.R2 }

// Domain implements Model.
func (m Polynomial) Domain() Domain { return m.Span }

// clampPercent pins a model prediction into the physical [0,100] range.
func clampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
