package blend_test

import (
	"testing"

	"github.com/katalvlaran/gradix/blend"
	"github.com/katalvlaran/gradix/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustCurve builds a curve from (size, percent) pairs, failing the test
// on fixture errors.
func mustCurve(t *testing.T, pairs ...[2]float64) *curve.Curve {
	t.Helper()

	pts := make([]curve.SievePoint, len(pairs))
	for i, p := range pairs {
		pts[i] = curve.SievePoint{SizeMM: p[0], PercentPassing: p[1]}
	}
	c, err := curve.New(pts)
	require.NoError(t, err, "test fixture must be a valid curve")

	return c
}

// sand and gravel are the two fixtures used across the blend suite:
// a fine curve sampled on small sieves and a coarse one on large sieves,
// with only 4.75 mm in common.
func sand(t *testing.T) *curve.Curve {
	t.Helper()

	return mustCurve(t,
		[2]float64{0.15, 10}, [2]float64{0.60, 40}, [2]float64{2.36, 80}, [2]float64{4.75, 100},
	)
}

func gravel(t *testing.T) *curve.Curve {
	t.Helper()

	return mustCurve(t,
		[2]float64{4.75, 5}, [2]float64{9.5, 40}, [2]float64{19, 80}, [2]float64{37.5, 100},
	)
}

// assertCurvesEqual compares two curves point by point within tol.
func assertCurvesEqual(t *testing.T, want, got *curve.Curve, tol float64) {
	t.Helper()

	wp, gp := want.Points(), got.Points()
	require.Len(t, gp, len(wp), "curves must sample the same sizes")
	for i := range wp {
		assert.InDelta(t, wp[i].SizeMM, gp[i].SizeMM, tol, "size at index %d", i)
		assert.InDelta(t, wp[i].PercentPassing, gp[i].PercentPassing, tol, "percent at index %d", i)
	}
}

// TestBlend_EmptyRequest verifies that a blend with no components fails
// with ErrNoComponents.
func TestBlend_EmptyRequest(t *testing.T) {
	_, err := blend.Blend(nil)
	assert.ErrorIs(t, err, blend.ErrNoComponents, "empty request must error")
}

// TestBlend_NilCurve verifies that a component without a curve fails
// with ErrNilCurve.
func TestBlend_NilCurve(t *testing.T) {
	_, err := blend.Blend([]blend.Component{{Curve: nil, Proportion: 1}})
	assert.ErrorIs(t, err, blend.ErrNilCurve, "nil component curve must error")
}

// TestBlend_NegativeProportion verifies rejection of negative weights.
func TestBlend_NegativeProportion(t *testing.T) {
	_, err := blend.Blend([]blend.Component{
		{Curve: sand(t), Proportion: 1.5},
		{Curve: gravel(t), Proportion: -0.5},
	})
	assert.ErrorIs(t, err, blend.ErrNegativeProportion, "negative weight must error")
}

// TestBlend_ZeroProportionSum verifies the one unrecoverable input:
// weights summing to zero cannot be normalized.
func TestBlend_ZeroProportionSum(t *testing.T) {
	_, err := blend.Blend([]blend.Component{
		{Curve: sand(t), Proportion: 0},
		{Curve: gravel(t), Proportion: 0},
	})
	assert.ErrorIs(t, err, blend.ErrZeroProportionSum, "zero-sum weights must error")
}

// TestBlend_SingleComponentIdentity verifies that blending one curve
// with proportion 1 reproduces that curve.
func TestBlend_SingleComponentIdentity(t *testing.T) {
	s := sand(t)

	got, err := blend.Blend([]blend.Component{{Curve: s, Proportion: 1}})
	require.NoError(t, err)
	assertCurvesEqual(t, s.Normalize(), got, 1e-9)
}

// TestBlend_SingleComponentAnyWeight verifies that the single-component
// identity holds for any positive weight, not just 1.
func TestBlend_SingleComponentAnyWeight(t *testing.T) {
	s := sand(t)

	got, err := blend.Blend([]blend.Component{{Curve: s, Proportion: 37.5}})
	require.NoError(t, err)
	assertCurvesEqual(t, s.Normalize(), got, 1e-9)
}

// TestBlend_IdenticalCurvesIdentity verifies that any proportion split
// between identical curves reproduces the shared curve.
func TestBlend_IdenticalCurvesIdentity(t *testing.T) {
	s := sand(t)

	got, err := blend.Blend([]blend.Component{
		{Curve: s, Proportion: 0.3},
		{Curve: s, Proportion: 0.7},
	})
	require.NoError(t, err)
	assertCurvesEqual(t, s.Normalize(), got, 1e-9)
}

// TestBlend_ScaleInvariance verifies that uniformly rescaling all
// proportions never changes the composite: {25,75} ≡ {0.25,0.75}.
func TestBlend_ScaleInvariance(t *testing.T) {
	s, g := sand(t), gravel(t)

	a, err := blend.Blend([]blend.Component{
		{Curve: s, Proportion: 25},
		{Curve: g, Proportion: 75},
	})
	require.NoError(t, err)

	b, err := blend.Blend([]blend.Component{
		{Curve: s, Proportion: 0.25},
		{Curve: g, Proportion: 0.75},
	})
	require.NoError(t, err)

	assertCurvesEqual(t, a, b, 1e-9)
}

// TestBlend_UnionOfSizes verifies that the composite samples every
// distinct size of every component exactly once.
func TestBlend_UnionOfSizes(t *testing.T) {
	got, err := blend.Blend([]blend.Component{
		{Curve: sand(t), Proportion: 0.5},
		{Curve: gravel(t), Proportion: 0.5},
	})
	require.NoError(t, err)

	want := []float64{0.15, 0.60, 2.36, 4.75, 9.5, 19, 37.5}
	pts := got.Points()
	require.Len(t, pts, len(want), "union keeps 4.75 mm once")
	for i, size := range want {
		assert.Equal(t, size, pts[i].SizeMM, "union size at index %d", i)
	}
}

// TestBlend_WeightedValues checks hand-computed composite percents for
// a 50/50 sand/gravel mix at characteristic sizes.
func TestBlend_WeightedValues(t *testing.T) {
	got, err := blend.Blend([]blend.Component{
		{Curve: sand(t), Proportion: 0.5},
		{Curve: gravel(t), Proportion: 0.5},
	})
	require.NoError(t, err)

	// Below gravel's range: gravel clamps to 5%. 0.5·10 + 0.5·5 = 7.5.
	assert.InDelta(t, 7.5, got.PercentAt(0.15), 1e-9)
	// Shared sieve: 0.5·100 + 0.5·5 = 52.5.
	assert.InDelta(t, 52.5, got.PercentAt(4.75), 1e-9)
	// Above sand's range: sand clamps to 100%. 0.5·100 + 0.5·80 = 90.
	assert.InDelta(t, 90.0, got.PercentAt(19), 1e-9)
	// Top sieve: both at / clamped to 100.
	assert.InDelta(t, 100.0, got.PercentAt(37.5), 1e-9)
}

// TestBlend_ResultIsMonotone asserts the normalized-output guarantee on
// a mix whose components sample disjoint sieves.
func TestBlend_ResultIsMonotone(t *testing.T) {
	got, err := blend.Blend([]blend.Component{
		{Curve: sand(t), Proportion: 2},
		{Curve: gravel(t), Proportion: 1},
	})
	require.NoError(t, err)

	pts := got.Points()
	for i := 1; i < len(pts); i++ {
		assert.GreaterOrEqual(t, pts[i].PercentPassing, pts[i-1].PercentPassing,
			"composite percent must be non-decreasing")
	}
}

// TestBlend_ZeroWeightComponentIgnored verifies that a zero-proportion
// component contributes nothing but does not fail the request.
func TestBlend_ZeroWeightComponentIgnored(t *testing.T) {
	s := sand(t)

	got, err := blend.Blend([]blend.Component{
		{Curve: s, Proportion: 1},
		{Curve: gravel(t), Proportion: 0},
	})
	require.NoError(t, err)

	// The gravel sizes still appear in the union, but every percent is
	// sand's own (clamped) value.
	for _, p := range got.Points() {
		assert.InDelta(t, s.PercentAt(p.SizeMM), p.PercentPassing, 1e-9,
			"zero-weight component must not shift percents")
	}
}
