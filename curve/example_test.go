package curve_test

import (
	"fmt"

	"github.com/katalvlaran/gradix/curve"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCurve_PercentAt
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A fine-aggregate sieve table is queried at a sieve that was not part
//	of the lab analysis (1.18 mm) and beyond the sampled range (20 mm).
//
// Use case:
//
//	Filling in the standard sieve set for fineness-modulus style sums.
//
// Complexity: O(log n) per query.
func ExampleCurve_PercentAt() {
	c, _ := curve.New([]curve.SievePoint{
		{SizeMM: 0.15, PercentPassing: 6},
		{SizeMM: 0.60, PercentPassing: 16},
		{SizeMM: 2.36, PercentPassing: 30},
		{SizeMM: 4.75, PercentPassing: 40},
	})

	fmt.Printf("at 1.18 mm: %.2f\n", c.PercentAt(1.18))
	fmt.Printf("at 20 mm:   %.2f\n", c.PercentAt(20))
	// Output:
	// at 1.18 mm: 20.61
	// at 20 mm:   40.00
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCurve_Normalize
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A hand-edited sieve table carries a dip at 0.60 mm that violates the
//	cumulative invariant; Normalize flattens it forward.
func ExampleCurve_Normalize() {
	c, _ := curve.New([]curve.SievePoint{
		{SizeMM: 0.15, PercentPassing: 6},
		{SizeMM: 0.30, PercentPassing: 12},
		{SizeMM: 0.60, PercentPassing: 9}, // typo: dips below 12
		{SizeMM: 1.18, PercentPassing: 22},
	})

	for _, p := range c.Normalize().Points() {
		fmt.Printf("%.2f mm → %.0f%%\n", p.SizeMM, p.PercentPassing)
	}
	// Output:
	// 0.15 mm → 6%
	// 0.30 mm → 12%
	// 0.60 mm → 12%
	// 1.18 mm → 22%
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCurve_SizeAt
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Inverse lookup of the D60 percentile on a coarse gradation; 60% falls
//	between the 9.5 mm and 12.5 mm sieves.
func ExampleCurve_SizeAt() {
	c, _ := curve.New([]curve.SievePoint{
		{SizeMM: 4.75, PercentPassing: 40},
		{SizeMM: 9.5, PercentPassing: 55},
		{SizeMM: 12.5, PercentPassing: 65},
		{SizeMM: 19, PercentPassing: 75},
	})

	d60, err := c.SizeAt(60)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("D60 = %.1f mm\n", d60)
	// Output:
	// D60 = 11.0 mm
}
