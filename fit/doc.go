// Package fit estimates parametric particle-size-distribution models
// from grading-curve data and reports goodness of fit.
//
// 🚀 What gets fitted?
//
//	Three classical model families, selected by Family:
//	  • Fuller (Gates–Gaudin–Schumann): P(d) = 100·(d/d_max)^q — the
//	    power-law shape of maximum-density gradings. Fitted in closed
//	    form by ordinary least squares on the log-log linearization.
//	  • Rosin–Rammler: P(d) = 100·(1 − exp(−ln2·(d/d50)^n)) — the
//	    two-parameter Weibull-type distribution of crushed materials,
//	    parameterized by its literal median d50 and uniformity n.
//	    Fitted by derivative-free nonlinear least squares.
//	  • Polynomial: P(d) = Σ cₖ·dᵏ of a chosen degree — a purely
//	    empirical smoother. Fitted by QR-factorized least squares.
//
// ✨ Key features:
//   - Every family reports r² = 1 − SSres/SStot over the curve's own
//     sample points, so families are directly comparable.
//   - Fitted models are evaluable (PercentAt) and carry the size
//     domain the fit was computed on.
//   - Typed failures: ErrInsufficientData (<3 points), ErrDegenerateFit
//     (no variance to fit against), ErrNoConvergence (optimizer).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gradix/fit"
//
//	m, err := fit.Fit(c, fit.FamilyFuller, fit.DefaultOptions())
//	if err != nil {
//	  // handle ErrInsufficientData / ErrDegenerateFit / ...
//	}
//	fmt.Printf("r² = %.4f, predicted at 4.75 mm: %.1f%%\n",
//	  m.RSquared(), m.PercentAt(4.75))
//
// Numerical notes:
//
//   - Fuller excludes percent ≤ 0 points before the log transform;
//     zero passing carries no log-space information.
//   - Rosin–Rammler optimizes over (log d50, log n), which keeps both
//     parameters positive without constrained optimization.
//   - The polynomial solve uses a QR factorization of the Vandermonde
//     matrix rather than normal equations, for conditioning's sake.
//
// See example_test.go for a perfect-Fuller recovery scenario.
package fit
