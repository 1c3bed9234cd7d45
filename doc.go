// Package gradix is your in-memory toolkit for building, combining, and
// analyzing aggregate grading curves — from raw sieve data to blended
// composites, gradation statistics and fitted distribution models.
//
// 🚀 What is gradix?
//
//	A small, thread-safe library for particle-size-distribution (PSD) math:
//		• Curve primitives: validated, immutable grading curves from sieve data
//		• Interpolation: size → percent-passing and percent → size lookups
//		• Normalization: monotonicity repair + moving-average smoothing
//		• Blending: weighted composition of N curves into one composite
//		• Gradation: D10/D30/D60, Cu, Cc, fineness modulus, classification
//		• Fitting: Fuller power-law, Rosin–Rammler, and polynomial models
//
// ✨ Why choose gradix?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable curves, typed sentinel errors
//   - Pure functions – no hidden state, safe for concurrent use
//   - Numerically careful – clamped interpolation, stable least squares
//
// Under the hood, everything is organized under four subpackages:
//
//	curve/     — SievePoint & Curve types, interpolation, normalization
//	blend/     — weighted blending of several curves into one composite
//	gradation/ — D-values, uniformity/curvature coefficients, classification
//	fit/       — Fuller, Rosin–Rammler and polynomial curve fitting
//
// Quick ASCII example:
//
//	100 ┤                                ·──·
//	    │                        ·──·──·
//	 50 ┤                ·──·──·
//	    │        ·──·──·
//	  0 ┼──·──·──┬────────┬────────┬──── size (mm, log)
//	   0.075    0.6      4.75     25
//
//	a cumulative percent-passing curve: non-decreasing, clamped to [0,100].
//
// Dive into each package's doc.go and example_test.go for worked
// scenarios, and examples/ for an end-to-end mix-design walkthrough.
//
//	go get github.com/katalvlaran/gradix
package gradix
