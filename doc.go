// Package cubature computes guaranteed lower/upper bounds on integrals of
// real-valued functions over N-dimensional axis-aligned boxes restricted by a
// convex region — a polytope (linear inequalities) or an ellipsoid (one
// quadratic inequality).
//
// 🚀 What is cubature?
//
//	An adaptive subdivision engine built around exact geometry:
//
//	  • Hyperboxes: N-dimensional boxes with volume and 2ᴺ-way bisection
//	  • Exact sections: the measure of a box cut by a half-space, analytically
//	  • Sound bounds: every run returns Sum ≤ ∫f ≤ Sum + Error, always
//
// ✨ Why choose cubature?
//
//   - Sound by construction — bounds, not estimates; no Monte-Carlo noise
//   - Deterministic         — identical inputs give bitwise-identical results
//   - Extensible            — plug in any integrand via the Provider contract
//   - Pure computation      — no goroutines, no I/O, no hidden state
//
// Under the hood, everything is organized under five subpackages:
//
//	hyperbox/  — intervals, boxes, volume, midpoint bisection
//	halfspace/ — linear constraints and the exact section-measure recursion
//	region/    — polytope & ellipsoid classification and measure bounds
//	integrate/ — the breadth-first subdivision driver and its Result
//	integrand/ — reference integrands: normal density, monomials, constants
//
// Quick ASCII example:
//
//	    y
//	    1┌──────┐        the unit square cut by x + y ≤ 1:
//	     │ ╲    │        the engine reports the triangle's
//	     │   ╲  │        area 0.5 exactly, without a single split.
//	    0└──────┘1 x
//
// Runnable scenarios live in each subpackage's Example functions: exact
// half-plane sections, box splitting, region screening, and ellipse areas.
//
//	go get github.com/katalvlaran/cubature
package cubature
