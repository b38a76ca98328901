// Package halfspace models closed linear half-spaces ⟨e,x⟩ + d ≤ 0 and
// computes the EXACT Lebesgue measure of a box cut by one of them.
//
// 🚀 What does it solve?
//
//	Given a box H = [a₁,b₁] × … × [aN,bN] and a constraint ⟨e,x⟩ + d ≤ 0,
//	SectionMeasure returns the exact measure of {x ∈ H : ⟨e,x⟩ + d ≤ 0} —
//	the volume of the box piece on the feasible side of the hyperplane.
//	This is what lets the integration engine collapse a single straddling
//	constraint to a zero-width error band instead of a whole-box one.
//
// ✨ How it works:
//
//   - Max/Min — the extremes of ⟨e,x⟩ + d over H, read off the per-axis
//     endpoint that the coefficient sign selects
//   - SectionMeasure — an analytic recursion over the set of still-active
//     axes: a box fully inside or fully outside the half-space resolves
//     immediately; a straddling box is resolved axis by axis, pinning each
//     active axis to its endpoints and weighting the two sub-problems by a
//     separating point projected onto that axis
//
// A level with k active axes recurses into 2k sub-problems, so the worst case
// is O(2ᴺ·N!) calls, but the cover/empty tests terminate the bulk of branches
// early.  The early exits also run BEFORE any
// arithmetic on the projection parameter, which keeps the cancellation-prone
// subtractions out of the common path.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cubature/halfspace"
//
//	c := halfspace.Constraint{E: []float64{1, 1}, D: -1} // x + y ≤ 1
//	m, err := c.SectionMeasure(unitSquare)               // exactly 0.5
//
// Determinism: the axis sweep order is fixed, so results are bitwise
// reproducible for identical inputs.
package halfspace
