// Package hyperbox models N-dimensional axis-aligned boxes — Cartesian
// products of closed real intervals — and the two operations the subdivision
// engine is built on: exact volume and 2ᴺ-way midpoint bisection.
//
// 🚀 What is a hyperbox?
//
//	The region [a₁,b₁] × [a₂,b₂] × … × [aN,bN].  In 1-D it is a segment,
//	in 2-D a rectangle, in 3-D a rectangular box, and so on.  Boxes are the
//	cells of the adaptive integration grid:
//
//	  • Volume()      — Π (bᵢ − aᵢ), the box's Lebesgue measure
//	  • Split()       — the 2ᴺ congruent children obtained by bisecting
//	                    every axis at its midpoint
//	  • Center(), LongestEdge() — geometry used by region linearization
//
// ✨ Key properties:
//   - Immutable        — a Box never changes after New; Split allocates fresh boxes
//   - Ordered          — axis order is significant and matches the coefficient
//     order of regions and integrands
//   - Deterministic    — Split enumerates children in a fixed order
//     (axis 0 varies fastest), part of the replay contract
//   - Degeneracy-safe  — an axis with Low == High yields Volume 0 and still
//     splits into 2ᴺ (degenerate) children
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cubature/hyperbox"
//
//	unit, err := hyperbox.NewUniform(2, 0, 1) // the unit square
//	if err != nil { ... }
//	quads := unit.Split()                     // 4 quarter squares
//
// Complexity: Volume is O(N); Split is O(N·2ᴺ) time and allocations.
package hyperbox
