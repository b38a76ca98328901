// Package region classifies boxes against convex regions — polytopes and
// ellipsoids — and produces sound measure bounds for boxes the classifier
// cannot resolve.
//
// 🚀 What is a region?
//
//	A closed subset of ℝᴺ the integration is restricted to:
//
//	  • Polytope  — the intersection of finitely many half-spaces
//	                ⟨eⱼ,x⟩ + dⱼ ≤ 0
//	  • Ellipsoid — one quadratic inequality Σ aᵢ(xᵢ − cᵢ)² ≤ d with aᵢ ≥ 0
//
// Every region answers the same two questions about a box H:
//
//  1. Classify — is H fully inside (Contained), fully outside (Rejected),
//     or neither (Indeterminate)?
//  2. MeasureBounds — for an Indeterminate H, sound bounds
//     low ≤ μ(H ∩ region) ≤ high.
//
// ✨ How the answers stay cheap and sound:
//
//   - Polytopes prune: a constraint satisfied over all of H is dropped from
//     the branch context, so descendants never recheck it; a single live
//     constraint collapses the measure bounds to one EXACT section measure
//   - Ellipsoids screen by envelopes: the farthest corner proves
//     containment, the nearest point proves rejection; indeterminate boxes
//     get bounds from the tangent-plane linearization at the box midpoint,
//     whose deviation over the box is at most S·τ²/4 (S = Σ aᵢ, τ = longest
//     edge) because every aᵢ is non-negative
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cubature/region"
//
//	disk, err := region.NewEllipsoid([]float64{1, 1}, []float64{0, 0}, 1)
//	state, branch := disk.Branch().Classify(someBox)
//
// Branch values are pure: Classify returns a fresh branch for the children
// and never mutates the receiver, so traversals are deterministic and
// re-entrant.
package region
