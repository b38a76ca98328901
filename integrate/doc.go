// Package integrate runs the adaptive subdivision driver: a breadth-first
// refinement of a root box against a region, accumulating a guaranteed
// bracket Sum ≤ ∫f ≤ Sum + Error.
//
// 🚀 How a run unfolds:
//
//	A FIFO queue starts with the root box at depth 0.  Each dequeued box is
//	classified by the region:
//
//	  • Rejected      → dropped (traced if requested)
//	  • Contained     → its EXACT integral joins Sum; Error is untouched
//	  • Indeterminate → below the depth limit it splits into 2ᴺ children;
//	                    at the limit it becomes a terminal leaf whose
//	                    measure bounds and integrand range produce a sound
//	                    Sum/Error contribution
//
//	The queue drains, the bracket is final.  Refining with a larger
//	MaxSplits never widens Error.
//
// ✨ Guarantees:
//
//   - Soundness     — Sum ≤ ∫_{region ∩ root} f ≤ Sum + Error, Error ≥ 0
//   - Determinism   — breadth-first order with the fixed Split enumeration;
//     identical inputs give bitwise-identical results
//   - Fail-fast     — shape mismatches, non-finite accumulation, and
//     negative error contributions abort with one sentinel-wrapped failure
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cubature/integrate"
//
//	opts := integrate.DefaultOptions()
//	opts.MaxSplits = 8
//	res, err := integrate.Integrate(disk, rootBox, integrand.One, opts)
//	// res.Sum ≤ π ≤ res.Sum + res.Error for the unit disk in a [−2,2]² root
//
// The engine is single-threaded, carries no global state, and is re-entrant
// across independent runs.
package integrate
