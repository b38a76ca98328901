// Package integrate implements the breadth-first subdivision driver.
package integrate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cubature/hyperbox"
	"github.com/katalvlaran/cubature/region"
)

// entry is one unit of pending work: a box, its depth from the root, and the
// region's branch context inherited from the parent.
type entry struct {
	h      hyperbox.Box
	depth  int
	branch region.Branch
}

// Integrate refines root against r down to opts.MaxSplits and returns the
// bracket Sum ≤ ∫_{r ∩ root} f ≤ Sum + Error.
//
// The traversal is breadth-first; within a depth, children are visited in the
// Split enumeration order, so identical inputs replay identically.  Failures
// are fatal to the run: shape mismatches surface before any work, and a leaf
// that drives an accumulator non-finite or contributes a negative error band
// aborts with the offending box named.
func Integrate(r region.Region, root hyperbox.Box, f Provider, opts Options) (Result, error) {
	// 1) Validate the run before touching the queue.
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if r == nil {
		return Result{}, ErrNilRegion
	}
	if f == nil {
		return Result{}, ErrNilProvider
	}
	if r.Dimensions() != root.Dimensions() {
		return Result{}, ErrDimensionMismatch
	}
	if err := f.Validate(root.Dimensions()); err != nil {
		return Result{}, err
	}

	result := Result{Origin: root}

	// 2) FIFO work queue seeded with the root at depth 0.  head indexes the
	//    front; processed slots are zeroed so the only live references to a
	//    finished box are the trace's.
	queue := []entry{{h: root, depth: 0, branch: r.Branch()}}

	for head := 0; head < len(queue); head++ {
		ent := queue[head]
		queue[head] = entry{}

		// 3) Classify under the inherited branch context; the returned
		//    branch carries the pruned context for children and leaf bounds.
		state, branch := ent.branch.Classify(ent.h)

		switch state {
		case region.Contained:
			// 4) Fully inside: the exact integral joins Sum, Error untouched.
			result.Sum += f.Integral(ent.h)

		case region.Indeterminate:
			if ent.depth < opts.MaxSplits {
				// 5) Refine: enqueue all 2ᴺ children with the pruned
				//    context.  Split boxes are not terminal — no trace entry.
				for _, child := range ent.h.Split() {
					queue = append(queue, entry{h: child, depth: ent.depth + 1, branch: branch})
				}

				continue
			}

			// 6) Terminal leaf: combine measure bounds with the integrand
			//    range into a sound contribution.  Term-wise, Sum pairs each
			//    signed part of the range with the measure that minimizes
			//    it, and Error spans the remaining gap.
			mlow, mhigh, err := branch.MeasureBounds(ent.h)
			if err != nil {
				return Result{}, err
			}
			flow, fhigh := f.Range(ent.h)

			result.Sum += math.Min(0, flow)*mhigh + math.Max(0, flow)*mlow
			band := (math.Max(0, fhigh)-math.Min(0, flow))*mhigh +
				(math.Min(0, fhigh)-math.Max(0, flow))*mlow
			if band < 0 {
				return Result{}, fmt.Errorf("%w: unsound integrand range at leaf %s", ErrNegativeError, ent.h)
			}
			result.Error += band

		case region.Rejected:
			// 7) Fully outside: contributes nothing; falls through to the
			//    trace so the leaf is still visible when requested.
		}

		// 8) Accumulators must stay finite through every terminal box.
		if !finite(result.Sum) || !finite(result.Error) {
			return Result{}, fmt.Errorf("%w: triggered at leaf %s", ErrNonFinite, ent.h)
		}

		if opts.ReturnCubes {
			result.Cubes = append(result.Cubes, Cube{Box: ent.h, State: state})
		}
	}

	return result, nil
}

// finite reports whether x is neither NaN nor infinite.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
