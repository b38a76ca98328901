// Package region implements the polytope region: an ordered list of linear
// half-space constraints with live-set pruning down the subdivision tree.
package region

import (
	"math"

	"github.com/katalvlaran/cubature/halfspace"
	"github.com/katalvlaran/cubature/hyperbox"
)

// Polytope is the closed intersection of finitely many half-spaces
// ⟨eⱼ,x⟩ + dⱼ ≤ 0.  An empty constraint list denotes all of ℝᴺ, so every box
// classifies Contained.
type Polytope struct {
	dim         int
	constraints []halfspace.Constraint
}

// NewPolytope builds an n-dimensional polytope from an ordered constraint
// list.  It returns ErrBadDimension for n < 1, ErrDimensionMismatch when any
// constraint's coefficient count differs from n, and ErrNonFinite for NaN or
// infinite parameters.  The constraint slice is copied.
func NewPolytope(n int, constraints ...halfspace.Constraint) (*Polytope, error) {
	// 1) Shape checks up front: every later call relies on them.
	if n < 1 {
		return nil, ErrBadDimension
	}
	for _, c := range constraints {
		if len(c.E) != n {
			return nil, ErrDimensionMismatch
		}
		if !finite(c.D) {
			return nil, ErrNonFinite
		}
		for _, e := range c.E {
			if !finite(e) {
				return nil, ErrNonFinite
			}
		}
	}

	// 2) Own the list: the polytope is immutable afterwards.
	owned := make([]halfspace.Constraint, len(constraints))
	copy(owned, constraints)

	return &Polytope{dim: n, constraints: owned}, nil
}

// Dimensions returns the axis count N.
func (p *Polytope) Dimensions() int { return p.dim }

// Constraints returns a copy of the constraint list in declaration order.
func (p *Polytope) Constraints() []halfspace.Constraint {
	out := make([]halfspace.Constraint, len(p.constraints))
	copy(out, p.constraints)

	return out
}

// Branch returns the root traversal context with every constraint live.
func (p *Polytope) Branch() Branch {
	live := make([]int, len(p.constraints))
	for i := range live {
		live[i] = i
	}

	return polytopeBranch{p: p, live: live}
}

// polytopeBranch carries the indices of constraints not yet proven satisfied
// on the current root-to-leaf path.  The list only shrinks downwards, so
// children share it without copying.
type polytopeBranch struct {
	p    *Polytope
	live []int
}

// Classify applies the live-set reduction of the polytope classifier:
// constraints whose maximum over h is ≤ 0 are satisfied everywhere on h and
// drop out; an empty remainder means Contained; a remaining constraint whose
// minimum over h is ≥ 0 excludes h entirely.
func (b polytopeBranch) Classify(h hyperbox.Box) (State, Branch) {
	// 1) Drop constraints fully satisfied on h.
	still := make([]int, 0, len(b.live))
	for _, i := range b.live {
		if b.p.constraints[i].Max(h) > 0 {
			still = append(still, i)
		}
	}

	next := polytopeBranch{p: b.p, live: still}

	// 2) Nothing live: h sits inside every half-space.
	if len(still) == 0 {
		return Contained, next
	}

	// 3) Any live constraint with min ≥ 0 excludes all of h.
	for _, i := range still {
		if b.p.constraints[i].Min(h) >= 0 {
			return Rejected, next
		}
	}

	return Indeterminate, next
}

// MeasureBounds bounds μ(h ∩ polytope) for a box this branch classified
// Indeterminate.  With exactly one live constraint the section measure is
// exact, so low == high; with several the bounds degrade to [0, Volume].
func (b polytopeBranch) MeasureBounds(h hyperbox.Box) (low, high float64, err error) {
	if len(b.live) == 1 {
		m, err := b.p.constraints[b.live[0]].SectionMeasure(h)
		if err != nil {
			return 0, 0, err
		}

		return m, m, nil
	}

	return 0, h.Volume(), nil
}

// finite reports whether x is neither NaN nor infinite.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
