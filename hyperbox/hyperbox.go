// Package hyperbox implements construction, measurement, and midpoint
// bisection of axis-aligned boxes.
package hyperbox

import (
	"fmt"
	"math"
	"strings"
)

// New builds a Box from an ordered list of intervals.
//
// It returns ErrNoDimensions for an empty list, ErrNonFinite if any endpoint
// is NaN or infinite, and ErrBadInterval if any interval has Low > High.
// The input slice is copied; the caller may reuse it.
func New(intervals ...Interval) (Box, error) {
	// 1) Shape check: at least one axis.
	if len(intervals) == 0 {
		return Box{}, ErrNoDimensions
	}

	// 2) Per-axis invariant checks before any allocation escapes.
	for _, iv := range intervals {
		if math.IsNaN(iv.Low) || math.IsInf(iv.Low, 0) ||
			math.IsNaN(iv.High) || math.IsInf(iv.High, 0) {
			return Box{}, ErrNonFinite
		}
		if iv.Low > iv.High {
			return Box{}, ErrBadInterval
		}
	}

	// 3) Defensive copy: the Box owns its intervals forever after.
	owned := make([]Interval, len(intervals))
	copy(owned, intervals)

	return Box{ivs: owned}, nil
}

// NewUniform builds an N-dimensional box with every axis set to [low, high].
// It validates exactly as New does.
func NewUniform(n int, low, high float64) (Box, error) {
	if n <= 0 {
		return Box{}, ErrNoDimensions
	}
	intervals := make([]Interval, n)
	for i := range intervals {
		intervals[i] = Interval{Low: low, High: high}
	}

	return New(intervals...)
}

// Dimensions returns the number of axes N.
func (h Box) Dimensions() int { return len(h.ivs) }

// Interval returns the closed interval of axis i.  It panics if i is out of
// range, matching slice-index semantics.
func (h Box) Interval(i int) Interval { return h.ivs[i] }

// Intervals returns a copy of the box's intervals in axis order.
func (h Box) Intervals() []Interval {
	out := make([]Interval, len(h.ivs))
	copy(out, h.ivs)

	return out
}

// Volume returns the Lebesgue measure Π (Highᵢ − Lowᵢ).  A degenerate axis
// gives 0; callers must not rely on strict positivity.
func (h Box) Volume() float64 {
	vol := 1.0
	for _, iv := range h.ivs {
		vol *= iv.Length()
	}

	return vol
}

// Center returns the box midpoint, one coordinate per axis.
func (h Box) Center() []float64 {
	mid := make([]float64, len(h.ivs))
	for i, iv := range h.ivs {
		mid[i] = iv.Mid()
	}

	return mid
}

// LongestEdge returns max(Highᵢ − Lowᵢ) over all axes.
func (h Box) LongestEdge() float64 {
	longest := 0.0
	for _, iv := range h.ivs {
		if l := iv.Length(); l > longest {
			longest = l
		}
	}

	return longest
}

// Split bisects every axis at its midpoint and returns the 2ᴺ congruent
// children.
//
// Enumeration order is fixed and part of the determinism contract: child k
// takes the LOW half of axis i when bit i of k is clear and the HIGH half
// when it is set, so axis 0 varies fastest across consecutive children.
// Degenerate axes split into two degenerate halves; the child count is 2ᴺ
// regardless.
func (h Box) Split() []Box {
	n := len(h.ivs)
	parts := make([]Box, 1<<uint(n))

	// Midpoints are computed once per axis, not once per child.
	mids := make([]float64, n)
	for i, iv := range h.ivs {
		mids[i] = iv.Mid()
	}

	for k := range parts {
		child := make([]Interval, n)
		for i, iv := range h.ivs {
			if k&(1<<uint(i)) == 0 {
				child[i] = Interval{Low: iv.Low, High: mids[i]}
			} else {
				child[i] = Interval{Low: mids[i], High: iv.High}
			}
		}
		parts[k] = Box{ivs: child}
	}

	return parts
}

// String renders the box as "BoxN( [a, b] [c, d] … )", N being the axis
// count, for debugging output.
func (h Box) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Box%d( ", len(h.ivs))
	for _, iv := range h.ivs {
		fmt.Fprintf(&sb, "[%g, %g] ", iv.Low, iv.High)
	}
	sb.WriteString(")")

	return sb.String()
}
