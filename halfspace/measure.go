// Package halfspace implements the extremes of a linear form over a box and
// the exact section-measure recursion.
package halfspace

import (
	"github.com/katalvlaran/cubature/hyperbox"
)

// Max returns the maximum of ⟨e,x⟩ + d over h: each axis contributes its high
// endpoint under a non-negative coefficient and its low endpoint otherwise.
//
// Precondition: len(c.E) == h.Dimensions() (see Validate).
func (c Constraint) Max(h hyperbox.Box) float64 {
	rv := c.D
	for i, e := range c.E {
		iv := h.Interval(i)
		if e >= 0 {
			rv += e * iv.High
		} else {
			rv += e * iv.Low
		}
	}

	return rv
}

// Min returns the minimum of ⟨e,x⟩ + d over h, symmetric to Max.
//
// Precondition: len(c.E) == h.Dimensions() (see Validate).
func (c Constraint) Min(h hyperbox.Box) float64 {
	rv := c.D
	for i, e := range c.E {
		iv := h.Interval(i)
		if e >= 0 {
			rv += e * iv.Low
		} else {
			rv += e * iv.High
		}
	}

	return rv
}

// SectionMeasure returns the exact Lebesgue measure of
// {x ∈ h : ⟨e,x⟩ + d ≤ 0}.
//
// The result is exact up to floating-point rounding: a covered box returns
// its full volume, a disjoint box returns 0, and a straddling box resolves
// through the recursion below.  Returns ErrDimensionMismatch (or
// ErrNoCoefficients) when the constraint does not fit h.
func (c Constraint) SectionMeasure(h hyperbox.Box) (float64, error) {
	n := h.Dimensions()
	if err := c.Validate(n); err != nil {
		return 0, err
	}

	// Per-axis preliminaries, computed once per call:
	// u[i]/v[i] are the endpoints of axis i attaining the minimum/maximum of
	// ⟨e,x⟩, selected by the coefficient sign; en accumulates Σ eᵢ².
	s := &section{
		h:      h,
		e:      c.E,
		u:      make([]float64, n),
		v:      make([]float64, n),
		active: make([]bool, n),
		count:  n,
	}

	var min, max, en float64
	for i, e := range c.E {
		iv := h.Interval(i)
		if e >= 0 {
			s.u[i], s.v[i] = iv.Low, iv.High
		} else {
			s.u[i], s.v[i] = iv.High, iv.Low
		}
		min += s.u[i] * e
		max += s.v[i] * e
		en += e * e
		s.active[i] = true
	}

	return s.measure(c.D, min, max, en), nil
}

// section carries the recursion state: the box, the coefficients, the
// min/max-attaining endpoints, and the set of axes not yet pinned.  The
// active flags are flipped in place around each recursive call; count tracks
// how many remain set.
type section struct {
	h      hyperbox.Box
	e      []float64
	u, v   []float64
	active []bool
	count  int
}

// measure resolves the sub-problem over the currently active axes, where the
// constraint restricted to them is ⟨e,x⟩ + d ≤ 0 with range [min+d, max+d]
// and coefficient norm en = Σ eᵢ².
func (s *section) measure(d, min, max, en float64) float64 {
	// 1) Covered: the half-space contains the whole active-axis box.
	//    This test runs before any arithmetic on the projection parameter,
	//    so the cancellation-prone path below is never entered needlessly.
	if max+d <= 0 {
		prod := 1.0
		for i, on := range s.active {
			if on {
				prod *= s.h.Interval(i).Length()
			}
		}

		return prod
	}

	// 2) Disjoint: the half-space misses the box entirely.
	if min+d >= 0 {
		return 0
	}

	// 3) Base case, one active axis: a 1-D section of [a, b].
	if s.count == 1 {
		var i int
		for i = 0; i < len(s.active); i++ {
			if s.active[i] {
				break
			}
		}
		iv := s.h.Interval(i)
		e := s.e[i]

		// Degenerate coefficient: the constraint reads d ≤ 0 on the whole
		// axis — all of [a, b] or none of it.
		if e == 0 {
			if d > 0 {
				return 0
			}

			return iv.Length()
		}

		// The boundary point −d/e splits [a, b]; clip and take the feasible
		// side, which the coefficient sign selects.
		crossing := -d / e
		if e < 0 {
			switch {
			case crossing >= iv.High:
				return 0
			case crossing <= iv.Low:
				return iv.Length()
			default:
				return iv.High - crossing
			}
		}
		switch {
		case crossing <= iv.Low:
			return 0
		case crossing >= iv.High:
			return iv.Length()
		default:
			return crossing - iv.Low
		}
	}

	// 4) Straddling with ≥ 2 active axes: pin each active axis i to its two
	//    endpoints in turn and weight the sub-measures by a separating point
	//    w = v[i] + t·e[i], the projection of the boundary onto axis i.
	t := -(max + d) / en
	rv := 0.0
	activeCount := float64(s.count)

	for i, on := range s.active {
		if !on {
			continue
		}
		iv := s.h.Interval(i)
		e := s.e[i]

		// Remove axis i's contribution from the running aggregates.
		correctedMin := min - s.u[i]*e
		correctedMax := max - s.v[i]*e
		correctedEn := en - e*e
		w := s.v[i] + t*e

		s.active[i] = false
		s.count--
		rv += s.measure(d+iv.Low*e, correctedMin, correctedMax, correctedEn) * (w - iv.Low) / activeCount
		rv += s.measure(d+iv.High*e, correctedMin, correctedMax, correctedEn) * (iv.High - w) / activeCount
		s.active[i] = true
		s.count++
	}

	return rv
}
