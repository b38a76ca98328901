// Package region implements the ellipsoid region: a single quadratic
// inequality with envelope classification and tangent-plane measure bounds.
package region

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cubature/halfspace"
	"github.com/katalvlaran/cubature/hyperbox"
)

// Ellipsoid is the region Σ aᵢ(xᵢ − cᵢ)² ≤ d with every aᵢ ≥ 0 and d ≥ 0.
//
// The coefficient sum S = Σ aᵢ is precomputed; it caps the gap between the
// quadratic and its tangent plane over a box, which is what makes the
// MeasureBounds linearization sound.
type Ellipsoid struct {
	coeffs []float64
	center []float64
	d      float64
	sum    float64
}

// NewEllipsoid builds the region from axis coefficients, center, and
// threshold.  It returns ErrBadDimension for an empty coefficient vector,
// ErrDimensionMismatch when center and coefficients disagree in length,
// ErrNegativeCoefficient / ErrNegativeThreshold for sign violations, and
// ErrNonFinite for NaN or infinite parameters.  Both slices are copied.
func NewEllipsoid(coeffs, center []float64, d float64) (*Ellipsoid, error) {
	// 1) Shape.
	if len(coeffs) == 0 {
		return nil, ErrBadDimension
	}
	if len(center) != len(coeffs) {
		return nil, ErrDimensionMismatch
	}

	// 2) Value invariants: the envelope tests and the S·τ²/4 remainder bound
	//    are only valid for non-negative coefficients.
	if !finite(d) {
		return nil, ErrNonFinite
	}
	if d < 0 {
		return nil, ErrNegativeThreshold
	}
	for i := range coeffs {
		if !finite(coeffs[i]) || !finite(center[i]) {
			return nil, ErrNonFinite
		}
		if coeffs[i] < 0 {
			return nil, ErrNegativeCoefficient
		}
	}

	e := &Ellipsoid{
		coeffs: make([]float64, len(coeffs)),
		center: make([]float64, len(center)),
		d:      d,
	}
	copy(e.coeffs, coeffs)
	copy(e.center, center)
	e.sum = floats.Sum(e.coeffs)

	return e, nil
}

// Dimensions returns the axis count N.
func (e *Ellipsoid) Dimensions() int { return len(e.coeffs) }

// Branch returns the traversal context.  Ellipsoid classification carries no
// per-branch state, so the region itself is the context.
func (e *Ellipsoid) Branch() Branch { return e }

// Classify screens h with two corner envelopes of the quadratic.
//
// The farthest corner (per axis, the endpoint farther from the center —
// valid because coefficients are non-negative) attains the quadratic's
// maximum over h: if even that stays ≤ d the box is Contained.  The nearest
// point (the center clamped into the box) attains the minimum: if it already
// reaches ≥ d the box is Rejected.
func (e *Ellipsoid) Classify(h hyperbox.Box) (State, Branch) {
	// 1) Maximum envelope → Contained.
	far := 0.0
	for i, a := range e.coeffs {
		iv := h.Interval(i)
		endpoint := iv.High
		if iv.Low+iv.High < 2*e.center[i] {
			endpoint = iv.Low
		}
		diff := endpoint - e.center[i]
		far += a * diff * diff
	}
	if far <= e.d {
		return Contained, e
	}

	// 2) Minimum envelope → Rejected.
	near := 0.0
	for i, a := range e.coeffs {
		iv := h.Interval(i)
		diff := clamp(e.center[i], iv.Low, iv.High) - e.center[i]
		near += a * diff * diff
	}
	if near >= e.d {
		return Rejected, e
	}

	return Indeterminate, e
}

// MeasureBounds bounds μ(h ∩ ellipsoid) for an indeterminate h by linearizing
// the quadratic at the box midpoint m: with gradient eᵢ = 2aᵢ(mᵢ − cᵢ) and
// offset g chosen so that ⟨e,x⟩ + g is the tangent plane minus d, convexity
// gives tangent ≤ quadratic ≤ tangent + S·τ²/4 over h (τ = longest edge).
// The tangent's section measure therefore over-counts the region (high), and
// tightening the offset by the remainder under-counts it (low).
func (e *Ellipsoid) MeasureBounds(h hyperbox.Box) (low, high float64, err error) {
	n := len(e.coeffs)
	grad := make([]float64, n)
	g := -e.d
	tau := 0.0

	for i, a := range e.coeffs {
		iv := h.Interval(i)
		mid := iv.Mid()
		diff := mid - e.center[i]
		grad[i] = 2 * a * diff
		g += a*diff*diff - grad[i]*mid
		if l := iv.Length(); l > tau {
			tau = l
		}
	}

	tangent := halfspace.Constraint{E: grad, D: g}
	tight := halfspace.Constraint{E: grad, D: g + e.sum*tau*tau/4}

	if low, err = tight.SectionMeasure(h); err != nil {
		return 0, 0, err
	}
	if high, err = tangent.SectionMeasure(h); err != nil {
		return 0, 0, err
	}

	return low, high, nil
}

// clamp returns x limited to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	default:
		return x
	}
}
