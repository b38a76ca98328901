// Package hyperbox defines the Interval and Box types plus sentinel errors
// for box construction.
package hyperbox

import "errors"

// Sentinel errors for box construction.
var (
	// ErrNoDimensions indicates a box was constructed with zero intervals.
	ErrNoDimensions = errors.New("hyperbox: box needs at least one dimension")

	// ErrBadInterval indicates an interval with Low > High.
	ErrBadInterval = errors.New("hyperbox: interval low endpoint exceeds high endpoint")

	// ErrNonFinite indicates an interval endpoint that is NaN or infinite.
	ErrNonFinite = errors.New("hyperbox: interval endpoints must be finite")
)

// Interval is a closed real interval [Low, High].
//
// Invariants (enforced by New/NewUniform): Low ≤ High and both endpoints
// finite.  A degenerate interval with Low == High is legal and has length 0.
type Interval struct {
	// Low is the left endpoint.
	Low float64

	// High is the right endpoint.
	High float64
}

// Length returns High − Low.
func (iv Interval) Length() float64 { return iv.High - iv.Low }

// Mid returns the midpoint (Low + High) / 2.
func (iv Interval) Mid() float64 { return (iv.Low + iv.High) / 2 }

// Box is an N-dimensional axis-aligned box: an ordered sequence of N closed
// intervals, one per axis.  Axis order is significant — it matches the
// coefficient order of every region constraint and integrand bound to the
// same run.
//
// A Box is immutable after construction.  Boxes are small values: copying one
// copies a header; the interval backing array is shared and never written.
type Box struct {
	ivs []Interval
}
