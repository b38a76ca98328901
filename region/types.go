// Package region defines the State enum, the Region and Branch contracts,
// and sentinel errors for region construction.
package region

import (
	"errors"

	"github.com/katalvlaran/cubature/hyperbox"
)

// Sentinel errors for region construction and measure queries.
var (
	// ErrBadDimension indicates a region declared with no axes.
	ErrBadDimension = errors.New("region: region needs at least one dimension")

	// ErrDimensionMismatch indicates constraint, coefficient, or center
	// lengths that disagree with the region's dimension.
	ErrDimensionMismatch = errors.New("region: vector length differs from region dimension")

	// ErrNegativeCoefficient indicates an ellipsoid axis coefficient < 0.
	// Both envelope tests and the linearization remainder bound assume
	// non-negative coefficients.
	ErrNegativeCoefficient = errors.New("region: ellipsoid coefficients must be non-negative")

	// ErrNegativeThreshold indicates an ellipsoid threshold d < 0.
	ErrNegativeThreshold = errors.New("region: ellipsoid threshold must be non-negative")

	// ErrNonFinite indicates a NaN or infinite region parameter.
	ErrNonFinite = errors.New("region: region parameters must be finite")
)

// State classifies a box H relative to a region R.
type State int8

const (
	// Rejected: H ∩ R = ∅; the box contributes nothing.
	Rejected State = iota

	// Contained: H ⊆ R; the box contributes its exact integral.
	Contained

	// Indeterminate: neither, the box straddles the region boundary.
	Indeterminate
)

// String returns the classification name for traces and test output.
func (s State) String() string {
	switch s {
	case Rejected:
		return "Rejected"
	case Contained:
		return "Contained"
	case Indeterminate:
		return "Indeterminate"
	default:
		return "Unknown"
	}
}

// Region is a closed subset of ℝᴺ the integration driver can subdivide
// against.  Branch hands out the root traversal context.
type Region interface {
	// Dimensions returns the axis count N shared with every box of a run.
	Dimensions() int

	// Branch returns the context for classifying the root box.
	Branch() Branch
}

// Branch is the per-subtree classification context.  For polytopes it carries
// the constraints still live on the current root-to-leaf path; for ellipsoids
// it is stateless.
type Branch interface {
	// Classify classifies h and returns the branch for h's children — and
	// for h's own MeasureBounds query when h ends up a terminal leaf.  The
	// returned branch context only ever shrinks down a path.
	Classify(h hyperbox.Box) (State, Branch)

	// MeasureBounds returns sound bounds low ≤ μ(h ∩ region) ≤ high for a
	// box this branch classified Indeterminate.
	MeasureBounds(h hyperbox.Box) (low, high float64, err error)
}
