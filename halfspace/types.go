// Package halfspace defines the Constraint type and sentinel errors for
// linear half-space operations.
package halfspace

import "errors"

// Sentinel errors for half-space operations.
var (
	// ErrDimensionMismatch indicates the constraint's coefficient count and
	// the box's axis count disagree.
	ErrDimensionMismatch = errors.New("halfspace: constraint and box dimensions differ")

	// ErrNoCoefficients indicates a constraint with an empty coefficient vector.
	ErrNoCoefficients = errors.New("halfspace: constraint needs at least one coefficient")
)

// Constraint is the closed half-space ⟨e,x⟩ + d ≤ 0.
//
// E holds one coefficient per axis, in box axis order; D is the scalar
// offset.  A Constraint is a plain value — callers construct it literally and
// may share it freely.
type Constraint struct {
	// E is the coefficient vector, one entry per axis.
	E []float64

	// D is the scalar offset.
	D float64
}

// Validate reports whether the constraint can apply to an n-dimensional box.
// It returns ErrNoCoefficients for an empty vector and ErrDimensionMismatch
// when len(E) ≠ n.
func (c Constraint) Validate(n int) error {
	if len(c.E) == 0 {
		return ErrNoCoefficients
	}
	if len(c.E) != n {
		return ErrDimensionMismatch
	}

	return nil
}
