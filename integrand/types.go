// Package integrand defines sentinel errors shared by the shipped providers.
package integrand

import "errors"

// Sentinel errors for provider validation.
var (
	// ErrDimensionMismatch indicates a provider whose arity differs from the
	// box dimension of the run.
	ErrDimensionMismatch = errors.New("integrand: provider arity differs from box dimension")

	// ErrNegativeExponent indicates a monomial exponent < 0.
	ErrNegativeExponent = errors.New("integrand: monomial exponents must be non-negative")
)
