// Package integrand implements the monomial (power-product) provider.
package integrand

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cubature/hyperbox"
)

// Monomial is the power product f(x) = Π xᵢ^kᵢ with non-negative integer
// exponents, one per axis.
type Monomial struct {
	// Exponents holds kᵢ per axis, in box axis order.
	Exponents []int
}

// Validate checks the provider fits an n-dimensional run: one exponent per
// axis and no negative exponents.
func (m Monomial) Validate(n int) error {
	if len(m.Exponents) != n {
		return ErrDimensionMismatch
	}
	for _, k := range m.Exponents {
		if k < 0 {
			return ErrNegativeExponent
		}
	}

	return nil
}

// Integral returns the exact power-rule product
// Π (Highᵢ^(kᵢ+1) − Lowᵢ^(kᵢ+1)) / (kᵢ+1).
func (m Monomial) Integral(h hyperbox.Box) float64 {
	rv := 1.0
	for i, k := range m.Exponents {
		iv := h.Interval(i)
		p := float64(k + 1)
		rv *= (math.Pow(iv.High, p) - math.Pow(iv.Low, p)) / p
	}

	return rv
}

// Range envelopes the monomial over h by sweeping axis-wise candidate values:
// the two endpoint powers per axis, plus 0 when the exponent is even and the
// axis spans the origin (an even power's interior minimum).  The extremes of
// the accumulated products bound f over the whole box.
func (m Monomial) Range(h hyperbox.Box) (low, high float64) {
	values := []float64{1}

	for i, k := range m.Exponents {
		iv := h.Interval(i)

		// A zero base contributes 0 for any positive exponent; x⁰ is 1
		// everywhere, as in Integral.
		first, second := 0.0, 0.0
		if iv.Low != 0 || k == 0 {
			first = math.Pow(iv.Low, float64(k))
		}
		if iv.High != 0 || k == 0 {
			second = math.Pow(iv.High, float64(k))
		}
		spansZero := k%2 == 0 && iv.Low <= 0 && iv.High >= 0

		next := make([]float64, 0, len(values)*3)
		for _, v := range values {
			next = append(next, v*first, v*second)
			if spansZero {
				next = append(next, 0)
			}
		}
		values = next
	}

	return floats.Min(values), floats.Max(values)
}
