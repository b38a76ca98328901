package integrand_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubature/hyperbox"
	"github.com/katalvlaran/cubature/integrand"
)

// box is a test helper building a box from interval pairs.
func box(t *testing.T, pairs ...[2]float64) hyperbox.Box {
	t.Helper()
	ivs := make([]hyperbox.Interval, len(pairs))
	for i, p := range pairs {
		ivs[i] = hyperbox.Interval{Low: p[0], High: p[1]}
	}
	h, err := hyperbox.New(ivs...)
	require.NoError(t, err, "box construction must succeed")

	return h
}

// stdPhi is the standard normal CDF via erf, an oracle independent of the
// provider's own implementation.
func stdPhi(x float64) float64 { return (1 + math.Erf(x/math.Sqrt2)) / 2 }

// TestNormal_Integral checks the factored mass against the erf oracle.
func TestNormal_Integral(t *testing.T) {
	pdf := integrand.Normal{}

	// Nearly all of the 2-D mass.
	wide := box(t, [2]float64{-5, 5}, [2]float64{-5, 5})
	want := math.Pow(stdPhi(5)-stdPhi(-5), 2)
	assert.InDelta(t, want, pdf.Integral(wide), 1e-12, "mass over [−5,5]² must match the erf oracle")
	assert.InDelta(t, 0.99999885, pdf.Integral(wide), 1e-6, "mass over [−5,5]² is ≈ 0.99999885")

	// An asymmetric 1-D slice.
	slice := box(t, [2]float64{-1, 0.5})
	assert.InDelta(t, stdPhi(0.5)-stdPhi(-1), pdf.Integral(slice), 1e-12, "1-D mass must match Φ differences")
}

// TestNormal_Range checks the density envelope on boxes left of, right of,
// and spanning the origin.
func TestNormal_Range(t *testing.T) {
	pdf := integrand.Normal{}
	common := 1 / math.Sqrt(2*math.Pi)

	// Entirely right of 0: min at x=2, max at x=1.
	lo, hi := pdf.Range(box(t, [2]float64{1, 2}))
	assert.InDelta(t, common*math.Exp(-2), lo, 1e-15, "minimum density sits at the far endpoint")
	assert.InDelta(t, common*math.Exp(-0.5), hi, 1e-15, "maximum density sits at the near endpoint")

	// Entirely left of 0, mirrored.
	lo, hi = pdf.Range(box(t, [2]float64{-2, -1}))
	assert.InDelta(t, common*math.Exp(-2), lo, 1e-15, "mirrored minimum density")
	assert.InDelta(t, common*math.Exp(-0.5), hi, 1e-15, "mirrored maximum density")

	// Spanning 0: the mode itself is attainable.
	lo, hi = pdf.Range(box(t, [2]float64{-1, 2}))
	assert.InDelta(t, common*math.Exp(-2), lo, 1e-15, "minimum at the endpoint farther from 0")
	assert.InDelta(t, common, hi, 1e-15, "maximum is the mode when the axis spans 0")

	// Envelope soundness at sampled points.
	h := box(t, [2]float64{-1, 2}, [2]float64{0.5, 3})
	lo, hi = pdf.Range(h)
	for _, x := range []float64{-1, 0, 1, 2} {
		for _, y := range []float64{0.5, 1, 3} {
			f := math.Exp(-(x*x+y*y)/2) / (2 * math.Pi)
			assert.GreaterOrEqual(t, f, lo-1e-15, "density at (%g,%g) must respect the lower bound", x, y)
			assert.LessOrEqual(t, f, hi+1e-15, "density at (%g,%g) must respect the upper bound", x, y)
		}
	}
}

// TestMonomial_Validate covers arity and exponent-sign validation.
func TestMonomial_Validate(t *testing.T) {
	assert.NoError(t, integrand.Monomial{Exponents: []int{1, 2}}.Validate(2), "matching arity must validate")
	assert.ErrorIs(t, integrand.Monomial{Exponents: []int{1}}.Validate(2),
		integrand.ErrDimensionMismatch, "arity mismatch must error")
	assert.ErrorIs(t, integrand.Monomial{Exponents: []int{1, -2}}.Validate(2),
		integrand.ErrNegativeExponent, "negative exponent must error")
}

// TestMonomial_Integral checks power-rule products.
func TestMonomial_Integral(t *testing.T) {
	// ∫∫ xy over [0,1]² = 1/4.
	xy := integrand.Monomial{Exponents: []int{1, 1}}
	assert.InDelta(t, 0.25, xy.Integral(box(t, [2]float64{0, 1}, [2]float64{0, 1})), 1e-15,
		"xy over the unit square integrates to 1/4")

	// ∫ x² over [−1,1] = 2/3.
	sq := integrand.Monomial{Exponents: []int{2}}
	assert.InDelta(t, 2.0/3.0, sq.Integral(box(t, [2]float64{-1, 1})), 1e-15,
		"x² over [−1,1] integrates to 2/3")

	// k = 0 reduces to the volume.
	flat := integrand.Monomial{Exponents: []int{0, 0}}
	assert.InDelta(t, 6.0, flat.Integral(box(t, [2]float64{0, 2}, [2]float64{0, 3})), 1e-15,
		"the zero monomial integrates to the box volume")
}

// TestMonomial_Range checks the candidate sweep, including the interior zero
// of even exponents.
func TestMonomial_Range(t *testing.T) {
	// x² over [−2,1]: endpoint powers 4 and 1, interior 0.
	sq := integrand.Monomial{Exponents: []int{2}}
	lo, hi := sq.Range(box(t, [2]float64{-2, 1}))
	assert.Equal(t, 0.0, lo, "even power spanning 0 attains 0")
	assert.Equal(t, 4.0, hi, "even power peaks at the farther endpoint")

	// x over [−1,2]: odd power keeps endpoint order.
	lin := integrand.Monomial{Exponents: []int{1}}
	lo, hi = lin.Range(box(t, [2]float64{-1, 2}))
	assert.Equal(t, -1.0, lo, "odd power minimum at the low endpoint")
	assert.Equal(t, 2.0, hi, "odd power maximum at the high endpoint")

	// x²·y over [−1,1] × [−3,−2]: x² ∈ [0,1], y < 0 flips the products.
	mixed := integrand.Monomial{Exponents: []int{2, 1}}
	lo, hi = mixed.Range(box(t, [2]float64{-1, 1}, [2]float64{-3, -2}))
	assert.Equal(t, -3.0, lo, "minimum pairs the largest x² with the most negative y")
	assert.Equal(t, 0.0, hi, "maximum is the interior zero of x²")
}

// TestConstant covers the degenerate provider.
func TestConstant(t *testing.T) {
	h := box(t, [2]float64{0, 2}, [2]float64{0, 3})

	c := integrand.Constant{C: 2.5}
	assert.NoError(t, c.Validate(7), "constants fit any dimension")
	assert.InDelta(t, 15.0, c.Integral(h), 1e-15, "integral is C times the volume")

	lo, hi := c.Range(h)
	assert.Equal(t, 2.5, lo, "range lower bound is C")
	assert.Equal(t, 2.5, hi, "range upper bound is C")

	assert.Equal(t, 1.0, integrand.One.C, "One is the unit constant")
}
