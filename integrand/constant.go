// Package integrand implements the constant provider.
package integrand

import "github.com/katalvlaran/cubature/hyperbox"

// Constant is the integrand f ≡ C.  With C = 1 the driver degenerates into a
// pure measure estimator: Sum and Error bound the region's area or volume
// inside the root box.
type Constant struct {
	// C is the constant function value.
	C float64
}

// One is the unit constant, the measure-estimation integrand.
var One = Constant{C: 1}

// Validate accepts every dimension.
func (Constant) Validate(int) error { return nil }

// Integral returns C times the box volume.
func (c Constant) Integral(h hyperbox.Box) float64 { return c.C * h.Volume() }

// Range returns the degenerate envelope (C, C).
func (c Constant) Range(hyperbox.Box) (low, high float64) { return c.C, c.C }
