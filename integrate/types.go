// Package integrate defines the Provider contract, run Options, the Result
// record, and sentinel errors for the subdivision driver.
package integrate

import (
	"errors"

	"github.com/katalvlaran/cubature/hyperbox"
	"github.com/katalvlaran/cubature/region"
)

// Sentinel errors for integration runs.
var (
	// ErrNilRegion indicates Integrate was called without a region.
	ErrNilRegion = errors.New("integrate: region must not be nil")

	// ErrNilProvider indicates Integrate was called without an integrand.
	ErrNilProvider = errors.New("integrate: integrand provider must not be nil")

	// ErrDimensionMismatch indicates the root box and region dimensions differ.
	ErrDimensionMismatch = errors.New("integrate: root box and region dimensions differ")

	// ErrBadOptions indicates an invalid options combination.
	ErrBadOptions = errors.New("integrate: invalid options combination")

	// ErrNonFinite indicates the accumulators went NaN or infinite while
	// finalizing a leaf.  The failure names the offending box.
	ErrNonFinite = errors.New("integrate: non-finite accumulation")

	// ErrNegativeError indicates a terminal leaf contributed a negative
	// error band — the integrand's Range is not a sound envelope.
	ErrNegativeError = errors.New("integrate: negative error contribution")
)

// Provider presents one mathematical function f to the driver.
//
// Integral must be the EXACT integral of f over the box — it is consumed for
// boxes fully contained in the region.  Range must satisfy
// low ≤ f(x) ≤ high for every x in the box; the bounds need not be tight,
// but an unsound Range voids the run's bracket and trips ErrNegativeError.
type Provider interface {
	// Validate reports whether the provider fits an n-dimensional run.
	Validate(n int) error

	// Integral returns the exact integral of f over h.
	Integral(h hyperbox.Box) float64

	// Range returns a sound envelope (low, high) of f over h.
	Range(h hyperbox.Box) (low, high float64)
}

// Options configures a single integration run.
//
// Fields:
//
//	MaxSplits   - subdivision depth limit ≥ 0: an indeterminate box at this
//	              depth becomes a terminal leaf instead of splitting.  The
//	              breadth-first queue keeps a slot for every box enqueued
//	              during the run, and depth k alone can hold up to 2^(N·k)
//	              boxes, so keep N·MaxSplits modest.
//	ReturnCubes - if true, the Result carries every terminal box with its
//	              classification, in visitation order.
type Options struct {
	MaxSplits   int
	ReturnCubes bool
}

// DefaultOptions returns an Options struct pre-populated with safe defaults.
//
//	MaxSplits:   6      // fine enough for the reference scenarios
//	ReturnCubes: false  // keep memory flat
func DefaultOptions() Options {
	return Options{
		MaxSplits:   6,
		ReturnCubes: false,
	}
}

// Validate checks that Options fields hold a valid combination.  It returns
// ErrBadOptions when MaxSplits is negative.
func (o *Options) Validate() error {
	if o.MaxSplits < 0 {
		return ErrBadOptions
	}

	return nil
}

// Cube is one terminal box of the subdivision together with its
// classification.  Split boxes never appear: only leaves the driver actually
// resolved or bounded.
type Cube struct {
	// Box is the terminal box.
	Box hyperbox.Box

	// State is the box's classification relative to the region.
	State region.State
}

// Result is the outcome of an integration run.
//
// Sum is a lower bound on the integral and Sum + Error an upper bound, with
// Error ≥ 0 always.  Origin echoes the root box.  Cubes is non-nil only when
// Options.ReturnCubes was set, and then holds one entry per terminal box in
// the driver's visitation order.
type Result struct {
	Sum    float64
	Error  float64
	Origin hyperbox.Box
	Cubes  []Cube
}
