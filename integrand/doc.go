// Package integrand supplies reference integrands for the subdivision
// driver: functions that know their own exact integral over a box and a
// sound range envelope on it.
//
// 🚀 What is an integrand provider?
//
//	A pair of operations bound to one mathematical function f:
//
//	  • Integral(H) — the EXACT integral of f over the box H, consumed for
//	    boxes fully contained in the region
//	  • Range(H)    — (low, high) with low ≤ f(x) ≤ high for every x ∈ H,
//	    consumed for terminal boxes straddling the region boundary
//
//	Range bounds need not be tight, only sound; tighter bounds shrink the
//	driver's error band.
//
// ✨ Shipped providers:
//
//   - Normal   — the independent N-variate standard normal density; the
//     integral factors into Φ(bᵢ) − Φ(aᵢ) per axis, and the range envelopes
//     the exponent through the per-axis extremes of xᵢ²
//   - Monomial — Π xᵢ^kᵢ with non-negative integer exponents; the integral
//     is the power-rule product and the range sweeps endpoint powers plus
//     the interior zero of even exponents
//   - Constant — f ≡ c; integral c·Volume, range (c, c); the f ≡ 1 case
//     turns the driver into a pure measure (area/volume) estimator
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cubature/integrand"
//
//	pdf := integrand.Normal{}
//	mass := pdf.Integral(someBox)      // Π (Φ(bᵢ) − Φ(aᵢ))
//	lo, hi := pdf.Range(someBox)       // density envelope over the box
//
// All providers are stateless values: safe to share, trivially deterministic.
package integrand
