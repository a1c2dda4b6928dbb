// Package current provides plasma current profiles, either closed-form or
// reconstructed from tabulated equilibrium data.
package current

import "github.com/plasmalab/tokamak/interp"

// Current computes the poloidal (I) and toroidal (g) current functions and
// their radial derivatives.
//
// Derivatives are taken with respect to psi, not psip. A caller needing
// d/dpsip multiplies by q(psi).
type Current interface {
	// I returns the poloidal current function I(psi).
	I(psi float64, acc *interp.Accel) (float64, error)
	// G returns the toroidal current function g(psi).
	G(psi float64, acc *interp.Accel) (float64, error)
	// IDer returns dI/dpsi.
	IDer(psi float64, acc *interp.Accel) (float64, error)
	// GDer returns dg/dpsi.
	GDer(psi float64, acc *interp.Accel) (float64, error)
}
