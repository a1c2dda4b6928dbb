// Package qfactor provides safety-factor profiles, either closed-form or
// reconstructed from tabulated equilibrium data.
package qfactor

import "github.com/plasmalab/tokamak/interp"

// Qfactor computes safety-factor related quantities. Implementations are
// immutable after construction; the accelerators are caller-owned, one per
// query site, and are the only state mutated by a query.
type Qfactor interface {
	// Q returns the safety factor q(psi).
	Q(psi float64, acc *interp.Accel) (float64, error)
	// Psip returns the poloidal flux psip(psi).
	Psip(psi float64, acc *interp.Accel) (float64, error)
}
