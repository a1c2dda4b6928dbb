// Package efield provides electric-field profiles over the
// (flux, poloidal angle) plane.
package efield

import "github.com/plasmalab/tokamak/interp"

// Efield computes the electric potential, field strength and potential
// derivatives. The interface mirrors the magnetic-field one so a
// spline-backed implementation can slot in beside the null field.
type Efield interface {
	// Phi returns the electric potential Phi(psi, theta).
	Phi(psi, theta float64, xacc, yacc *interp.Accel) (float64, error)
	// E returns the field strength E(psi, theta).
	E(psi, theta float64, xacc, yacc *interp.Accel) (float64, error)
	// DPhiDpsi returns dPhi/dpsi.
	DPhiDpsi(psi, theta float64, xacc, yacc *interp.Accel) (float64, error)
	// DPhiDtheta returns dPhi/dtheta.
	DPhiDtheta(psi, theta float64, xacc, yacc *interp.Accel) (float64, error)
}
