// Package bfield provides magnetic-field-strength profiles over the
// (flux, poloidal angle) plane, either closed-form or reconstructed from
// tabulated equilibrium data.
package bfield

import (
	"math"

	"github.com/plasmalab/tokamak/interp"
)

// Bfield computes the field strength and its flux/angle derivatives.
// Implementations are immutable after construction; the two accelerators are
// caller-owned, one per coordinate axis.
type Bfield interface {
	// B returns B(psi, theta).
	B(psi, theta float64, xacc, yacc *interp.Accel) (float64, error)
	// DBDtheta returns dB/dtheta.
	DBDtheta(psi, theta float64, xacc, yacc *interp.Accel) (float64, error)
	// DBDpsi returns dB/dpsi.
	DBDpsi(psi, theta float64, xacc, yacc *interp.Accel) (float64, error)
	// D2BDpsi2 returns d2B/dpsi2.
	D2BDpsi2(psi, theta float64, xacc, yacc *interp.Accel) (float64, error)
}

// wrapTheta maps any angle into [0, 2*pi).
func wrapTheta(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}
