package efield

import "github.com/plasmalab/tokamak/interp"

// NoEfield is the null electric field. It keeps the equilibrium composition
// uniform when no electric field is modeled.
type NoEfield struct{}

func NewNoEfield() *NoEfield {
	return &NoEfield{}
}

// Phi always returns 0.0.
func (n *NoEfield) Phi(psi, theta float64, xacc, yacc *interp.Accel) (float64, error) {
	return 0.0, nil
}

// E always returns 0.0.
func (n *NoEfield) E(psi, theta float64, xacc, yacc *interp.Accel) (float64, error) {
	return 0.0, nil
}

// DPhiDpsi always returns 0.0.
func (n *NoEfield) DPhiDpsi(psi, theta float64, xacc, yacc *interp.Accel) (float64, error) {
	return 0.0, nil
}

// DPhiDtheta always returns 0.0.
func (n *NoEfield) DPhiDtheta(psi, theta float64, xacc, yacc *interp.Accel) (float64, error) {
	return 0.0, nil
}
