package qfactor

import "github.com/plasmalab/tokamak/interp"

// Unity is the trivial profile q = 1, under which psi and psip coincide.
type Unity struct{}

func NewUnity() *Unity {
	return &Unity{}
}

// Q always returns 1.0.
func (u *Unity) Q(psi float64, acc *interp.Accel) (float64, error) {
	return 1.0, nil
}

// Psip always returns psi.
func (u *Unity) Psip(psi float64, acc *interp.Accel) (float64, error) {
	return psi, nil
}
