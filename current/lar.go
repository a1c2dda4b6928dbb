package current

import "github.com/plasmalab/tokamak/interp"

// LAR is the Large-Aspect-Ratio current: no poloidal current contribution
// and a unit toroidal field function.
type LAR struct{}

func NewLAR() *LAR {
	return &LAR{}
}

// I always returns 0.0.
func (l *LAR) I(psi float64, acc *interp.Accel) (float64, error) {
	return 0.0, nil
}

// G always returns 1.0.
func (l *LAR) G(psi float64, acc *interp.Accel) (float64, error) {
	return 1.0, nil
}

// IDer always returns 0.0.
func (l *LAR) IDer(psi float64, acc *interp.Accel) (float64, error) {
	return 0.0, nil
}

// GDer always returns 0.0.
func (l *LAR) GDer(psi float64, acc *interp.Accel) (float64, error) {
	return 0.0, nil
}
