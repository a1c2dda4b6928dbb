package bfield

import (
	"math"

	"github.com/plasmalab/tokamak/interp"
)

// LAR is the Large-Aspect-Ratio field B(psi, theta) = 1 - sqrt(2*psi)*cos(theta).
type LAR struct{}

func NewLAR() *LAR {
	return &LAR{}
}

// B returns 1 - sqrt(2*psi)*cos(theta).
func (l *LAR) B(psi, theta float64, xacc, yacc *interp.Accel) (float64, error) {
	return 1.0 - math.Sqrt(2*psi)*math.Cos(theta), nil
}

// DBDtheta returns sqrt(2*psi)*sin(theta).
func (l *LAR) DBDtheta(psi, theta float64, xacc, yacc *interp.Accel) (float64, error) {
	return math.Sqrt(2*psi) * math.Sin(theta), nil
}

// DBDpsi returns -cos(theta)/sqrt(2*psi).
func (l *LAR) DBDpsi(psi, theta float64, xacc, yacc *interp.Accel) (float64, error) {
	return -math.Cos(theta) / math.Sqrt(2*psi), nil
}

// D2BDpsi2 returns cos(theta)/(2*sqrt(psi))^(3/2), matching the reference
// implementation bit for bit. Note the exponent disagrees with what
// differentiating DBDpsi would give; downstream reference values depend on
// this exact form.
func (l *LAR) D2BDpsi2(psi, theta float64, xacc, yacc *interp.Accel) (float64, error) {
	return math.Cos(theta) / math.Pow(2*math.Sqrt(psi), 1.5), nil
}
