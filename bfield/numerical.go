package bfield

import (
	"fmt"

	"github.com/plasmalab/tokamak/dataset"
	"github.com/plasmalab/tokamak/interp"
)

// Numerical is a field-strength profile reconstructed from a tabulated
// |B|(flux, theta) grid.
//
// The flux grid gets 0.0 injected and the field table a matching all-ones
// row, since the normalized on-axis field strength is 1. Angles are wrapped
// into [0, 2*pi) before every evaluation.
type Numerical struct {
	bSpline *interp.Spline2D
}

// FromDataset builds a Numerical field from the equilibrium file at path.
func FromDataset(path, method string) (*Numerical, error) {
	src, err := dataset.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return FromSource(src, method)
}

// FromSource builds a Numerical field from an already-open source.
func FromSource(src dataset.Source, method string) (*Numerical, error) {
	psip, err := dataset.Get1DWithAxisValue(src, dataset.PsipCoord, 0.0)
	if err != nil {
		return nil, err
	}
	theta, err := src.Get1D(dataset.ThetaCoord)
	if err != nil {
		return nil, err
	}
	table, err := src.Get2D(dataset.BField)
	if err != nil {
		return nil, err
	}
	if len(table) != len(psip)-1 {
		return nil, fmt.Errorf("%w: %q has %d rows for %d flux samples",
			dataset.ErrBadShape, dataset.BField, len(table), len(psip)-1)
	}

	// Row 0 is the injected axis row, B0 = 1 in normalized units; the rest
	// is the table flattened row-major to pair with (psip, theta).
	flat := make([]float64, 0, len(psip)*len(theta))
	for j := 0; j < len(theta); j++ {
		flat = append(flat, 1.0)
	}
	for i, row := range table {
		if len(row) != len(theta) {
			return nil, fmt.Errorf("%w: %q row %d has %d columns for %d angle samples",
				dataset.ErrBadShape, dataset.BField, i, len(row), len(theta))
		}
		flat = append(flat, row...)
	}

	bSpline, err := interp.NewSpline2D(method, psip, theta, flat)
	if err != nil {
		return nil, fmt.Errorf("field spline: %w", err)
	}
	return &Numerical{bSpline: bSpline}, nil
}

// B returns the interpolated field strength.
func (n *Numerical) B(psi, theta float64, xacc, yacc *interp.Accel) (float64, error) {
	return n.bSpline.Eval(psi, wrapTheta(theta), xacc, yacc)
}

// DBDtheta returns the interpolated dB/dtheta.
func (n *Numerical) DBDtheta(psi, theta float64, xacc, yacc *interp.Accel) (float64, error) {
	return n.bSpline.DerivY(psi, wrapTheta(theta), xacc, yacc)
}

// DBDpsi returns the interpolated dB/dpsi.
func (n *Numerical) DBDpsi(psi, theta float64, xacc, yacc *interp.Accel) (float64, error) {
	return n.bSpline.DerivX(psi, wrapTheta(theta), xacc, yacc)
}

// D2BDpsi2 returns the interpolated d2B/dpsi2.
func (n *Numerical) D2BDpsi2(psi, theta float64, xacc, yacc *interp.Accel) (float64, error) {
	return n.bSpline.DerivXX(psi, wrapTheta(theta), xacc, yacc)
}
