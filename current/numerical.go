package current

import (
	"fmt"

	"github.com/plasmalab/tokamak/dataset"
	"github.com/plasmalab/tokamak/interp"
)

// Numerical holds two independent splines over the flux grid, one for each
// current function.
//
// The flux grid gets 0.0 injected; the raw tables carry no explicit axis
// sample for I and g, so each array reuses its first sample as the axis
// proxy.
type Numerical struct {
	iSpline *interp.Spline
	gSpline *interp.Spline
}

// FromDataset builds a Numerical current from the equilibrium file at path.
func FromDataset(path, method string) (*Numerical, error) {
	src, err := dataset.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return FromSource(src, method)
}

// FromSource builds a Numerical current from an already-open source.
func FromSource(src dataset.Source, method string) (*Numerical, error) {
	psi, err := dataset.Get1DWithAxisValue(src, dataset.PsiCoord, 0.0)
	if err != nil {
		return nil, err
	}
	iData, err := dataset.Get1DWithFirstValue(src, dataset.CurrentI)
	if err != nil {
		return nil, err
	}
	gData, err := dataset.Get1DWithFirstValue(src, dataset.CurrentG)
	if err != nil {
		return nil, err
	}

	iSpline, err := interp.NewSpline(method, psi, iData)
	if err != nil {
		return nil, fmt.Errorf("I-current spline: %w", err)
	}
	gSpline, err := interp.NewSpline(method, psi, gData)
	if err != nil {
		return nil, fmt.Errorf("g-current spline: %w", err)
	}

	return &Numerical{iSpline: iSpline, gSpline: gSpline}, nil
}

// I returns the interpolated poloidal current function at psi.
func (n *Numerical) I(psi float64, acc *interp.Accel) (float64, error) {
	return n.iSpline.Eval(psi, acc)
}

// G returns the interpolated toroidal current function at psi.
func (n *Numerical) G(psi float64, acc *interp.Accel) (float64, error) {
	return n.gSpline.Eval(psi, acc)
}

// IDer returns the interpolated dI/dpsi.
func (n *Numerical) IDer(psi float64, acc *interp.Accel) (float64, error) {
	return n.iSpline.Deriv(psi, acc)
}

// GDer returns the interpolated dg/dpsi.
func (n *Numerical) GDer(psi float64, acc *interp.Accel) (float64, error) {
	return n.gSpline.Deriv(psi, acc)
}
