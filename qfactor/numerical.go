package qfactor

import (
	"fmt"

	"github.com/plasmalab/tokamak/dataset"
	"github.com/plasmalab/tokamak/interp"
)

// Numerical is a q-factor reconstructed from tabulated equilibrium data.
//
// The flux grid gets psi = 0 injected and the q array its first sample
// duplicated, so the profile is defined at the magnetic axis. The psip
// profile is derived once at construction by integrating the q spline from
// 0 to every grid node.
type Numerical struct {
	qSpline    *interp.Spline
	psipSpline *interp.Spline

	// PsipData holds the integrated psip samples, one per flux grid node.
	PsipData []float64
}

// FromDataset builds a Numerical q-factor from the equilibrium file at path.
func FromDataset(path, method string) (*Numerical, error) {
	src, err := dataset.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return FromSource(src, method)
}

// FromSource builds a Numerical q-factor from an already-open source.
func FromSource(src dataset.Source, method string) (*Numerical, error) {
	psi, err := dataset.Get1DWithAxisValue(src, dataset.PsiCoord, 0.0)
	if err != nil {
		return nil, err
	}
	q, err := dataset.Get1DWithFirstValue(src, dataset.QFactor)
	if err != nil {
		return nil, err
	}

	qSpline, err := interp.NewSpline(method, psi, q)
	if err != nil {
		return nil, fmt.Errorf("q-factor spline: %w", err)
	}

	// One-time batch integration; a local accelerator is enough.
	acc := interp.NewAccel()
	psipData := make([]float64, len(psi))
	for i, p := range psi {
		psipData[i], err = qSpline.Integrate(0, p, acc)
		if err != nil {
			return nil, fmt.Errorf("psip integration at psi=%g: %w", p, err)
		}
	}

	psipSpline, err := interp.NewSpline(method, psi, psipData)
	if err != nil {
		return nil, fmt.Errorf("psip spline: %w", err)
	}

	return &Numerical{
		qSpline:    qSpline,
		psipSpline: psipSpline,
		PsipData:   psipData,
	}, nil
}

// Q returns the interpolated safety factor at psi.
func (n *Numerical) Q(psi float64, acc *interp.Accel) (float64, error) {
	return n.qSpline.Eval(psi, acc)
}

// Psip returns the interpolated poloidal flux at psi.
func (n *Numerical) Psip(psi float64, acc *interp.Accel) (float64, error) {
	return n.psipSpline.Eval(psi, acc)
}
