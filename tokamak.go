// Package tokamak composes safety-factor, magnetic-field, plasma-current and
// electric-field profiles into a single equilibrium handle for guiding-center
// and particle-orbit codes.
//
// An Equilibrium is immutable after construction and may be queried from any
// number of goroutines, provided each query site owns its accelerators:
//
//	qf, _ := qfactor.NewParabolic(1.1, 3.9, 0.125)
//	eq, _ := tokamak.Build(qf, bfield.NewLAR(), current.NewLAR(), efield.NewNoEfield())
//
//	psiAcc, thetaAcc := interp.NewAccel(), interp.NewAccel()
//	b, err := eq.Bfield.B(0.01, math.Pi, psiAcc, thetaAcc)
package tokamak

import (
	"github.com/plasmalab/tokamak/bfield"
	"github.com/plasmalab/tokamak/current"
	"github.com/plasmalab/tokamak/dataset"
	"github.com/plasmalab/tokamak/efield"
	"github.com/plasmalab/tokamak/qfactor"
)

// Equilibrium is one implementation of each of the four field capabilities.
// Instantiating with concrete types keeps dispatch static; instantiating
// with the interface types gives runtime-selected profiles.
type Equilibrium[Q qfactor.Qfactor, B bfield.Bfield, C current.Current, E efield.Efield] struct {
	Qfactor Q
	Bfield  B
	Current C
	Efield  E
}

// Dynamic is an equilibrium whose profiles are chosen at runtime.
type Dynamic = Equilibrium[qfactor.Qfactor, bfield.Bfield, current.Current, efield.Efield]

// Build composes already-constructed profiles. It performs no I/O; any
// parameter validation has already happened in the profile constructors.
func Build[Q qfactor.Qfactor, B bfield.Bfield, C current.Current, E efield.Efield](
	q Q, b B, c C, e E,
) (*Equilibrium[Q, B, C, E], error) {
	return &Equilibrium[Q, B, C, E]{
		Qfactor: q,
		Bfield:  b,
		Current: c,
		Efield:  e,
	}, nil
}

// Numerical is an equilibrium fully reconstructed from a dataset, with the
// null electric field.
type Numerical = Equilibrium[*qfactor.Numerical, *bfield.Numerical, *current.Numerical, *efield.NoEfield]

// FromDataset reconstructs an equilibrium from the file at path, using
// method1d for the radial splines and method2d for the field-strength
// surface. The file is opened once and shared by the three numerical
// constructors; the first failure aborts construction.
func FromDataset(path, method1d, method2d string) (*Numerical, error) {
	src, err := dataset.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	qf, err := qfactor.FromSource(src, method1d)
	if err != nil {
		return nil, err
	}
	bf, err := bfield.FromSource(src, method2d)
	if err != nil {
		return nil, err
	}
	cur, err := current.FromSource(src, method1d)
	if err != nil {
		return nil, err
	}

	return Build(qf, bf, cur, efield.NewNoEfield())
}
