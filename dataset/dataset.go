// Package dataset extracts named equilibrium tables from reconstructed
// tokamak data files. The variable registry is fixed: reconstruction tools
// write these names and the quantity constructors read them.
package dataset

import (
	"errors"
	"fmt"
)

// Registry of variable names in a reconstructed equilibrium file.
const (
	PsiCoord   = "psi"     // toroidal flux coordinate grid
	PsipCoord  = "psip"    // poloidal flux coordinate grid
	ThetaCoord = "theta"   // poloidal angle grid
	QFactor    = "q"       // safety factor samples
	CurrentG   = "g"       // toroidal current function samples
	CurrentI   = "I"       // poloidal current function samples
	BField     = "b_field" // field strength table, flux x angle
)

var (
	// ErrMissingVariable reports a required variable absent from the source.
	ErrMissingVariable = errors.New("missing dataset variable")

	// ErrBadShape reports a variable whose rank or element type is not the
	// expected one.
	ErrBadShape = errors.New("unexpected dataset variable shape")
)

// Source yields named numeric arrays from a tabulated-equilibrium dataset.
type Source interface {
	// Get1D returns the named 1D variable.
	Get1D(name string) ([]float64, error)
	// Get2D returns the named 2D variable as rows of equal length.
	Get2D(name string) ([][]float64, error)
}

// Get1DWithAxisValue returns the named 1D variable with the scalar v
// prepended. Reconstructed grids start at the first off-axis surface; the
// injected value supplies the magnetic-axis sample.
func Get1DWithAxisValue(src Source, name string, v float64) ([]float64, error) {
	data, err := src.Get1D(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(data)+1)
	out = append(out, v)
	return append(out, data...), nil
}

// Get1DWithFirstValue returns the named 1D variable with its first sample
// duplicated at the front, standing in for a missing axis value.
func Get1DWithFirstValue(src Source, name string) ([]float64, error) {
	data, err := src.Get1D(name)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %q is empty", ErrBadShape, name)
	}
	out := make([]float64, 0, len(data)+1)
	out = append(out, data[0])
	return append(out, data...), nil
}
