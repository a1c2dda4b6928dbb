package dataset

import (
	"fmt"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
)

// File is a netCDF-backed Source.
type File struct {
	path string
	nc   api.Group
}

// Open opens a reconstructed equilibrium netCDF file.
func Open(path string) (*File, error) {
	nc, err := netcdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	return &File{path: path, nc: nc}, nil
}

// Close releases the underlying file handle.
func (f *File) Close() error {
	f.nc.Close()
	return nil
}

// Path returns the file path the source was opened from.
func (f *File) Path() string { return f.path }

// Variables lists the variable names present in the file.
func (f *File) Variables() []string {
	return f.nc.ListVariables()
}

func (f *File) variable(name string) (*api.Variable, error) {
	vr, err := f.nc.GetVariable(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q in %s: %v", ErrMissingVariable, name, f.path, err)
	}
	return vr, nil
}

// Get1D returns the named 1D variable.
func (f *File) Get1D(name string) ([]float64, error) {
	vr, err := f.variable(name)
	if err != nil {
		return nil, err
	}
	switch vals := vr.Values.(type) {
	case []float64:
		return vals, nil
	case []float32:
		out := make([]float64, len(vals))
		for i, v := range vals {
			out[i] = float64(v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q is %T, want 1D float array", ErrBadShape, name, vr.Values)
	}
}

// Get2D returns the named 2D variable as rows of equal length.
func (f *File) Get2D(name string) ([][]float64, error) {
	vr, err := f.variable(name)
	if err != nil {
		return nil, err
	}
	switch vals := vr.Values.(type) {
	case [][]float64:
		return vals, nil
	case [][]float32:
		out := make([][]float64, len(vals))
		for i, row := range vals {
			out[i] = make([]float64, len(row))
			for j, v := range row {
				out[i][j] = float64(v)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q is %T, want 2D float array", ErrBadShape, name, vr.Values)
	}
}
