package dataset

import "fmt"

// Static is an in-memory Source backed by maps, for programmatic tables and
// tests.
type Static struct {
	Arrays map[string][]float64
	Tables map[string][][]float64
}

// Get1D returns the named 1D variable.
func (s *Static) Get1D(name string) ([]float64, error) {
	data, ok := s.Arrays[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingVariable, name)
	}
	return data, nil
}

// Get2D returns the named 2D variable.
func (s *Static) Get2D(name string) ([][]float64, error) {
	data, ok := s.Tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingVariable, name)
	}
	return data, nil
}
