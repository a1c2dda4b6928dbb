package dataset

import (
	"errors"
	"testing"
)

func testSource() *Static {
	return &Static{
		Arrays: map[string][]float64{
			PsiCoord: {0.01, 0.02, 0.03},
			QFactor:  {1.1, 1.4, 1.9},
		},
		Tables: map[string][][]float64{
			BField: {{0.9, 1.0}, {0.8, 1.1}},
		},
	}
}

func TestStaticGet(t *testing.T) {
	src := testSource()

	psi, err := src.Get1D(PsiCoord)
	if err != nil {
		t.Fatal(err)
	}
	if len(psi) != 3 || psi[0] != 0.01 {
		t.Errorf("unexpected psi array: %v", psi)
	}

	b, err := src.Get2D(BField)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 2 || b[1][1] != 1.1 {
		t.Errorf("unexpected b table: %v", b)
	}
}

func TestStaticMissing(t *testing.T) {
	src := testSource()
	if _, err := src.Get1D("no_such"); !errors.Is(err, ErrMissingVariable) {
		t.Errorf("expected ErrMissingVariable, got %v", err)
	}
	if _, err := src.Get2D("no_such"); !errors.Is(err, ErrMissingVariable) {
		t.Errorf("expected ErrMissingVariable, got %v", err)
	}
}

func TestGet1DWithAxisValue(t *testing.T) {
	src := testSource()
	psi, err := Get1DWithAxisValue(src, PsiCoord, 0.0)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.0, 0.01, 0.02, 0.03}
	if len(psi) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(psi))
	}
	for i := range want {
		if psi[i] != want[i] {
			t.Errorf("psi[%d] = %g, want %g", i, psi[i], want[i])
		}
	}
}

func TestGet1DWithFirstValue(t *testing.T) {
	src := testSource()
	q, err := Get1DWithFirstValue(src, QFactor)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1.1, 1.1, 1.4, 1.9}
	if len(q) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(q))
	}
	for i := range want {
		if q[i] != want[i] {
			t.Errorf("q[%d] = %g, want %g", i, q[i], want[i])
		}
	}
}

func TestHelpersPropagateMissing(t *testing.T) {
	src := testSource()
	if _, err := Get1DWithAxisValue(src, "no_such", 0.0); !errors.Is(err, ErrMissingVariable) {
		t.Errorf("expected ErrMissingVariable, got %v", err)
	}
	if _, err := Get1DWithFirstValue(src, "no_such"); !errors.Is(err, ErrMissingVariable) {
		t.Errorf("expected ErrMissingVariable, got %v", err)
	}
}
