package bfield

import (
	"errors"
	"math"
	"testing"

	"github.com/plasmalab/tokamak/dataset"
	"github.com/plasmalab/tokamak/interp"
)

// Cross-checked against the reference guiding-center code.
func TestLARReferenceValues(t *testing.T) {
	l := NewLAR()

	b, err := l.B(0.01, 1.0, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if b != 0.9235897151259821 {
		t.Errorf("B(0.01, 1.0) = %.16g, want 0.9235897151259821", b)
	}

	dpsi, err := l.DBDpsi(0.01, 1.0, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if dpsi != -3.820514243700898 {
		t.Errorf("DBDpsi(0.01, 1.0) = %.16g, want -3.820514243700898", dpsi)
	}

	dtheta, err := l.DBDtheta(0.01, 1.0, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if dtheta != 0.11900196790587718 {
		t.Errorf("DBDtheta(0.01, 1.0) = %.16g, want 0.11900196790587718", dtheta)
	}
}

func TestLARPeriodicity(t *testing.T) {
	l := NewLAR()
	for _, theta := range []float64{-7.5, -1.0, 0.0, 2.0, 9.42} {
		b1, _ := l.B(0.02, theta, nil, nil)
		b2, _ := l.B(0.02, theta+2*math.Pi, nil, nil)
		if math.Abs(b1-b2) > 1e-12 {
			t.Errorf("B not periodic at theta=%g: %g vs %g", theta, b1, b2)
		}
	}
}

func TestWrapTheta(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}
	for _, c := range cases {
		got := wrapTheta(c.in)
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("wrapTheta(%g) = %g, want %g", c.in, got, c.want)
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("wrapTheta(%g) = %g outside [0, 2*pi)", c.in, got)
		}
	}
}

// bSource tabulates B = 1 - sqrt(2*psi)*cos(theta) on an off-axis grid, with
// psip standing in for psi so numerical and LAR values can be compared.
func bSource() *dataset.Static {
	npsi, ntheta := 30, 64
	psip := make([]float64, npsi)
	for i := range psip {
		psip[i] = 0.005 * float64(i+1)
	}
	theta := make([]float64, ntheta)
	for j := range theta {
		theta[j] = 2 * math.Pi * float64(j) / float64(ntheta-1)
	}
	table := make([][]float64, npsi)
	for i := range table {
		table[i] = make([]float64, ntheta)
		for j := range table[i] {
			table[i][j] = 1 - math.Sqrt(2*psip[i])*math.Cos(theta[j])
		}
	}
	return &dataset.Static{
		Arrays: map[string][]float64{
			dataset.PsipCoord:  psip,
			dataset.ThetaCoord: theta,
		},
		Tables: map[string][][]float64{
			dataset.BField: table,
		},
	}
}

func TestNumericalAxisRow(t *testing.T) {
	n, err := FromSource(bSource(), "bicubic")
	if err != nil {
		t.Fatal(err)
	}
	xacc, yacc := interp.NewAccel(), interp.NewAccel()

	// Injected axis row: B = 1 for every angle at psi = 0.
	for _, theta := range []float64{0, 1.0, math.Pi, 5.0} {
		b, err := n.B(0, theta, xacc, yacc)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(b-1.0) > 1e-12 {
			t.Errorf("B(0, %g) = %g, want 1.0", theta, b)
		}
	}
}

func TestNumericalMatchesLAR(t *testing.T) {
	n, err := FromSource(bSource(), "bicubic")
	if err != nil {
		t.Fatal(err)
	}
	l := NewLAR()
	xacc, yacc := interp.NewAccel(), interp.NewAccel()

	for _, psi := range []float64{0.02, 0.05, 0.1} {
		for _, theta := range []float64{0.5, 2.0, 4.5} {
			got, err := n.B(psi, theta, xacc, yacc)
			if err != nil {
				t.Fatal(err)
			}
			want, _ := l.B(psi, theta, nil, nil)
			if math.Abs(got-want) > 1e-3 {
				t.Errorf("B(%g, %g) = %g, want %g", psi, theta, got, want)
			}

			gotD, err := n.DBDtheta(psi, theta, xacc, yacc)
			if err != nil {
				t.Fatal(err)
			}
			wantD, _ := l.DBDtheta(psi, theta, nil, nil)
			if math.Abs(gotD-wantD) > 1e-2 {
				t.Errorf("DBDtheta(%g, %g) = %g, want %g", psi, theta, gotD, wantD)
			}
		}
	}
}

func TestNumericalThetaWrapping(t *testing.T) {
	n, err := FromSource(bSource(), "bicubic")
	if err != nil {
		t.Fatal(err)
	}
	xacc, yacc := interp.NewAccel(), interp.NewAccel()

	for _, theta := range []float64{0.3, 1.7, 4.0} {
		base, err := n.B(0.05, theta, xacc, yacc)
		if err != nil {
			t.Fatal(err)
		}
		for _, k := range []float64{-2, -1, 1, 3} {
			got, err := n.B(0.05, theta+k*2*math.Pi, xacc, yacc)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got-base) > 1e-12 {
				t.Errorf("B not periodic: theta=%g k=%g: %g vs %g", theta, k, got, base)
			}
		}
	}
}

func TestNumericalDomainError(t *testing.T) {
	n, err := FromSource(bSource(), "bicubic")
	if err != nil {
		t.Fatal(err)
	}
	xacc, yacc := interp.NewAccel(), interp.NewAccel()
	if _, err := n.B(10.0, 1.0, xacc, yacc); !errors.Is(err, interp.ErrDomain) {
		t.Errorf("expected ErrDomain, got %v", err)
	}
}

func TestNumericalMissingVariable(t *testing.T) {
	src := bSource()
	delete(src.Tables, dataset.BField)
	if _, err := FromSource(src, "bicubic"); !errors.Is(err, dataset.ErrMissingVariable) {
		t.Errorf("expected ErrMissingVariable, got %v", err)
	}
}

func TestNumericalRaggedTable(t *testing.T) {
	src := bSource()
	src.Tables[dataset.BField][3] = src.Tables[dataset.BField][3][:10]
	if _, err := FromSource(src, "bicubic"); !errors.Is(err, dataset.ErrBadShape) {
		t.Errorf("expected ErrBadShape, got %v", err)
	}
}

func TestNumericalUnknownMethod(t *testing.T) {
	if _, err := FromSource(bSource(), "septic"); !errors.Is(err, interp.ErrUnknownMethod) {
		t.Errorf("expected ErrUnknownMethod, got %v", err)
	}
}
