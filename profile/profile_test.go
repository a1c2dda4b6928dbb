package profile

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/plasmalab/tokamak"
	"github.com/plasmalab/tokamak/bfield"
	"github.com/plasmalab/tokamak/current"
	"github.com/plasmalab/tokamak/efield"
	"github.com/plasmalab/tokamak/qfactor"
)

func larEquilibrium(t *testing.T) *tokamak.Dynamic {
	t.Helper()
	qf, err := qfactor.NewParabolic(1.1, 3.9, 0.125)
	if err != nil {
		t.Fatal(err)
	}
	return &tokamak.Dynamic{
		Qfactor: qf,
		Bfield:  bfield.NewLAR(),
		Current: current.NewLAR(),
		Efield:  efield.NewNoEfield(),
	}
}

func TestSample(t *testing.T) {
	eq := larEquilibrium(t)
	d, err := Sample(eq, 0, 0.125, 11, 0.0)
	if err != nil {
		t.Fatal(err)
	}

	if len(d.Psi) != 11 {
		t.Fatalf("expected 11 samples, got %d", len(d.Psi))
	}
	if d.Psi[0] != 0 || math.Abs(d.Psi[10]-0.125) > 1e-15 {
		t.Errorf("unexpected flux range: [%g, %g]", d.Psi[0], d.Psi[10])
	}
	if d.Q[0] != 1.1 {
		t.Errorf("q at axis = %g, want 1.1", d.Q[0])
	}
	if math.Abs(d.Q[10]-3.9) > 1e-12 {
		t.Errorf("q at wall = %g, want 3.9", d.Q[10])
	}
	for k := range d.I {
		if d.I[k] != 0 || d.G[k] != 1 {
			t.Fatalf("LAR currents at sample %d: i=%g g=%g", k, d.I[k], d.G[k])
		}
	}
	// B at theta=0 is 1 - sqrt(2*psi)
	want := 1 - math.Sqrt(2*0.125)
	if math.Abs(d.B[10]-want) > 1e-12 {
		t.Errorf("b at wall = %g, want %g", d.B[10], want)
	}
}

func TestSampleBadArgs(t *testing.T) {
	eq := larEquilibrium(t)
	if _, err := Sample(eq, 0, 0.125, 1, 0); err == nil {
		t.Error("expected error for too few samples")
	}
	if _, err := Sample(eq, 0.2, 0.1, 10, 0); err == nil {
		t.Error("expected error for reversed range")
	}
}

func TestWriteJSON(t *testing.T) {
	eq := larEquilibrium(t)
	d, err := Sample(eq, 0, 0.125, 5, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, d); err != nil {
		t.Fatal(err)
	}

	var back Data
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatal(err)
	}
	if len(back.Q) != 5 || back.Theta != 1.0 {
		t.Errorf("unexpected round-trip: %+v", back)
	}
}

func TestWriteCSV(t *testing.T) {
	eq := larEquilibrium(t)
	d, err := Sample(eq, 0, 0.125, 5, 0.0)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, d); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 6 {
		t.Fatalf("expected header + 5 rows, got %d", len(records))
	}
	if records[0][1] != "q" {
		t.Errorf("unexpected header: %v", records[0])
	}
}
