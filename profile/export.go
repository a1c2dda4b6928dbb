package profile

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
)

// WriteJSON writes the sampled profiles as indented JSON.
func WriteJSON(w io.Writer, d *Data) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// ExportJSON writes the sampled profiles to a JSON file.
func ExportJSON(path string, d *Data) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(f, d)
}

// WriteCSV writes the sampled profiles as CSV with a header row.
func WriteCSV(w io.Writer, d *Data) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"psi", "q", "psip", "i", "g", "b"}); err != nil {
		return err
	}
	for k := range d.Psi {
		row := []string{
			strconv.FormatFloat(d.Psi[k], 'g', -1, 64),
			strconv.FormatFloat(d.Q[k], 'g', -1, 64),
			strconv.FormatFloat(d.Psip[k], 'g', -1, 64),
			strconv.FormatFloat(d.I[k], 'g', -1, 64),
			strconv.FormatFloat(d.G[k], 'g', -1, 64),
			strconv.FormatFloat(d.B[k], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the sampled profiles to a CSV file.
func ExportCSV(path string, d *Data) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, d)
}
