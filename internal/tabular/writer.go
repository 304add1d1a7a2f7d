package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// WriteCSV serializes a header and rows as comma-separated text. Fields that
// contain the delimiter or quotes are quoted.
func WriteCSV(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if headers != nil {
		if err := cw.Write(headers); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// EncodeCSV is WriteCSV into a byte slice.
func EncodeCSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, headers, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Projection selects columns by position for export.
type Projection []int

// DefaultProjection is the 2nd, 3rd and 4th column of the input.
var DefaultProjection = Projection{1, 2, 3}

// ProjectionByName resolves header names (case-insensitive) to positions.
func ProjectionByName(headers []string, names []string) (Projection, error) {
	ds := Dataset{Headers: headers}
	p := make(Projection, 0, len(names))
	var missing []string
	for _, n := range names {
		idx := ds.ColumnIndex(n)
		if idx < 0 {
			missing = append(missing, n)
			continue
		}
		p = append(p, idx)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("export columns not found: %s (available: %s)",
			strings.Join(missing, ", "), strings.Join(headers, ", "))
	}
	return p, nil
}

// AllColumns projects every column in order.
func AllColumns(width int) Projection {
	p := make(Projection, width)
	for i := range p {
		p[i] = i
	}
	return p
}

// Validate reports a projection position outside the header width.
func (p Projection) Validate(width int) error {
	if len(p) == 0 {
		return fmt.Errorf("no export columns selected")
	}
	for _, i := range p {
		if i < 0 || i >= width {
			return fmt.Errorf("export column %d out of range: dataset has %d columns", i+1, width)
		}
	}
	return nil
}

// Apply picks the projected fields from a header and rows.
func (p Projection) Apply(headers []string, rows [][]string) ([]string, [][]string) {
	h := make([]string, len(p))
	for j, i := range p {
		h[j] = headers[i]
	}
	out := make([][]string, len(rows))
	for r, row := range rows {
		rec := make([]string, len(p))
		for j, i := range p {
			if i < len(row) {
				rec[j] = row[i]
			}
		}
		out[r] = rec
	}
	return h, out
}
