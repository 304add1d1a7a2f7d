package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrEmptyDataset is returned when the input has no header row.
var ErrEmptyDataset = errors.New("dataset is empty (no header row)")

// Options controls how tabular input is read.
type Options struct {
	// Delimiter for CSV. If 0, picked from the file extension (',' or '\t').
	Delimiter rune
	// DecimalSeparator used by ParseNumberWith. 0 means '.'.
	DecimalSeparator rune
	// Sheet selects an XLSX worksheet by name; empty means the first sheet.
	Sheet string
}

// DefaultOptions returns comma-delimited, dot-decimal reading.
func DefaultOptions() Options {
	return Options{Delimiter: ',', DecimalSeparator: '.'}
}

// Dataset is a header row plus data rows aligned positionally to it.
type Dataset struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// ColumnIndex finds a header by case-insensitive exact match. It returns -1
// if no header matches.
func (d *Dataset) ColumnIndex(name string) int {
	want := strings.TrimSpace(name)
	for i, h := range d.Headers {
		if strings.EqualFold(h, want) {
			return i
		}
	}
	return -1
}

// Conform drops every row whose field count differs from len(Headers) and
// returns how many were dropped.
func (d *Dataset) Conform() int {
	kept := d.Rows[:0]
	dropped := 0
	for _, row := range d.Rows {
		if len(row) != len(d.Headers) {
			dropped++
			continue
		}
		kept = append(kept, row)
	}
	d.Rows = kept
	return dropped
}

// Parse reads delimited text with a header line. Fields are trimmed; rows
// keep whatever field count they had so Conform can account for them.
func Parse(r io.Reader, opt Options) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	if opt.Delimiter != 0 {
		cr.Comma = opt.Delimiter
	}

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDataset
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	ds := &Dataset{Headers: trimAll(header)}
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(ds.Rows)+1, err)
		}
		ds.Rows = append(ds.Rows, trimAll(rec))
	}
	return ds, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(raw string, opt Options) (*Dataset, error) {
	return Parse(strings.NewReader(raw), opt)
}

// ReadFile loads a CSV, TSV or XLSX file, choosing the reader by extension.
func ReadFile(path string, opt Options) (*Dataset, error) {
	var (
		ds  *Dataset
		err error
	)
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		ds, err = ReadXLSX(path, opt.Sheet)
	} else {
		f, oerr := os.Open(path)
		if oerr != nil {
			return nil, fmt.Errorf("open csv: %w", oerr)
		}
		defer f.Close()
		if opt.Delimiter == 0 {
			opt.Delimiter = sniffDelimiter(path)
		}
		ds, err = Parse(f, opt)
	}
	if err != nil {
		return nil, err
	}
	ds.Name = filepath.Base(path)
	return ds, nil
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}

func trimAll(rec []string) []string {
	out := make([]string, len(rec))
	for i, s := range rec {
		out[i] = strings.TrimSpace(s)
	}
	return out
}

// ParseNumber converts a field to a finite float using '.' as the decimal
// separator. A trailing percent sign is ignored.
func ParseNumber(s string) (float64, bool) {
	return ParseNumberWith(s, '.')
}

// ParseNumberWith is ParseNumber with an explicit decimal separator. NaN and
// infinities are rejected so the caller can exclude the row.
func ParseNumberWith(s string, dec rune) (float64, bool) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimSuffix(raw, "%")
	raw = strings.ReplaceAll(raw, " ", "")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if dec != 0 && dec != '.' {
		if strings.Contains(raw, ".") {
			return 0, false
		}
		raw = strings.ReplaceAll(raw, string(dec), ".")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
