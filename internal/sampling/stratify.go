package sampling

import (
	"fmt"
	"math"

	"github.com/yogiiiiiiiiii/TN-project-final/internal/tabular"
)

// DefaultNumBins is the number of equal-width strata.
const DefaultNumBins = 5

// Bin is a stratum: rows whose value lies in [Low, High), or [Low, High]
// when Closed is set (the last bin).
type Bin struct {
	Low    float64
	High   float64
	Closed bool
	Rows   [][]string
}

// Size is the number of rows in the bin.
func (b Bin) Size() int { return len(b.Rows) }

// Contains reports whether v falls inside the bin interval.
func (b Bin) Contains(v float64) bool {
	if v < b.Low {
		return false
	}
	if b.Closed {
		return v <= b.High
	}
	return v < b.High
}

// Label renders the interval in the usual half-open notation.
func (b Bin) Label() string {
	if b.Closed {
		return fmt.Sprintf("[%.4g, %.4g]", b.Low, b.High)
	}
	return fmt.Sprintf("[%.4g, %.4g)", b.Low, b.High)
}

// Strata is the outcome of binning one column.
type Strata struct {
	Bins       []Bin
	Min, Max   float64
	Width      float64
	Degenerate bool
	Excluded   []Exclusion
}

// Population is the number of binned rows.
func (s *Strata) Population() int {
	n := 0
	for _, b := range s.Bins {
		n += b.Size()
	}
	return n
}

// Sizes lists the bin sizes in order.
func (s *Strata) Sizes() []int {
	out := make([]int, len(s.Bins))
	for i, b := range s.Bins {
		out[i] = b.Size()
	}
	return out
}

// Stratify splits rows into numBins equal-width bins over [min, max] of the
// numeric values in column col. Rows whose value does not parse are left out
// and listed in Excluded. If every value is equal the column collapses into
// a single closed bin.
func Stratify(rows [][]string, col int, numBins int) (*Strata, error) {
	return stratify(rows, col, numBins, tabular.ParseNumber)
}

// StratifyWith is Stratify for values written with the given decimal separator.
func StratifyWith(rows [][]string, col int, numBins int, dec rune) (*Strata, error) {
	return stratify(rows, col, numBins, func(s string) (float64, bool) {
		return tabular.ParseNumberWith(s, dec)
	})
}

func stratify(rows [][]string, col int, numBins int, parse func(string) (float64, bool)) (*Strata, error) {
	if numBins < 1 {
		return nil, &InvalidParameterError{Name: "number of bins", Value: float64(numBins), Want: "at least 1"}
	}
	st := &Strata{Min: math.Inf(1), Max: math.Inf(-1)}
	values := make([]float64, len(rows))
	valid := make([]bool, len(rows))
	for i, row := range rows {
		if col < 0 || col >= len(row) {
			st.Excluded = append(st.Excluded, Exclusion{Row: i})
			continue
		}
		v, ok := parse(row[col])
		if !ok {
			st.Excluded = append(st.Excluded, Exclusion{Row: i, Value: row[col]})
			continue
		}
		values[i], valid[i] = v, true
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
	}
	if math.IsInf(st.Min, 1) {
		return nil, ErrEmptyPopulation
	}

	if st.Max == st.Min {
		st.Degenerate = true
		bin := Bin{Low: st.Min, High: st.Max, Closed: true}
		for i, row := range rows {
			if valid[i] {
				bin.Rows = append(bin.Rows, row)
			}
		}
		st.Bins = []Bin{bin}
		return st, nil
	}

	st.Width = (st.Max - st.Min) / float64(numBins)
	if math.IsInf(st.Width, 0) {
		return nil, &InvalidParameterError{Name: "value range", Value: st.Max - st.Min, Want: "a finite span between min and max"}
	}
	st.Bins = make([]Bin, numBins)
	for i := range st.Bins {
		st.Bins[i] = Bin{
			Low:  st.Min + float64(i)*st.Width,
			High: st.Min + float64(i+1)*st.Width,
		}
	}
	last := &st.Bins[numBins-1]
	last.High = st.Max
	last.Closed = true

	for i, row := range rows {
		if !valid[i] {
			continue
		}
		idx := int(math.Floor((values[i] - st.Min) / st.Width))
		if idx > numBins-1 {
			idx = numBins - 1
		}
		if idx < 0 {
			idx = 0
		}
		st.Bins[idx].Rows = append(st.Bins[idx].Rows, row)
	}
	return st, nil
}
