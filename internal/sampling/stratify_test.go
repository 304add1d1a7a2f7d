package sampling

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func rowsWithValues(vals ...string) [][]string {
	rows := make([][]string, len(vals))
	for i, v := range vals {
		rows[i] = []string{strconv.Itoa(i), v}
	}
	return rows
}

func TestStratifyEqualWidthBins(t *testing.T) {
	st, err := Stratify(rowsWithValues("1", "2", "3", "4", "5"), 1, 5)
	if err != nil {
		t.Fatalf("Stratify: %v", err)
	}
	if len(st.Bins) != 5 {
		t.Fatalf("bins=%d, want 5", len(st.Bins))
	}
	bounds := []float64{1, 1.8, 2.6, 3.4, 4.2, 5}
	for i, b := range st.Bins {
		if b.Size() != 1 {
			t.Errorf("bin %d size=%d, want 1", i, b.Size())
		}
		if math.Abs(b.Low-bounds[i]) > 1e-9 || math.Abs(b.High-bounds[i+1]) > 1e-9 {
			t.Errorf("bin %d = %s, want [%v, %v)", i, b.Label(), bounds[i], bounds[i+1])
		}
		if want := strconv.Itoa(i + 1); b.Rows[0][1] != want {
			t.Errorf("bin %d holds %q, want %q", i, b.Rows[0][1], want)
		}
		if b.Closed != (i == 4) {
			t.Errorf("bin %d closed=%v", i, b.Closed)
		}
	}
	if !st.Bins[4].Contains(5) || st.Bins[3].Contains(4.2) {
		t.Errorf("interval membership wrong at the edges")
	}
}

func TestStratifyDegenerateRange(t *testing.T) {
	vals := make([]string, 10)
	for i := range vals {
		vals[i] = "7"
	}
	st, err := Stratify(rowsWithValues(vals...), 1, 5)
	if err != nil {
		t.Fatalf("Stratify: %v", err)
	}
	if !st.Degenerate || len(st.Bins) != 1 {
		t.Fatalf("expected one degenerate bin, got %d (degenerate=%v)", len(st.Bins), st.Degenerate)
	}
	if st.Bins[0].Size() != 10 {
		t.Fatalf("bin size=%d, want 10", st.Bins[0].Size())
	}
	if st.Bins[0].Low != 7 || st.Bins[0].High != 7 || !st.Bins[0].Contains(7) {
		t.Fatalf("bin = %s", st.Bins[0].Label())
	}
}

func TestStratifyExcludesNonNumeric(t *testing.T) {
	st, err := Stratify(rowsWithValues("1", "x", "10", "", "NaN", "5"), 1, 3)
	if err != nil {
		t.Fatalf("Stratify: %v", err)
	}
	if st.Population() != 3 {
		t.Fatalf("population=%d, want 3", st.Population())
	}
	if len(st.Excluded) != 3 {
		t.Fatalf("excluded=%d, want 3", len(st.Excluded))
	}
	for _, b := range st.Bins {
		for _, r := range b.Rows {
			if _, ok := map[string]bool{"x": true, "": true, "NaN": true}[r[1]]; ok {
				t.Fatalf("non-numeric row %v was binned", r)
			}
		}
	}
	if got := st.Sizes(); got[0] != 1 || got[1] != 1 || got[2] != 1 {
		t.Fatalf("sizes=%v", got)
	}
}

func TestStratifyErrors(t *testing.T) {
	if _, err := Stratify(rowsWithValues("a", "b"), 1, 5); !errors.Is(err, ErrEmptyPopulation) {
		t.Fatalf("expected ErrEmptyPopulation, got %v", err)
	}
	var ip *InvalidParameterError
	if _, err := Stratify(rowsWithValues("1", "2"), 1, 0); !errors.As(err, &ip) {
		t.Fatalf("expected InvalidParameterError, got %v", err)
	}
	// max-min overflows float64
	if _, err := Stratify(rowsWithValues("-1.7e308", "0", "1.7e308"), 1, 5); !errors.As(err, &ip) {
		t.Fatalf("expected InvalidParameterError for an infinite span, got %v", err)
	}
	// the widest finite span still bins every row
	st, err := Stratify(rowsWithValues("-8e307", "0", "8e307"), 1, 2)
	if err != nil {
		t.Fatalf("wide finite span: %v", err)
	}
	if got := st.Sizes(); got[0] != 1 || got[1] != 2 {
		t.Fatalf("wide finite span sizes = %v, want [1 2]", got)
	}
}
