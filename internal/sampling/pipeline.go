package sampling

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yogiiiiiiiiii/TN-project-final/internal/stats"
	"github.com/yogiiiiiiiiii/TN-project-final/internal/tabular"
)

// DefaultColumn is the stratify column looked up when none is configured.
const DefaultColumn = "correct"

// Params configures one sampling run. Confidence and Margin are proportions.
type Params struct {
	Confidence float64
	Margin     float64
	NumBins    int
	Column     string
	Mode       AllocationMode
	// DecimalSeparator for the stratify column. 0 means '.'.
	DecimalSeparator rune
	// Rand drives the draws; nil means a time-seeded PCG.
	Rand Source
}

// DefaultParams is 95% confidence, 5% margin and five bins.
func DefaultParams() Params {
	return Params{
		Confidence: 0.95,
		Margin:     0.05,
		NumBins:    DefaultNumBins,
		Column:     DefaultColumn,
		Mode:       Compat,
	}
}

// NewSource returns a PCG source. A zero seed is replaced by the clock.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Stratum summarizes one bin of a run.
type Stratum struct {
	Bin
	Allocation int
	Drawn      int
}

// Result is the immutable outcome of a sampling run.
type Result struct {
	RunID        string
	Name         string
	Headers      []string
	Column       string
	Confidence   float64
	Margin       float64
	Mode         AllocationMode
	Rows         int // rows read, before any drop
	Malformed    int
	NonNumeric   int
	Population   int
	RequiredSize int
	Strata       []Stratum
	Sampled      [][]string
	Warnings     []string
}

// Validate checks parameters before any data is touched.
func (p Params) Validate() error {
	if err := stats.ValidateConfidence(p.Confidence); err != nil {
		return err
	}
	if err := stats.ValidateMargin(p.Margin); err != nil {
		return err
	}
	if p.NumBins < 1 {
		return &InvalidParameterError{Name: "number of bins", Value: float64(p.NumBins), Want: "at least 1"}
	}
	if _, err := ParseAllocationMode(string(p.Mode)); err != nil {
		return err
	}
	return nil
}

// RunText parses delimited text and runs the pipeline on it.
func RunText(raw string, p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	ds, err := tabular.ParseString(raw, tabular.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	return Run(ds, p)
}

// Run stratifies ds on the configured column, computes the required sample
// size over the numeric rows and draws a proportional sample. ds is not
// modified. Any error aborts the run with no partial result.
func Run(ds *tabular.Dataset, p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	// Validate accepted the mode, so only the canonical spelling is left to take.
	mode, _ := ParseAllocationMode(string(p.Mode))
	column := p.Column
	if strings.TrimSpace(column) == "" {
		column = DefaultColumn
	}
	col := ds.ColumnIndex(column)
	if col < 0 {
		return nil, &MissingColumnError{Column: column, Available: ds.Headers}
	}

	work := &tabular.Dataset{Name: ds.Name, Headers: ds.Headers, Rows: append([][]string(nil), ds.Rows...)}
	res := &Result{
		RunID:      uuid.NewString(),
		Name:       ds.Name,
		Headers:    ds.Headers,
		Column:     ds.Headers[col],
		Confidence: p.Confidence,
		Margin:     p.Margin,
		Mode:       mode,
		Rows:       len(ds.Rows),
	}
	res.Malformed = work.Conform()

	st, err := StratifyWith(work.Rows, col, p.NumBins, p.DecimalSeparator)
	if err != nil {
		return nil, err
	}
	res.NonNumeric = len(st.Excluded)
	res.Population = st.Population()

	size, err := stats.RequiredSampleSize(res.Population, p.Confidence, p.Margin)
	if err != nil {
		return nil, err
	}
	res.RequiredSize = size

	rng := p.Rand
	if rng == nil {
		rng = NewSource(0)
	}
	sampled, alloc := Sample(st.Bins, size, res.Mode, rng)
	res.Sampled = sampled
	res.Strata = make([]Stratum, len(st.Bins))
	for i, b := range st.Bins {
		res.Strata[i] = Stratum{Bin: b, Allocation: alloc[i], Drawn: min(alloc[i], b.Size())}
	}

	if res.Malformed > 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("dropped %d row(s) with a field count other than %d", res.Malformed, len(ds.Headers)))
	}
	if res.NonNumeric > 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("excluded %d row(s) with a non-numeric %q value%s",
			res.NonNumeric, res.Column, exclusionExamples(st.Excluded, 3)))
	}
	if st.Degenerate {
		res.Warnings = append(res.Warnings, fmt.Sprintf("all %q values equal %g; using a single stratum", res.Column, st.Min))
	}
	if got := len(res.Sampled); got != res.RequiredSize {
		res.Warnings = append(res.Warnings, fmt.Sprintf("sampled %d row(s) against a required size of %d (per-stratum rounding)", got, res.RequiredSize))
	}
	return res, nil
}

func exclusionExamples(ex []Exclusion, limit int) string {
	var vals []string
	for _, e := range ex {
		if len(vals) == limit {
			break
		}
		vals = append(vals, fmt.Sprintf("%q", e.Value))
	}
	if len(vals) == 0 {
		return ""
	}
	return " (e.g. " + strings.Join(vals, ", ") + ")"
}

// Export projects the sampled rows for writing.
func (r *Result) Export(p tabular.Projection) ([]string, [][]string, error) {
	if err := p.Validate(len(r.Headers)); err != nil {
		return nil, nil, fmt.Errorf("export: %w", err)
	}
	h, rows := p.Apply(r.Headers, r.Sampled)
	return h, rows, nil
}
