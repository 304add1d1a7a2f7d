package sampling

import (
	"fmt"
	"strconv"
	"strings"
)

// Markdown renders a compact run summary: parameters, strata table, a few
// sampled rows and any notes.
func (r *Result) Markdown(sampleRows int) string {
	var b strings.Builder
	b.WriteString("[SAMPLING SUMMARY]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Name))
	}
	b.WriteString(fmt.Sprintf("Run: %s\n", r.RunID))
	b.WriteString(fmt.Sprintf("Stratify column: %s\n", r.Column))
	b.WriteString(fmt.Sprintf("Confidence: %.4g%%, margin of error: %.4g%%\n", r.Confidence*100, r.Margin*100))
	if r.Population < r.Rows {
		b.WriteString(fmt.Sprintf("Population: %d (of %d rows read)\n", r.Population, r.Rows))
	} else {
		b.WriteString(fmt.Sprintf("Population: %d\n", r.Population))
	}
	b.WriteString(fmt.Sprintf("Required sample size: %d\n", r.RequiredSize))
	b.WriteString(fmt.Sprintf("Sampled: %d (allocation: %s)\n\n", len(r.Sampled), r.Mode))

	b.WriteString("[STRATA]\n")
	b.WriteString("| # | range | size | allocation | drawn |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for i, s := range r.Strata {
		b.WriteString(fmt.Sprintf("| %d | %s | %d | %d | %d |\n", i+1, s.Label(), s.Size(), s.Allocation, s.Drawn))
	}

	if sampleRows > 0 && len(r.Sampled) > 0 {
		b.WriteString("\n[SAMPLE ROWS]\n")
		b.WriteString("| " + strings.Join(r.Headers, " | ") + " |\n")
		b.WriteString("|" + strings.Repeat(" --- |", len(r.Headers)) + "\n")
		for i, row := range r.Sampled {
			if i == sampleRows {
				break
			}
			vals := make([]string, len(row))
			for j, v := range row {
				vals[j] = safeVal(v)
			}
			b.WriteString("| " + strings.Join(vals, " | ") + " |\n")
		}
		if len(r.Sampled) > sampleRows {
			b.WriteString(fmt.Sprintf("(%d more)\n", len(r.Sampled)-sampleRows))
		}
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range r.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// StrataTable returns the strata as a header and string rows, for CSV or
// XLSX export.
func (r *Result) StrataTable() ([]string, [][]string) {
	headers := []string{"stratum", "low", "high", "closed", "size", "allocation", "drawn"}
	rows := make([][]string, len(r.Strata))
	for i, s := range r.Strata {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(s.Low, 'g', -1, 64),
			strconv.FormatFloat(s.High, 'g', -1, 64),
			strconv.FormatBool(s.Closed),
			strconv.Itoa(s.Size()),
			strconv.Itoa(s.Allocation),
			strconv.Itoa(s.Drawn),
		}
	}
	return headers, rows
}

// Summary is the JSON form of a run, without the sampled rows themselves.
type Summary struct {
	RunID        string           `json:"run_id"`
	File         string           `json:"file,omitempty"`
	Column       string           `json:"column"`
	Confidence   float64          `json:"confidence"`
	Margin       float64          `json:"margin"`
	Mode         AllocationMode   `json:"allocation_mode"`
	Rows         int              `json:"rows"`
	Malformed    int              `json:"malformed_rows"`
	NonNumeric   int              `json:"non_numeric_rows"`
	Population   int              `json:"population"`
	RequiredSize int              `json:"required_size"`
	Sampled      int              `json:"sampled"`
	Strata       []StratumSummary `json:"strata"`
	Warnings     []string         `json:"warnings,omitempty"`
}

// StratumSummary is one row of Summary.Strata.
type StratumSummary struct {
	Low        float64 `json:"low"`
	High       float64 `json:"high"`
	Closed     bool    `json:"closed"`
	Size       int     `json:"size"`
	Allocation int     `json:"allocation"`
	Drawn      int     `json:"drawn"`
}

// Summary builds the JSON-friendly view of r.
func (r *Result) Summary() Summary {
	s := Summary{
		RunID:        r.RunID,
		File:         r.Name,
		Column:       r.Column,
		Confidence:   r.Confidence,
		Margin:       r.Margin,
		Mode:         r.Mode,
		Rows:         r.Rows,
		Malformed:    r.Malformed,
		NonNumeric:   r.NonNumeric,
		Population:   r.Population,
		RequiredSize: r.RequiredSize,
		Sampled:      len(r.Sampled),
		Warnings:     r.Warnings,
	}
	for _, st := range r.Strata {
		s.Strata = append(s.Strata, StratumSummary{
			Low: st.Low, High: st.High, Closed: st.Closed,
			Size: st.Size(), Allocation: st.Allocation, Drawn: st.Drawn,
		})
	}
	return s
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
