package topics

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yogiiiiiiiiii/TN-project-final/internal/tabular"
)

// DefaultFileName is the export artifact name.
const DefaultFileName = "topics.csv"

// Rows flattens a finished session into one record per (topic, level):
// name, level, count, question numbers...
func Rows(s Session) [][]string {
	var out [][]string
	for _, t := range s.Topics {
		for _, l := range Levels {
			qs := t.Questions[l]
			if len(qs) == 0 {
				continue
			}
			rec := []string{t.Name, string(l), strconv.Itoa(t.Counts[l])}
			for _, q := range qs {
				rec = append(rec, strconv.Itoa(q))
			}
			out = append(out, rec)
		}
	}
	return out
}

// WriteCSV writes the export without a header row.
func WriteCSV(w io.Writer, s Session) error {
	if s.Step != StepDone {
		return fmt.Errorf("%w: at %s, want %s", ErrWrongStep, s.Step, StepDone)
	}
	return tabular.WriteCSV(w, nil, Rows(s))
}

// Preview renders the export as a Markdown table.
func Preview(s Session) string {
	var b strings.Builder
	b.WriteString("| Topic | Level | Count | Questions |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, rec := range Rows(s) {
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", rec[0], rec[1], rec[2], strings.Join(rec[3:], ", ")))
	}
	return b.String()
}
