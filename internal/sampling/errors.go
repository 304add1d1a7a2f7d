package sampling

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yogiiiiiiiiii/TN-project-final/internal/stats"
)

// InvalidParameterError is shared with the stats package so callers can match
// either source with a single errors.As.
type InvalidParameterError = stats.InvalidParameterError

// ErrEmptyPopulation means no row had a numeric stratify value.
var ErrEmptyPopulation = errors.New("no rows with a numeric stratify value")

// MissingColumnError indicates the stratify column is absent from the header.
type MissingColumnError struct {
	Column    string
	Available []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found (available: %s)", e.Column, strings.Join(e.Available, ", "))
}

// Exclusion records a row left out of the stratified population.
type Exclusion struct {
	Row   int // 0-based index into the conformed rows
	Value string
}
