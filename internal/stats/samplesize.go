package stats

import (
	"fmt"
	"math"
)

// WorstCaseProportion maximizes p(1-p) and so yields the most conservative size.
const WorstCaseProportion = 0.5

// InvalidParameterError reports a sampling parameter outside its domain.
type InvalidParameterError struct {
	Name  string
	Value float64
	Want  string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s: %g (want %s)", e.Name, e.Value, e.Want)
}

// ValidateConfidence checks that a confidence level lies in (0, 1).
func ValidateConfidence(confidence float64) error {
	if math.IsNaN(confidence) || confidence <= 0 || confidence >= 1 {
		return &InvalidParameterError{Name: "confidence level", Value: confidence, Want: "a proportion in (0, 1)"}
	}
	return nil
}

// ValidateMargin checks that a margin of error lies in (0, 1].
func ValidateMargin(margin float64) error {
	if math.IsNaN(margin) || margin <= 0 || margin > 1 {
		return &InvalidParameterError{Name: "margin of error", Value: margin, Want: "a proportion in (0, 1]"}
	}
	return nil
}

// InfiniteSampleSize is Cochran's sample size before the finite population
// correction: z² p(1-p) / e².
func InfiniteSampleSize(confidence, margin float64) float64 {
	z := ZScore(confidence)
	p := WorstCaseProportion
	return z * z * p * (1 - p) / (margin * margin)
}

// RequiredSampleSize returns the finite-population-corrected sample size,
// rounded up and clamped to [1, population].
func RequiredSampleSize(population int, confidence, margin float64) (int, error) {
	if population <= 0 {
		return 0, &InvalidParameterError{Name: "population size", Value: float64(population), Want: "a positive integer"}
	}
	if err := ValidateConfidence(confidence); err != nil {
		return 0, err
	}
	if err := ValidateMargin(margin); err != nil {
		return 0, err
	}
	base := InfiniteSampleSize(confidence, margin)
	size := base / (1 + (base-1)/float64(population))
	n := int(math.Ceil(size))
	if n < 1 {
		n = 1
	}
	if n > population {
		n = population
	}
	return n, nil
}
