package stats

import "math"

// Coefficients of Acklam's rational approximation to the normal quantile.
const (
	a1 = -39.6968302866538
	a2 = 220.946098424521
	a3 = -275.928510446969
	a4 = 138.357751867269
	a5 = -30.6647980661472
	a6 = 2.50662827745924

	b1 = -54.4760987982241
	b2 = 161.585836858041
	b3 = -155.698979859887
	b4 = 66.8013118877197
	b5 = -13.2806815528857

	c1 = -7.78489400243029e-03
	c2 = -0.322396458041136
	c3 = -2.40075827716184
	c4 = -2.54973253934373
	c5 = 4.37466414146497
	c6 = 2.93816398269878

	d1 = 7.78469570904146e-03
	d2 = 0.32246712907004
	d3 = 2.445134137143
	d4 = 3.75440866190742

	pLow  = 0.02425
	pHigh = 1 - pLow
)

// NormInv approximates the inverse of the standard normal CDF, i.e. the z
// such that P(Z <= z) = p. Relative error is about 1.15e-9; no refinement
// step is applied.
//
// p must lie strictly inside (0, 1). NormInv returns -Inf for p <= 0, +Inf
// for p >= 1 and NaN for NaN.
func NormInv(p float64) float64 {
	switch {
	case math.IsNaN(p):
		return math.NaN()
	case p <= 0:
		return math.Inf(-1)
	case p >= 1:
		return math.Inf(1)
	}
	if p < pLow {
		q := math.Sqrt(-2 * math.Log(p))
		return tail(q)
	}
	if p <= pHigh {
		q := p - 0.5
		r := q * q
		return (((((a1*r+a2)*r+a3)*r+a4)*r+a5)*r + a6) * q /
			(((((b1*r+b2)*r+b3)*r+b4)*r+b5)*r + 1)
	}
	q := math.Sqrt(-2 * math.Log(1-p))
	return -tail(q)
}

func tail(q float64) float64 {
	return (((((c1*q+c2)*q+c3)*q+c4)*q+c5)*q + c6) /
		((((d1*q+d2)*q+d3)*q+d4)*q + 1)
}

// ZScore returns the two-tailed critical value for a confidence level in (0, 1).
func ZScore(confidence float64) float64 {
	return NormInv(1 - (1-confidence)/2)
}
