package stats

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestNormInvMedian(t *testing.T) {
	if got := NormInv(0.5); got != 0 {
		t.Fatalf("NormInv(0.5)=%v, want 0", got)
	}
}

func TestNormInvAntisymmetry(t *testing.T) {
	for _, p := range []float64{1e-9, 0.001, 0.01, 0.02425, 0.03, 0.1, 0.25, 0.4, 0.49, 0.6, 0.9, 0.975, 0.999} {
		lo := NormInv(p)
		hi := NormInv(1 - p)
		if math.Abs(lo+hi) > 1e-9*math.Max(1, math.Abs(lo)) {
			t.Errorf("p=%v: NormInv(p)=%v, NormInv(1-p)=%v", p, lo, hi)
		}
	}
}

func TestNormInvMatchesExactQuantile(t *testing.T) {
	for _, p := range []float64{1e-6, 0.005, 0.0242, 0.02425, 0.05, 0.3, 0.5, 0.7, 0.95, 0.97575, 0.98, 0.9999} {
		want := distuv.UnitNormal.Quantile(p)
		got := NormInv(p)
		if math.Abs(got-want) > 1e-8*math.Max(1, math.Abs(want)) {
			t.Errorf("p=%v: got %.12f, want %.12f", p, got, want)
		}
	}
}

func TestNormInvOutOfDomain(t *testing.T) {
	if !math.IsInf(NormInv(0), -1) {
		t.Errorf("NormInv(0) should be -Inf")
	}
	if !math.IsInf(NormInv(1), 1) {
		t.Errorf("NormInv(1) should be +Inf")
	}
	if !math.IsNaN(NormInv(math.NaN())) {
		t.Errorf("NormInv(NaN) should be NaN")
	}
}

func TestZScoreCommonLevels(t *testing.T) {
	cases := []struct {
		conf float64
		want float64
	}{
		{0.90, 1.644854},
		{0.95, 1.959964},
		{0.99, 2.575829},
	}
	for _, c := range cases {
		if got := ZScore(c.conf); math.Abs(got-c.want) > 1e-6 {
			t.Errorf("ZScore(%v)=%v, want %v", c.conf, got, c.want)
		}
	}
}
