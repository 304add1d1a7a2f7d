package sampling

import (
	"math"
	"math/rand/v2"
	"reflect"
	"strconv"
	"testing"
)

func TestAllocateProportional(t *testing.T) {
	got := Allocate([]int{10, 20, 30, 40}, 10, Compat)
	if !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
		t.Fatalf("got %v, want [1 2 3 4]", got)
	}
}

func TestAllocateCompatIsNotReconciled(t *testing.T) {
	got := Allocate([]int{1, 1, 1}, 2, Compat)
	if !reflect.DeepEqual(got, []int{1, 1, 1}) {
		t.Fatalf("got %v, want independent rounding [1 1 1]", got)
	}
	got = Allocate([]int{10, 10}, 5, Compat)
	if !reflect.DeepEqual(got, []int{3, 3}) {
		t.Fatalf("half should round up, got %v", got)
	}
}

func TestAllocateExact(t *testing.T) {
	cases := []struct {
		name   string
		sizes  []int
		target int
		want   []int
	}{
		{"already exact", []int{10, 20, 30, 40}, 10, []int{1, 2, 3, 4}},
		{"over-rounded", []int{1, 1, 1}, 2, []int{1, 1, 0}},
		{"tie to first", []int{5, 5}, 5, []int{3, 2}},
		{"tie to larger", []int{3, 9}, 2, []int{0, 2}},
		{"capped at population", []int{2, 3}, 50, []int{2, 3}},
		{"empty bin", []int{0, 7, 0}, 4, []int{0, 4, 0}},
	}
	for _, c := range cases {
		got := Allocate(c.sizes, c.target, Exact)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestAllocateExactTotals(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 200; trial++ {
		sizes := make([]int, 1+rng.IntN(8))
		total := 0
		for i := range sizes {
			sizes[i] = rng.IntN(50)
			total += sizes[i]
		}
		target := rng.IntN(total + 10)
		got := Allocate(sizes, target, Exact)
		sum := 0
		for i, a := range got {
			if a > sizes[i] {
				t.Fatalf("sizes=%v target=%d: bin %d over-allocated %d", sizes, target, i, a)
			}
			sum += a
		}
		if want := min(target, total); sum != want {
			t.Fatalf("sizes=%v target=%d: total %d, want %d", sizes, target, sum, want)
		}
	}
}

func makeRows(n int) [][]string {
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = []string{strconv.Itoa(i)}
	}
	return rows
}

func TestDrawWithoutReplacement(t *testing.T) {
	rows := makeRows(50)
	rng := rand.New(rand.NewPCG(1, 2))
	for k := 0; k <= 50; k++ {
		got := Draw(rows, k, rng)
		if len(got) != k {
			t.Fatalf("k=%d: drew %d", k, len(got))
		}
		seen := map[string]bool{}
		for _, r := range got {
			if seen[r[0]] {
				t.Fatalf("k=%d: duplicate row %s", k, r[0])
			}
			seen[r[0]] = true
		}
	}
}

func TestDrawWholeBinKeepsOrder(t *testing.T) {
	rows := makeRows(4)
	got := Draw(rows, 9, rand.New(rand.NewPCG(3, 4)))
	if !reflect.DeepEqual(got, rows) {
		t.Fatalf("got %v", got)
	}
}

func TestDrawDeterministicWithSeed(t *testing.T) {
	rows := makeRows(100)
	a := Draw(rows, 10, rand.New(rand.NewPCG(42, 42)))
	b := Draw(rows, 10, rand.New(rand.NewPCG(42, 42)))
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed gave different draws")
	}
}

func TestDrawIsRoughlyUniform(t *testing.T) {
	rows := makeRows(5)
	rng := rand.New(rand.NewPCG(9, 9))
	counts := make([]int, 5)
	const trials = 20000
	for i := 0; i < trials; i++ {
		for _, r := range Draw(rows, 2, rng) {
			j, _ := strconv.Atoi(r[0])
			counts[j]++
		}
	}
	want := float64(trials) * 2 / 5
	for i, c := range counts {
		if math.Abs(float64(c)-want)/want > 0.05 {
			t.Errorf("row %d chosen %d times, want about %.0f", i, c, want)
		}
	}
}

func TestSampleTotalsMatchAllocations(t *testing.T) {
	bins := []Bin{{Rows: makeRows(10)}, {Rows: makeRows(20)}, {Rows: makeRows(30)}, {Rows: makeRows(40)}}
	out, alloc := Sample(bins, 10, Compat, rand.New(rand.NewPCG(5, 5)))
	if !reflect.DeepEqual(alloc, []int{1, 2, 3, 4}) {
		t.Fatalf("alloc=%v", alloc)
	}
	if len(out) != 10 {
		t.Fatalf("sampled %d, want 10", len(out))
	}
}
