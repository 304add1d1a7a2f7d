package sampling

// Source is the random source used for draws. *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Draw picks k distinct rows uniformly at random using a partial
// Fisher-Yates shuffle over row indices. If k >= len(rows) every row is
// returned in its original order.
func Draw(rows [][]string, k int, rng Source) [][]string {
	n := len(rows)
	if k <= 0 || n == 0 {
		return nil
	}
	if k >= n {
		out := make([][]string, n)
		copy(out, rows)
		return out
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	out := make([][]string, k)
	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = rows[idx[i]]
	}
	return out
}

// Sample allocates target across bins and draws each bin's share. It
// returns the drawn rows in bin order and the per-bin allocations.
func Sample(bins []Bin, target int, mode AllocationMode, rng Source) ([][]string, []int) {
	sizes := make([]int, len(bins))
	for i, b := range bins {
		sizes[i] = b.Size()
	}
	alloc := Allocate(sizes, target, mode)
	var out [][]string
	for i, b := range bins {
		out = append(out, Draw(b.Rows, alloc[i], rng)...)
	}
	return out, alloc
}
