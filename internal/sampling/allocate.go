package sampling

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// AllocationMode selects how the target size is split across bins.
type AllocationMode string

const (
	// Compat rounds each bin's proportional share independently. The total
	// can miss the target by a few rows.
	Compat AllocationMode = "compat"
	// Exact uses largest-remainder apportionment so the total equals the
	// target (capped at the population).
	Exact AllocationMode = "exact"
)

// ParseAllocationMode accepts "compat" or "exact" (case-insensitive); empty
// means Compat.
func ParseAllocationMode(s string) (AllocationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Compat):
		return Compat, nil
	case string(Exact):
		return Exact, nil
	default:
		return "", fmt.Errorf("unsupported allocation mode: %s (use compat|exact)", s)
	}
}

// Allocate splits target across bins in proportion to their sizes.
func Allocate(sizes []int, target int, mode AllocationMode) []int {
	out := make([]int, len(sizes))
	total := 0
	for _, s := range sizes {
		total += s
	}
	if total == 0 || target <= 0 {
		return out
	}
	if mode == Exact {
		return apportion(sizes, total, target)
	}
	for i, s := range sizes {
		// Half rounds up.
		out[i] = int(math.Floor(float64(s)/float64(total)*float64(target) + 0.5))
	}
	return out
}

func apportion(sizes []int, total, target int) []int {
	if target > total {
		target = total
	}
	out := make([]int, len(sizes))
	type rem struct {
		idx  int
		frac float64
	}
	rems := make([]rem, 0, len(sizes))
	assigned := 0
	for i, s := range sizes {
		q := float64(s) * float64(target) / float64(total)
		fl := math.Floor(q)
		out[i] = int(fl)
		assigned += out[i]
		rems = append(rems, rem{idx: i, frac: q - fl})
	}
	sort.SliceStable(rems, func(a, b int) bool {
		if rems[a].frac != rems[b].frac {
			return rems[a].frac > rems[b].frac
		}
		return sizes[rems[a].idx] > sizes[rems[b].idx]
	})
	for _, r := range rems {
		if assigned >= target {
			break
		}
		if out[r.idx] >= sizes[r.idx] {
			continue
		}
		out[r.idx]++
		assigned++
	}
	return out
}
