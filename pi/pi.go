package pi

import (
	"github.com/katalvlaran/covarray/bitset"
	"github.com/katalvlaran/covarray/core"
)

// Pi holds the uncovered-combinations structure for one active parameter:
// a sequence of combinations, and a parallel sequence of bitmaps where
// Bitmaps[core.Rank(i, t-1, Combinations[r][:t-1])] is the bitmap for
// Combinations[r]. A set bit means the corresponding value tuple is not yet
// covered.
type Pi struct {
	Combinations [][]int
	Bitmaps      []*bitset.Set
}

// Construct builds π for parameter i (the newest active parameter), given
// strength t and the parameter set ps. Every combination ends in i; its
// other t-1 indices are drawn from {0, ..., i-1}.
//
// Construct panics if i is not yet present in ps (i.e. i >= ps.N()) and
// there is at least one combination to build. If t-1 > i, no (t-1)-subset
// of {0,...,i-1} exists and Construct returns a π with no combinations.
// ipog's driver never calls Construct with such an (i, t) pair.
func Construct(i, t int, ps *core.ParameterSet) *Pi {
	free := t - 1
	subsets := subsetsOf(i, free)

	result := &Pi{
		Combinations: make([][]int, len(subsets)),
		Bitmaps:      make([]*bitset.Set, len(subsets)),
	}

	for _, c := range subsets {
		rank := core.Rank(i, free, c)

		full := make([]int, free+1)
		copy(full, c)
		full[free] = i

		sizes := ps.DomainSizes(full)
		width := core.Width(sizes)

		result.Combinations[rank] = full
		result.Bitmaps[rank] = bitset.Full(width)
	}

	return result
}

// subsetsOf returns every ascending k-combination of {0, ..., n-1}.
func subsetsOf(n, k int) [][]int {
	if k == 0 {
		return [][]int{{}}
	}
	if k > n {
		return nil
	}

	var out [][]int
	combo := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			cp := make([]int, k)
			copy(cp, combo)
			out = append(out, cp)
			return
		}
		for v := start; v <= n-(k-depth); v++ {
			combo[depth] = v
			rec(v+1, depth+1)
		}
	}
	rec(0, 0)
	return out
}
