package coverage

import (
	"github.com/katalvlaran/covarray/bitset"
	"github.com/katalvlaran/covarray/core"
	"github.com/katalvlaran/covarray/pi"
)

// Evaluate computes the coverage gain a candidate row would contribute
// against every combination in p, and the bitmap sequence that would result
// from committing it. row must have a concrete value (no don't-care) at
// every position referenced by any combination in p.
func Evaluate(row []int, p *pi.Pi, ps *core.ParameterSet) (gain int, updated []*bitset.Set) {
	updated = make([]*bitset.Set, len(p.Bitmaps))

	for idx, combo := range p.Combinations {
		bm := p.Bitmaps[idx]
		before := bm.PopCount()

		values := valuesAt(row, combo)
		sizes := ps.DomainSizes(combo)
		bitIndex := core.BitIndex(sizes, values)

		next := bm.Clone()
		next.Clear(bitIndex)

		gain += before - next.PopCount()
		updated[idx] = next
	}

	return gain, updated
}

// valuesAt extracts the row's values at the positions named by combination.
func valuesAt(row, combination []int) []int {
	values := make([]int, len(combination))
	for i, p := range combination {
		values[i] = row[p]
	}
	return values
}
