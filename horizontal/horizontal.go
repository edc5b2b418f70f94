package horizontal

import (
	"github.com/katalvlaran/covarray/bitset"
	"github.com/katalvlaran/covarray/core"
	"github.com/katalvlaran/covarray/coverage"
	"github.com/katalvlaran/covarray/pi"
)

// Extend performs horizontal extension for parameter i.
//
// rows holds every currently active test row, each of length i with no
// don't-cares; Extend mutates each row in place to length i+1 by appending
// the value of parameter i that maximises coverage gain against p, scanning
// values in ascending order and keeping the last candidate on a tie.
// Extend returns the π that results from committing every row's winning
// bitmap diff in row order.
func Extend(i int, rows [][]int, p *pi.Pi, ps *core.ParameterSet) *pi.Pi {
	domainSize := ps.DomainSize(i)

	for r, row := range rows {
		var (
			bestValue   int
			bestGain    int
			bestBitmaps []*bitset.Set
			haveBest    bool
		)

		candidate := make([]int, len(row)+1)
		copy(candidate, row)

		for v := 0; v < domainSize; v++ {
			candidate[i] = v
			gain, updated := coverage.Evaluate(candidate, p, ps)
			if !haveBest || gain >= bestGain {
				bestValue = v
				bestGain = gain
				bestBitmaps = updated
				haveBest = true
			}
		}

		rows[r] = append(row, bestValue)
		p = &pi.Pi{Combinations: p.Combinations, Bitmaps: bestBitmaps}
	}

	return p
}
