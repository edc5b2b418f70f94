package vertical

import (
	"github.com/katalvlaran/covarray/core"
	"github.com/katalvlaran/covarray/pi"
)

// Extend performs vertical extension for parameter i. rows holds every
// currently active row (length i+1, having just been horizontally
// extended); p is the π left by horizontal extension for the same i.
//
// Extend returns the (possibly grown) row set, with every don't-care cell
// resolved to a concrete value before returning.
func Extend(i int, rows [][]int, p *pi.Pi, ps *core.ParameterSet) [][]int {
	for idx, combination := range p.Combinations {
		sizes := ps.DomainSizes(combination)

		for _, bit := range p.Bitmaps[idx].Bits() {
			values := core.ValuesFromBitIndex(sizes, bit)
			rows = cover(rows, i, combination, values)
		}
	}

	resolveDontCares(rows)
	return rows
}

// cover ensures some row carries values at combination's positions, either
// by finding an exact match, absorbing it into a row that is don't-care at
// every one of those positions (in the abstract sense — some positions may
// already match), or by appending a fresh all-don't-care row.
func cover(rows [][]int, i int, combination, values []int) [][]int {
	for _, row := range rows {
		if matches(row, combination, values) {
			return rows
		}
	}
	for _, row := range rows {
		if canAbsorb(row, combination, values) {
			apply(row, combination, values)
			return rows
		}
	}

	newRow := make([]int, i+1)
	for k := range newRow {
		newRow[k] = core.DontCare
	}
	apply(newRow, combination, values)
	return append(rows, newRow)
}

// matches reports whether row already carries values at exactly every
// position in combination.
func matches(row, combination, values []int) bool {
	for k, p := range combination {
		if row[p] != values[k] {
			return false
		}
	}
	return true
}

// canAbsorb reports whether row carries, at every position of combination,
// either the target value or the don't-care sentinel.
func canAbsorb(row, combination, values []int) bool {
	for k, p := range combination {
		if row[p] != values[k] && row[p] != core.DontCare {
			return false
		}
	}
	return true
}

// apply writes values into row at combination's positions.
func apply(row, combination, values []int) {
	for k, p := range combination {
		row[p] = values[k]
	}
}

// resolveDontCares replaces every remaining don't-care cell with index 0 of
// its parameter's domain. Index 0 always exists: core.Prepare rejects empty
// domains.
func resolveDontCares(rows [][]int) {
	for _, row := range rows {
		for k, v := range row {
			if v == core.DontCare {
				row[k] = 0
			}
		}
	}
}
