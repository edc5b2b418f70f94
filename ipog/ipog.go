package ipog

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/covarray/core"
	"github.com/katalvlaran/covarray/horizontal"
	"github.com/katalvlaran/covarray/pi"
	"github.com/katalvlaran/covarray/vertical"
)

// DefaultStrength is the strength callers should pass when they have no
// specific requirement: pairwise coverage. Generate has no implicit default
// of its own: a strength of 0 clamps to 1 like any other non-positive
// value, it is not silently replaced by DefaultStrength.
const DefaultStrength = 2

// CoveringArray is the decoded output of Generate: an ordered sequence of
// rows, each mapping parameter name to one of that parameter's original
// (deduplicated) values, plus the declared parameter order used to build it.
// Dump and checker.Check both rely on Names to iterate in the same
// deterministic order Generate used.
type CoveringArray struct {
	Names []string
	Rows  []map[string]any
}

// Generate produces a t-way covering array for parameters at the given
// strength. Parameter order is not part of the caller's input (Go maps
// have no order); Generate fixes it by sorting parameter names, so two
// calls with the same map and strength produce byte-identical output.
//
// Generate returns core.ErrEmptyParameters if parameters has no entries or
// any named domain is empty after deduplication.
func Generate(parameters map[string][]any, strength int, opts ...Option) (CoveringArray, error) {
	options := resolveOptions(opts)

	if len(parameters) == 0 {
		return CoveringArray{}, core.ErrEmptyParameters
	}

	names := make([]string, 0, len(parameters))
	for name := range parameters {
		names = append(names, name)
	}
	sort.Strings(names)

	ps, err := core.Prepare(names, parameters)
	if err != nil {
		return CoveringArray{}, fmt.Errorf("ipog: %w", err)
	}

	n := ps.N()
	if err := core.ValidateStrength(n, strength); err != nil {
		return CoveringArray{}, fmt.Errorf("ipog: %w", err)
	}
	t := clampStrength(strength, n)

	rows := seed(ps, t, options)

	for i := t; i < n; i++ {
		options.trace("extending parameter %d/%d (%s)", i+1, n, ps.Names[i])

		p := pi.Construct(i, t, ps)
		p = horizontal.Extend(i, rows, p, ps)
		rows = vertical.Extend(i, rows, p, ps)
	}

	return decode(ps, rows), nil
}

// clampStrength clamps strength into [1, n]: a strength below 1 or above
// the parameter count has only one sensible interpretation at each bound.
func clampStrength(strength, n int) int {
	if strength < 1 {
		strength = 1
	}
	if strength > n {
		strength = n
	}
	return strength
}

// seed builds the initial row set: the exhaustive product of the first t
// parameter domains, enumerated with the last of the t parameters varying
// fastest (matching the reference implementation's itertools.product
// order).
func seed(ps *core.ParameterSet, t int, options Options) [][]int {
	count := 1
	for i := 0; i < t; i++ {
		count *= ps.DomainSize(i)
	}

	capacity := count
	if options.RowCapacityHint > capacity {
		capacity = options.RowCapacityHint
	}
	rows := make([][]int, 0, capacity)
	row := make([]int, t)

	var rec func(pos int)
	rec = func(pos int) {
		if pos == t {
			cp := make([]int, t)
			copy(cp, row)
			rows = append(rows, cp)
			return
		}
		for v := 0; v < ps.DomainSize(pos); v++ {
			row[pos] = v
			rec(pos + 1)
		}
	}
	rec(0)

	return rows
}

// decode maps index-form rows back to name/value rows using ps's decode map.
func decode(ps *core.ParameterSet, rows [][]int) CoveringArray {
	out := make([]map[string]any, len(rows))
	for r, row := range rows {
		decoded := make(map[string]any, ps.N())
		for i, v := range row {
			decoded[ps.Names[i]] = ps.Decode(i, v)
		}
		out[r] = decoded
	}
	return CoveringArray{Names: ps.Names, Rows: out}
}
