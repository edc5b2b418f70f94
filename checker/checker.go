package checker

import "sort"

// Check verifies that ca satisfies the covering guarantee for parameters
// at the given strength: every combination of `strength` parameter names,
// and every tuple of values drawn from their (deduplicated) domains, must
// appear together in at least one row of ca.
//
// Check returns the first uncovered combination it finds as a
// *MissingCombination — it does not enumerate every gap — or
// ErrEmptyCoveringArray if ca has no rows.
func Check(parameters map[string][]any, ca []map[string]any, strength int) error {
	if len(ca) == 0 {
		return ErrEmptyCoveringArray
	}

	names := make([]string, 0, len(parameters))
	for name := range parameters {
		names = append(names, name)
	}
	sort.Strings(names)

	domains := make(map[string][]any, len(names))
	for _, name := range names {
		domains[name] = dedupe(parameters[name])
	}

	t := strength
	if t < 1 {
		t = 1
	}
	if t > len(names) {
		t = len(names)
	}

	var failure error
	forEachCombination(len(names), t, func(indices []int) bool {
		combination := make([]string, t)
		for i, idx := range indices {
			combination[i] = names[idx]
		}

		domainValues := make([][]any, t)
		for i, name := range combination {
			domainValues[i] = domains[name]
		}

		ok := forEachTuple(domainValues, func(values []any) bool {
			return isCovered(ca, combination, values)
		}, func(values []any) {
			failure = &MissingCombination{Combination: append([]string(nil), combination...), Values: values}
		})
		return ok
	})

	return failure
}

// isCovered reports whether some row in ca matches values at every name in
// combination.
func isCovered(ca []map[string]any, combination []string, values []any) bool {
	for _, row := range ca {
		match := true
		for i, name := range combination {
			if row[name] != values[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// forEachCombination calls visit with every ascending t-combination of
// indices in {0,...,n-1}, in lexicographic order, stopping early if visit
// returns false.
func forEachCombination(n, t int, visit func(indices []int) bool) {
	if t > n {
		return
	}
	indices := make([]int, t)
	var rec func(start, depth int) bool
	rec = func(start, depth int) bool {
		if depth == t {
			return visit(indices)
		}
		for v := start; v <= n-(t-depth); v++ {
			indices[depth] = v
			if !rec(v+1, depth+1) {
				return false
			}
		}
		return true
	}
	rec(0, 0)
}

// forEachTuple calls check with every tuple in the Cartesian product of
// domainValues, in nested-loop order (last dimension varies fastest). The
// first tuple for which check returns false is reported via onMiss and
// iteration stops; forEachTuple returns false in that case.
func forEachTuple(domainValues [][]any, check func(values []any) bool, onMiss func(values []any)) bool {
	tuple := make([]any, len(domainValues))
	var rec func(depth int) bool
	rec = func(depth int) bool {
		if depth == len(domainValues) {
			if !check(tuple) {
				onMiss(append([]any(nil), tuple...))
				return false
			}
			return true
		}
		for _, v := range domainValues[depth] {
			tuple[depth] = v
			if !rec(depth + 1) {
				return false
			}
		}
		return true
	}
	return rec(0)
}

// dedupe returns values with duplicates removed, preserving first
// occurrence — the same normalisation core.Prepare applies, re-derived here
// so Check does not depend on the generator's internal encoding.
func dedupe(values []any) []any {
	out := make([]any, 0, len(values))
	seen := make(map[any]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
