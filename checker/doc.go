// Package checker implements an independent verifier for covering arrays:
// given the original parameter mapping, a generated array, and a strength,
// it confirms every size-t combination of parameter names and every value
// tuple drawn from their domains is covered by at least one row.
//
// Check does not share any state or code path with ipog.Generate beyond
// the parameter-name ordering convention (sorted names, for the same
// reason Generate needs one: Go maps have no iteration order of their
// own) — it re-derives everything else from scratch, so a bug in the
// generator's π bookkeeping cannot also be present in Check.
package checker
