// Package coverage implements the coverage evaluator: given a candidate row
// and the current π, it computes how many uncovered value tuples the row
// would cover, and the π that would result from committing it.
//
// Evaluate never mutates its π argument; it returns a fresh bitmap sequence
// so the caller (horizontal extension) can compare several candidates
// before committing the winner's bitmaps as the new π.
//
// Gain is always the exact number of bits newly cleared for each
// combination, summed independently per combination: a plain sum of
// per-combination popcount deltas, with no shared mutable state between
// combinations to leak a stale count from one into another.
package coverage
