// Package vertical implements vertical extension: after horizontal
// extension, it adds new rows (or mutates rows still carrying don't-cares)
// to cover every value tuple that remains uncovered in π.
//
// Combinations are visited in the rank order π already stores them in; for
// each, still-uncovered value tuples are visited in ascending bit-index
// order, so two runs over the same input produce the same rows. At the end
// of the call every remaining don't-care cell is resolved to index 0 of its
// parameter's domain, so rows handed to the next horizontal-extension step
// are never partially unresolved.
package vertical
