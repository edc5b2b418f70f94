// Package horizontal implements horizontal extension: each existing test
// row is extended by one parameter, greedily choosing the value that
// maximises newly covered tuples in π.
//
// Ties are broken in favour of the last candidate scanned — the reference
// implementation's `if best is None or coverage >= best.coverage`
// comparison — so two runs given the same input produce the same array.
package horizontal
