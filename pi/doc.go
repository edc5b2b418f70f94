// Package pi implements π, the IPOG paper's uncovered-value-tuple store:
// one bitmap for every size-t combination of parameters whose largest
// index is the currently active parameter.
//
// A fresh π is constructed each time a new parameter becomes active
// (ipog's outer loop, one per i from t to N-1). Its combinations are every
// c ∪ {i} where c ranges over the size-(t-1) subsets of {0, ..., i-1};
// core.Rank places each at the array position its rank would predict, so
// later lookups by combination are O(1) rather than a linear scan.
package pi
