// Package bitset implements a dense, arbitrary-width bitmap used to
// represent π: the set of value tuples not yet covered for one parameter
// combination.
//
// A combination's bitmap has width Π domainSizes[i], which routinely exceeds
// 64 bits (three parameters of domain 10 already need 1000 bits). Set stores
// each bitmap as a slice of uint64 words, the same chunked representation
// used by cloudeng.io/algo/container/bitmap, and relies on math/bits for
// popcount and for walking the set bits of each word.
package bitset
