// Package core defines the encoded parameter representation shared by every
// other covarray package, and the index arithmetic that maps between
// parameter combinations / value tuples and their dense integer positions.
//
// Encoding is one-way and done once per generation: callers supply a map of
// parameter name to an ordered list of original values; core deduplicates
// each domain and assigns every surviving value a dense index in
// [0, len(domain)). Everything downstream of core works on those indices;
// only the final decode step (owned by ipog) maps back to original values.
package core
