// Package ipog is the driver and normalisation layer: it prepares the
// parameter encoding, seeds initial rows from the exhaustive product of
// the first t domains, iterates horizontal/vertical extension across the
// remaining parameters, and decodes index-form rows back to name/value
// rows.
//
// Generate is the package's single public entry point: all of the smaller
// leaf packages (core, bitset, pi, coverage, horizontal, vertical) exist
// to be composed here, and are not meant to be driven directly by callers
// outside tests.
//
// Generate is a pure, synchronous computation: it takes a parameter map
// and a strength and returns a covering array, holding no state across
// calls and performing no I/O.
package ipog
