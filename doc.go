// Package covarray implements the IPOG (In-Parameter-Order-General) strategy
// for generating t-way combinatorial covering arrays.
//
// Given a set of parameters, each with a finite domain of values, and a
// strength t, covarray produces a list of test rows such that every
// combination of t parameters, and every tuple of values drawn from their
// domains, appears in at least one row. This is the combinatorial
// test-design problem described in:
//
//	Yu Lei, Raghu Kacker, D. Richard Kuhn, Vadim Okun, James Lawrence,
//	"IPOG: A General Strategy for T-Way Software Testing", 2007.
//
// # Layout
//
// The engine is split into the same leaf-first packages the algorithm
// naturally decomposes into:
//
//	core/       — parameter encoding and index arithmetic (combination rank,
//	              value-tuple bit index, and its inverse)
//	bitset/     — arbitrary-width bitmap used to track uncovered value tuples
//	pi/         — the π store: one bitmap per t-way combination touching the
//	              newest active parameter
//	coverage/   — coverage evaluator: how many uncovered tuples a candidate
//	              row would cover, and the resulting π
//	horizontal/ — horizontal extension: extend existing rows one parameter
//	              at a time, greedily
//	vertical/   — vertical extension: add or mutate rows to cover what
//	              horizontal extension left uncovered
//	ipog/       — the driver: normalisation, seeding, the outer loop, and
//	              decoding back to name/value rows
//	checker/    — an independent verifier used by tests and callers who want
//	              to confirm the covering guarantee
//
// # Scope
//
// covarray is a pure computation: it does not execute tests, schedule work,
// or render reports, and it makes no I/O decisions. It is not guaranteed to
// produce a minimum covering array — IPOG is a greedy heuristic — but two
// runs against the same input and strength, with this package's tie-break
// rule, produce identical output.
//
// # Quick start
//
//	parameters := map[string][]any{
//	    "a": {1, 2},
//	    "b": {"x", "y", "z"},
//	}
//	ca, err := ipog.Generate(parameters, 2)
//	if err != nil {
//	    // ...
//	}
//	if err := checker.Check(parameters, ca.Rows, 2); err != nil {
//	    // ca does not satisfy the covering guarantee
//	}
package covarray
