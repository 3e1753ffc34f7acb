// Package gen constructs common graph topologies directly into any
// core.Store: paths, cycles, complete graphs, stars, grids, and
// Erdős–Rényi random sparse graphs.
//
// Every constructor is deterministic: vertices are added in ascending
// index order with IDs from the configured IDFn, edges are emitted in a
// fixed order, and random constructors draw from a seeded source, so the
// same call always produces the same graph. Weights come from the
// configured WeightFn on weighted stores and are ignored on unweighted
// ones, where the store normalizes them to one.
//
// Invalid parameters are reported through sentinel errors checked with
// errors.Is; constructors never panic.
package gen
