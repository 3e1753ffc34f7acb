// Package perf compares the adjacency-list and adjacency-matrix backends
// on identical workloads and summarizes structural properties of a graph.
//
// Compare builds the same seeded random graph into both backends and
// times construction, edge probes, neighbor scans, and the traversal and
// shortest-path algorithms over each. The two builds share one scenario,
// so the numbers differ only by representation. Wall-clock timings are
// indicative, not statistical; use the package benchmarks for rigorous
// measurement.
//
// Analyze reports counts, density, degree statistics, and connectivity
// for a single graph, independent of backend.
package perf
