// Package core defines the Store capability contract and the two concrete
// graph representations that implement it: AdjacencyList and AdjacencyMatrix.
//
// What
//
//   - Store: the full query/mutation surface every representation exposes —
//     vertex and edge insertion, edge removal, existence and weight lookup,
//     neighbor snapshots, vertex enumeration, and the immutable
//     directed/weighted flags.
//   - AdjacencyList: map from vertex to an ordered neighbor slice.
//     O(1) vertex insertion, O(deg) edge operations, O(V+E) space.
//     The natural choice for sparse graphs.
//   - AdjacencyMatrix: square weight matrix indexed through a vertex→index
//     map, with a parallel presence matrix so a stored weight of zero is a
//     real edge, not an absence. O(1) edge operations, O(V) vertex insertion,
//     O(V²) space. The natural choice for dense graphs with frequent edge
//     lookups.
//
// Semantics shared by both representations
//
//   - Vertices are unique string identifiers; AddVertex on an existing
//     vertex reports false and changes nothing.
//   - At most one edge exists per ordered (from, to) pair; AddEdge on an
//     existing pair updates the weight in place (upsert).
//   - AddEdge and RemoveEdge report false when either endpoint is missing.
//     Removing an edge that does not exist is a no-op success.
//   - Undirected graphs keep the mirror invariant after every mutation:
//     an edge (u,v,w) exists exactly when (v,u,w) does.
//   - Unweighted graphs store weight 1 for every edge regardless of the
//     weight argument.
//   - Neighbors returns a snapshot copy; callers never observe or cause
//     mutation through it. A missing vertex yields an empty slice, not an
//     error.
//
// Determinism
//
//	Vertices() reports vertices in insertion order for both backends, and
//	Neighbors() reports neighbors in a stable, representation-defined order
//	(insertion order for the list, index order for the matrix). Algorithms
//	that need a total order sort the snapshot themselves.
//
// Concurrency
//
//	A Store is not safe for concurrent mutation. Callers sharing one across
//	goroutines must serialize access externally.
package core
