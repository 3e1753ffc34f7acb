// Package traverse implements graph traversal over any core.Store:
// depth-first search (iterative and recursive), breadth-first search,
// bounded simple-path enumeration, and a weak-connectivity check.
//
// What
//
//   - DFS: explicit-stack depth-first search. The production form — stack
//     depth is bounded by the slice capacity, never the call stack.
//   - DFSRecursive: the classic pre-order recursion. Semantically equivalent
//     to DFS; recursion depth is bounded by the vertex count, so prefer DFS
//     for very long chains.
//   - BFS: level-order traversal with per-vertex depth and parent links.
//   - FindAllPaths: exhaustive enumeration of simple paths between two
//     vertices, capped by WithMaxPaths. Exponential in general graphs; a
//     bounded exploratory utility, not a main engine.
//   - IsConnected / Unreachable: reachability from the store's first
//     vertex. Directed graphs are tested for weak connectivity — edges are
//     followed in both directions. This is the defined semantics, not an
//     approximation of strong connectivity.
//
// Determinism
//
//	Every function sorts neighbor snapshots lexicographically before
//	exploring them, so repeated runs over an unmodified store produce
//	identical sequences regardless of the backend's internal ordering.
//	DFS pushes neighbors in descending order so that the stack pops them
//	ascending; DFSRecursive and BFS explore ascending directly.
//
// Hooks
//
//	The algorithms are pure with respect to output: they return structured
//	results and invoke the optional WithOnVisit hook per visited vertex.
//	Presentation (step-by-step console rendering and the like) lives in the
//	viz package, which consumes these results.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - DFS / DFSRecursive / BFS: O((V + E) log V) time with the neighbor
//     sorting, O(V) space.
//   - FindAllPaths: exponential worst case, bounded by MaxPaths.
//   - IsConnected: O(V + E) after an O(V + E) reverse-adjacency pass.
package traverse
