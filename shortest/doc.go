// Package shortest implements single-source shortest paths over any
// core.Store: Dijkstra, Bellman-Ford, and unweighted BFS shortest path,
// plus predecessor-map path reconstruction shared by all of them.
//
// What
//
//   - Dijkstra: non-negative weights, min-heap priority queue with the
//     lazy-decrease-key pattern — improved distances push duplicate heap
//     entries, stale entries are skipped on pop via the finalized set.
//     WithTarget enables early exit the moment the target is finalized;
//     its distance is then final under the non-negative precondition.
//   - BellmanFord: |V|−1 full relaxation rounds with early exit when a
//     round makes no improvement, then one extra round whose success
//     signals a reachable negative-weight cycle. Handles negative edge
//     weights — the documented alternative when Dijkstra's precondition
//     cannot be met. When the cycle flag is set the distance and
//     predecessor maps are unreliable by contract.
//   - BFSPath: hop-count shortest path treating every edge as unit weight
//     regardless of stored weights. The frontier order of BFS guarantees
//     the first complete path has minimum hop count.
//   - ReconstructPath / Tree.PathTo: pure predecessor-walk from target back
//     to source, independent of which algorithm produced the map.
//
// Results
//
//	Dijkstra and BellmanFord return a Tree: the distance map (Unreachable
//	for vertices no path reaches) and the predecessor map (no entry for the
//	source or for unreached vertices).
//
// Errors
//
//	Invalid inputs are sentinel errors checked with errors.Is; an
//	unreachable target is an ordinary empty/Unreachable result, never an
//	error. Dijkstra fails fast with ErrNegativeWeight when the precondition
//	is violated rather than returning silently wrong distances.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Dijkstra:    O((V + E) log V) time, O(V + E) space (lazy heap).
//   - BellmanFord: O(V · E) time, O(V) space.
//   - BFSPath:     O(V + E) time, O(V) space.
package shortest
