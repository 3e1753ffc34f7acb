// Package graphkit is a small in-memory library of graph representations
// and the classical algorithms that run over them.
//
// Two interchangeable storage backends implement one capability contract:
//
//	core.AdjacencyList   — sparse, map of vertex → ordered neighbor slice
//	core.AdjacencyMatrix — dense, square weight matrix with explicit presence
//
// Every algorithm consumes the core.Store interface only, so either backend
// (or your own) can be traversed, searched, and rendered without change:
//
//	traverse/ — DFS (iterative and recursive), BFS, path enumeration,
//	            weak-connectivity check
//	shortest/ — Dijkstra, Bellman-Ford with negative-cycle detection,
//	            unweighted BFS shortest path, predecessor-map reconstruction
//	viz/      — console rendering of graphs, traversal steps, distance tables
//	perf/     — timing comparison between the two representations
//	gen/      — deterministic fixture generators (paths, cycles, grids, ...)
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := core.NewAdjacencyList(core.WithWeighted())
//	for _, v := range []string{"A", "B", "C", "D"} {
//	    g.AddVertex(v)
//	}
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("A", "C", 1)
//	g.AddEdge("B", "D", 1)
//	g.AddEdge("C", "D", 1)
//	res, _ := traverse.BFS(g, "A")
//
// All traversal orders are deterministic: neighbors are explored in
// ascending lexicographic order regardless of the backend's internal
// iteration order.
package graphkit
