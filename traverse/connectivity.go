// Package traverse: weak-connectivity check.
package traverse

import (
	"sort"

	"github.com/rsolonenko/graphkit/core"
)

// IsConnected reports whether every vertex of s is reachable from the
// store's first reported vertex, ignoring edge direction. For directed
// graphs this is weak connectivity by definition — strong connectivity is
// deliberately out of scope. An empty graph is connected.
func IsConnected(s core.Store) bool {
	if s == nil {
		return false
	}

	return len(Unreachable(s)) == 0
}

// Unreachable returns the vertices not reachable from the store's first
// reported vertex under weak (direction-ignoring) reachability, sorted
// lexicographically. An empty graph has no unreachable vertices.
func Unreachable(s core.Store) []string {
	if s == nil {
		return nil
	}
	vertices := s.Vertices()
	if len(vertices) == 0 {
		return nil
	}

	reached := weakReach(s, vertices[0])
	var out []string
	for _, v := range vertices {
		if !reached[v] {
			out = append(out, v)
		}
	}
	sort.Strings(out)

	return out
}

// weakReach runs an explicit-stack DFS over the undirected view of s: each
// directed edge is walked in both directions. Built by one pass over every
// vertex's neighbor snapshot, so it costs O(V + E) regardless of backend.
func weakReach(s core.Store, start string) map[string]bool {
	undirected := make(map[string][]string, s.VertexCount())
	for _, u := range s.Vertices() {
		for _, nbr := range s.Neighbors(u) {
			undirected[u] = append(undirected[u], nbr.ID)
			undirected[nbr.ID] = append(undirected[nbr.ID], u)
		}
	}

	reached := make(map[string]bool, s.VertexCount())
	stack := []string{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if reached[v] {
			continue
		}
		reached[v] = true
		for _, n := range undirected[v] {
			if !reached[n] {
				stack = append(stack, n)
			}
		}
	}

	return reached
}
