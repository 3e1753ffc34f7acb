// Package core: sparse adjacency-list representation.
package core

// AdjacencyList stores the graph as a map from vertex ID to an ordered
// slice of Neighbor entries. Suitable for sparse graphs where memory
// proportional to V+E matters more than O(1) edge lookup.
//
// Complexity:
//
//   - AddVertex:  O(1)
//   - AddEdge:    O(deg(from)) (upsert scan)
//   - RemoveEdge: O(deg(from))
//   - HasEdge / EdgeWeight: O(deg(from))
//   - Neighbors:  O(deg(v)) (snapshot copy)
//   - EdgeCount:  O(V)
//   - Space:      O(V + E)
type AdjacencyList struct {
	flags
	order []string              // vertex IDs in insertion order
	adj   map[string][]Neighbor // vertex ID → neighbor sequence
}

// NewAdjacencyList creates an empty adjacency-list graph.
// Default: undirected, unweighted.
func NewAdjacencyList(opts ...Option) *AdjacencyList {
	return &AdjacencyList{
		flags: newFlags(opts),
		adj:   make(map[string][]Neighbor),
	}
}

// AddVertex inserts v with an empty neighbor sequence.
// Reports false if v is already present. O(1).
func (g *AdjacencyList) AddVertex(v string) bool {
	if _, exists := g.adj[v]; exists {
		return false
	}
	g.adj[v] = nil
	g.order = append(g.order, v)

	return true
}

// HasVertex reports whether v is present. O(1).
func (g *AdjacencyList) HasVertex(v string) bool {
	_, exists := g.adj[v]

	return exists
}

// AddEdge inserts or updates the edge from→to. Reports false when either
// endpoint is missing. An existing entry has its weight overwritten in
// place — and the mirror entry likewise for undirected graphs — so the
// pair never holds duplicates. O(deg(from)).
func (g *AdjacencyList) AddEdge(from, to string, weight int64) bool {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return false
	}
	w := g.normWeight(weight)
	g.upsert(from, to, w)
	if !g.directed && from != to {
		g.upsert(to, from, w)
	}

	return true
}

// upsert overwrites the weight of an existing from→to entry or appends a
// new one.
func (g *AdjacencyList) upsert(from, to string, weight int64) {
	seq := g.adj[from]
	for i := range seq {
		if seq[i].ID == to {
			seq[i].Weight = weight

			return
		}
	}
	g.adj[from] = append(seq, Neighbor{ID: to, Weight: weight})
}

// RemoveEdge filters to out of from's sequence (and the mirror entry for
// undirected graphs). Reports false when either endpoint is missing;
// removing a non-existent edge is a no-op success. O(deg(from)).
func (g *AdjacencyList) RemoveEdge(from, to string) bool {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return false
	}
	g.filterOut(from, to)
	if !g.directed && from != to {
		g.filterOut(to, from)
	}

	return true
}

// filterOut removes every entry for to from from's sequence, in place.
func (g *AdjacencyList) filterOut(from, to string) {
	seq := g.adj[from]
	kept := seq[:0]
	for _, n := range seq {
		if n.ID != to {
			kept = append(kept, n)
		}
	}
	g.adj[from] = kept
}

// HasEdge reports whether from→to exists. Linear scan of from's sequence.
func (g *AdjacencyList) HasEdge(from, to string) bool {
	_, ok := g.EdgeWeight(from, to)

	return ok
}

// EdgeWeight returns the weight of from→to and whether the edge exists.
// O(deg(from)).
func (g *AdjacencyList) EdgeWeight(from, to string) (int64, bool) {
	for _, n := range g.adj[from] {
		if n.ID == to {
			return n.Weight, true
		}
	}

	return 0, false
}

// Neighbors returns a snapshot copy of v's neighbor sequence, or an empty
// slice when v is absent. Mutating the snapshot never affects the store.
func (g *AdjacencyList) Neighbors(v string) []Neighbor {
	seq := g.adj[v]
	out := make([]Neighbor, len(seq))
	copy(out, seq)

	return out
}

// Vertices returns all vertex IDs in insertion order. O(V).
func (g *AdjacencyList) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *AdjacencyList) VertexCount() int {
	return len(g.order)
}

// EdgeCount sums all neighbor-sequence lengths; for undirected graphs the
// mirrored entries make each edge count twice, so the non-loop sum is
// halved. Self-loops occupy a single entry and count once. O(V+E).
func (g *AdjacencyList) EdgeCount() int {
	count := 0
	loops := 0
	for v, seq := range g.adj {
		count += len(seq)
		for _, n := range seq {
			if n.ID == v {
				loops++
			}
		}
	}
	if !g.directed {
		count = loops + (count-loops)/2
	}

	return count
}

// Directed reports whether edges are one-way.
func (g *AdjacencyList) Directed() bool { return g.directed }

// Weighted reports whether edge weights are meaningful.
func (g *AdjacencyList) Weighted() bool { return g.weighted }
