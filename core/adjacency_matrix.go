// Package core: dense adjacency-matrix representation.
package core

// AdjacencyMatrix stores the graph as a square weight matrix indexed by a
// vertex→index map, with an index→vertex reverse list. A parallel presence
// matrix records which cells hold a real edge, so a weight of zero is a
// genuine edge and not an absence marker.
//
// Complexity:
//
//   - AddVertex:  O(V) (grows one row and one column), O(V²) cumulative
//   - AddEdge / RemoveEdge / HasEdge / EdgeWeight: O(1)
//   - Neighbors:  O(V) (full row scan)
//   - Space:      O(V²)
type AdjacencyMatrix struct {
	flags
	index   map[string]int // vertex ID → row/col index
	verts   []string       // index → vertex ID
	weight  [][]int64      // weight[i][j] = weight of edge i→j
	present [][]bool       // present[i][j] = edge i→j exists
}

// NewAdjacencyMatrix creates an empty adjacency-matrix graph.
// Default: undirected, unweighted.
func NewAdjacencyMatrix(opts ...Option) *AdjacencyMatrix {
	return &AdjacencyMatrix{
		flags: newFlags(opts),
		index: make(map[string]int),
	}
}

// AddVertex appends v to the index list and grows the matrix by one row and
// one column. New cells start absent. Reports false if v is already
// present. O(V).
func (g *AdjacencyMatrix) AddVertex(v string) bool {
	if _, exists := g.index[v]; exists {
		return false
	}
	g.index[v] = len(g.verts)
	g.verts = append(g.verts, v)

	n := len(g.verts)
	// extend every existing row by one column
	for i := range g.weight {
		g.weight[i] = append(g.weight[i], 0)
		g.present[i] = append(g.present[i], false)
	}
	// append the new row
	g.weight = append(g.weight, make([]int64, n))
	g.present = append(g.present, make([]bool, n))

	return true
}

// HasVertex reports whether v is present. O(1).
func (g *AdjacencyMatrix) HasVertex(v string) bool {
	_, exists := g.index[v]

	return exists
}

// AddEdge writes the edge cell (and its mirror for undirected graphs).
// Re-adding overwrites the stored weight. Reports false when either
// endpoint is missing. O(1).
func (g *AdjacencyMatrix) AddEdge(from, to string, weight int64) bool {
	i, ok1 := g.index[from]
	j, ok2 := g.index[to]
	if !ok1 || !ok2 {
		return false
	}
	w := g.normWeight(weight)
	g.weight[i][j] = w
	g.present[i][j] = true
	if !g.directed {
		g.weight[j][i] = w
		g.present[j][i] = true
	}

	return true
}

// RemoveEdge clears the edge cell (and its mirror for undirected graphs).
// Reports false when either endpoint is missing; clearing an absent edge is
// a no-op success. O(1).
func (g *AdjacencyMatrix) RemoveEdge(from, to string) bool {
	i, ok1 := g.index[from]
	j, ok2 := g.index[to]
	if !ok1 || !ok2 {
		return false
	}
	g.weight[i][j] = 0
	g.present[i][j] = false
	if !g.directed {
		g.weight[j][i] = 0
		g.present[j][i] = false
	}

	return true
}

// HasEdge reports whether from→to exists. O(1).
func (g *AdjacencyMatrix) HasEdge(from, to string) bool {
	_, ok := g.EdgeWeight(from, to)

	return ok
}

// EdgeWeight returns the weight of from→to and whether the edge exists.
// O(1).
func (g *AdjacencyMatrix) EdgeWeight(from, to string) (int64, bool) {
	i, ok1 := g.index[from]
	j, ok2 := g.index[to]
	if !ok1 || !ok2 || !g.present[i][j] {
		return 0, false
	}

	return g.weight[i][j], true
}

// Neighbors scans v's full row for present cells, in index order. A missing
// vertex yields an empty slice. O(V).
func (g *AdjacencyMatrix) Neighbors(v string) []Neighbor {
	i, ok := g.index[v]
	if !ok {
		return []Neighbor{}
	}
	out := make([]Neighbor, 0, len(g.verts))
	for j, p := range g.present[i] {
		if p {
			out = append(out, Neighbor{ID: g.verts[j], Weight: g.weight[i][j]})
		}
	}

	return out
}

// Vertices returns all vertex IDs in insertion order. O(V).
func (g *AdjacencyMatrix) Vertices() []string {
	out := make([]string, len(g.verts))
	copy(out, g.verts)

	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *AdjacencyMatrix) VertexCount() int {
	return len(g.verts)
}

// EdgeCount counts present cells; for undirected graphs the mirrored cells
// make each edge count twice, except self-loops which occupy a single
// diagonal cell. O(V²).
func (g *AdjacencyMatrix) EdgeCount() int {
	count := 0
	loops := 0
	for i := range g.present {
		for j, p := range g.present[i] {
			if p {
				count++
				if i == j {
					loops++
				}
			}
		}
	}
	if !g.directed {
		count = loops + (count-loops)/2
	}

	return count
}

// Directed reports whether edges are one-way.
func (g *AdjacencyMatrix) Directed() bool { return g.directed }

// Weighted reports whether edge weights are meaningful.
func (g *AdjacencyMatrix) Weighted() bool { return g.weighted }
