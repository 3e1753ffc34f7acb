package shortest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rsolonenko/graphkit/core"
	"github.com/rsolonenko/graphkit/shortest"
)

// stores builds one graph per backend so every test runs the same
// scenario over both representations.
func stores(opts ...core.Option) map[string]core.Store {
	return map[string]core.Store{
		"list":   core.NewAdjacencyList(opts...),
		"matrix": core.NewAdjacencyMatrix(opts...),
	}
}

type edge struct {
	from, to string
	w        int64
}

func addEdges(g core.Store, edges []edge) {
	for _, e := range edges {
		g.AddVertex(e.from)
		g.AddVertex(e.to)
		g.AddEdge(e.from, e.to, e.w)
	}
}

// cityMap is the reference undirected weighted graph used across the
// package: five vertices with one unique shortest-path tree from A.
func cityMap(g core.Store) {
	addEdges(g, []edge{
		{"A", "B", 4},
		{"A", "C", 2},
		{"B", "C", 1},
		{"B", "D", 5},
		{"C", "D", 8},
		{"C", "E", 10},
		{"D", "E", 2},
	})
}

func TestReconstructPath(t *testing.T) {
	prev := map[string]string{"B": "A", "C": "B"}

	require.Equal(t, []string{"A"}, shortest.ReconstructPath(prev, "A", "A"))
	require.Equal(t, []string{"A", "B", "C"}, shortest.ReconstructPath(prev, "A", "C"))
	// A walk that never reaches the source reports no path.
	require.Empty(t, shortest.ReconstructPath(prev, "Z", "C"))
	require.Empty(t, shortest.ReconstructPath(nil, "A", "C"))
}

func TestTree_PathTo_Boundaries(t *testing.T) {
	for name, g := range stores(core.WithWeighted()) {
		t.Run(name, func(t *testing.T) {
			cityMap(g)
			g.AddVertex("LONE")

			tree, err := shortest.Dijkstra(g, "A")
			require.NoError(t, err)

			require.Equal(t, []string{"A"}, tree.PathTo("A"))
			require.Empty(t, tree.PathTo("LONE"))
			require.Empty(t, tree.PathTo("NOPE"))
			require.False(t, tree.Reached("LONE"))
			require.True(t, tree.Reached("D"))
		})
	}
}
