package shortest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rsolonenko/graphkit/core"
	"github.com/rsolonenko/graphkit/shortest"
)

func TestBellmanFord_Errors(t *testing.T) {
	_, _, err := shortest.BellmanFord(nil, "A")
	require.ErrorIs(t, err, shortest.ErrStoreNil)

	for name, g := range stores(core.WithWeighted()) {
		t.Run(name, func(t *testing.T) {
			g.AddVertex("A")
			_, _, err := shortest.BellmanFord(g, "missing")
			require.ErrorIs(t, err, shortest.ErrSourceNotFound)
		})
	}
}

func TestBellmanFord_MatchesDijkstraOnCityMap(t *testing.T) {
	for name, g := range stores(core.WithWeighted()) {
		t.Run(name, func(t *testing.T) {
			cityMap(g)

			dj, err := shortest.Dijkstra(g, "A")
			require.NoError(t, err)
			bf, cycle, err := shortest.BellmanFord(g, "A")
			require.NoError(t, err)

			require.False(t, cycle)
			require.Equal(t, dj.Dist, bf.Dist)
			require.Equal(t, dj.PathTo("E"), bf.PathTo("E"))
		})
	}
}

func TestBellmanFord_NegativeEdges(t *testing.T) {
	for name, g := range stores(core.WithDirected(true), core.WithWeighted()) {
		t.Run(name, func(t *testing.T) {
			// The detour through C costs 5-10 = -5, beating the direct 2.
			addEdges(g, []edge{
				{"A", "B", 2},
				{"A", "C", 5},
				{"C", "B", -10},
			})

			tree, cycle, err := shortest.BellmanFord(g, "A")
			require.NoError(t, err)
			require.False(t, cycle)
			require.EqualValues(t, -5, tree.Dist["B"])
			require.Equal(t, []string{"A", "C", "B"}, tree.PathTo("B"))
		})
	}
}

func TestBellmanFord_NegativeCycleDetected(t *testing.T) {
	for name, g := range stores(core.WithDirected(true), core.WithWeighted()) {
		t.Run(name, func(t *testing.T) {
			// Triangle with total weight -1 reachable from the source.
			addEdges(g, []edge{
				{"A", "B", 1},
				{"B", "C", 1},
				{"C", "A", -3},
			})

			_, cycle, err := shortest.BellmanFord(g, "A")
			require.NoError(t, err)
			require.True(t, cycle)
		})
	}
}

func TestBellmanFord_UnreachableNegativeCycleIgnored(t *testing.T) {
	for name, g := range stores(core.WithDirected(true), core.WithWeighted()) {
		t.Run(name, func(t *testing.T) {
			// The negative cycle lives in a component the source never
			// reaches, so it must not trip the flag.
			addEdges(g, []edge{
				{"A", "B", 1},
				{"X", "Y", -2},
				{"Y", "X", -2},
			})

			tree, cycle, err := shortest.BellmanFord(g, "A")
			require.NoError(t, err)
			require.False(t, cycle)
			require.EqualValues(t, 1, tree.Dist["B"])
			require.Equal(t, shortest.Unreachable, tree.Dist["X"])
		})
	}
}

func TestBellmanFord_SingleVertex(t *testing.T) {
	for name, g := range stores(core.WithWeighted()) {
		t.Run(name, func(t *testing.T) {
			g.AddVertex("A")

			tree, cycle, err := shortest.BellmanFord(g, "A")
			require.NoError(t, err)
			require.False(t, cycle)
			require.Equal(t, map[string]int64{"A": 0}, tree.Dist)
		})
	}
}
