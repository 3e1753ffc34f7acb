package gen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rsolonenko/graphkit/core"
	"github.com/rsolonenko/graphkit/gen"
	"github.com/rsolonenko/graphkit/shortest"
	"github.com/rsolonenko/graphkit/traverse"
)

func stores(opts ...core.Option) map[string]core.Store {
	return map[string]core.Store{
		"list":   core.NewAdjacencyList(opts...),
		"matrix": core.NewAdjacencyMatrix(opts...),
	}
}

func TestPath(t *testing.T) {
	require.ErrorIs(t, gen.Path(nil, 5), gen.ErrStoreNil)

	for name, g := range stores() {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, gen.Path(g, 1), gen.ErrTooFewVertices)

			require.NoError(t, gen.Path(g, 4))
			require.Equal(t, 4, g.VertexCount())
			require.Equal(t, 3, g.EdgeCount())
			require.True(t, g.HasEdge("v0", "v1"))
			require.True(t, g.HasEdge("v2", "v3"))
			require.False(t, g.HasEdge("v0", "v3"))
		})
	}
}

func TestCycle(t *testing.T) {
	for name, g := range stores() {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, gen.Cycle(g, 2), gen.ErrTooFewVertices)

			require.NoError(t, gen.Cycle(g, 5))
			require.Equal(t, 5, g.VertexCount())
			require.Equal(t, 5, g.EdgeCount())
			require.True(t, g.HasEdge("v4", "v0"))
			require.True(t, traverse.IsConnected(g))
		})
	}
}

func TestComplete(t *testing.T) {
	for name, g := range stores() {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, gen.Complete(g, 5))
			require.Equal(t, 5, g.VertexCount())
			require.Equal(t, 10, g.EdgeCount()) // n(n-1)/2
		})
	}
}

func TestStar(t *testing.T) {
	for name, g := range stores() {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, gen.Star(g, 6))
			require.Equal(t, 6, g.VertexCount())
			require.Equal(t, 5, g.EdgeCount())
			require.Len(t, g.Neighbors("v0"), 5)
			require.Len(t, g.Neighbors("v3"), 1)
		})
	}
}

func TestGrid(t *testing.T) {
	for name, g := range stores() {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, gen.Grid(g, 0, 3), gen.ErrTooFewVertices)

			require.NoError(t, gen.Grid(g, 3, 3))
			require.Equal(t, 9, g.VertexCount())
			require.Equal(t, 12, g.EdgeCount()) // 2*rows*cols - rows - cols
			require.True(t, g.HasEdge("0_0", "0_1"))
			require.True(t, g.HasEdge("1_1", "2_1"))
			require.False(t, g.HasEdge("0_0", "1_1")) // no diagonals

			// Opposite corners sit 4 hops apart.
			path, err := shortest.BFSPath(g, "0_0", "2_2")
			require.NoError(t, err)
			require.Len(t, path, 5)
		})
	}
}

func TestRandomSparse(t *testing.T) {
	for name, g := range stores() {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, gen.RandomSparse(g, 5, 1.5), gen.ErrInvalidProbability)
			require.ErrorIs(t, gen.RandomSparse(g, 0, 0.5), gen.ErrTooFewVertices)

			require.NoError(t, gen.RandomSparse(g, 20, 0.3, gen.WithSeed(42)))
			require.Equal(t, 20, g.VertexCount())
			require.Greater(t, g.EdgeCount(), 0)
			require.Less(t, g.EdgeCount(), 190) // fewer than K_20
		})
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	for name, g := range stores() {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, gen.RandomSparse(g, 6, 0))
			require.Equal(t, 0, g.EdgeCount())
		})
	}
	for name, g := range stores() {
		t.Run(name+"_full", func(t *testing.T) {
			require.NoError(t, gen.RandomSparse(g, 6, 1))
			require.Equal(t, 15, g.EdgeCount())
		})
	}
}

func TestRandomSparse_DeterministicPerSeed(t *testing.T) {
	build := func(seed int64) core.Store {
		g := core.NewAdjacencyList(core.WithWeighted())
		if err := gen.RandomSparse(g, 15, 0.4,
			gen.WithSeed(seed), gen.WithWeightFn(gen.UniformWeightFn(1, 9))); err != nil {
			t.Fatal(err)
		}
		return g
	}

	a, b := build(7), build(7)
	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	for _, v := range a.Vertices() {
		require.Equal(t, a.Neighbors(v), b.Neighbors(v))
	}
}

func TestWithIDFnAndWeightFn(t *testing.T) {
	g := core.NewAdjacencyList(core.WithWeighted())
	require.NoError(t, gen.Path(g, 3,
		gen.WithIDFn(func(i int) string { return string(rune('A' + i)) }),
		gen.WithWeightFn(func(_ *rand.Rand) int64 { return 5 })))

	require.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	w, ok := g.EdgeWeight("A", "B")
	require.True(t, ok)
	require.EqualValues(t, 5, w)
}
