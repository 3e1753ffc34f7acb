package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsolonenko/graphkit/core"
	"github.com/rsolonenko/graphkit/traverse"
)

func TestFindAllPaths_Errors(t *testing.T) {
	_, err := traverse.FindAllPaths(nil, "A", "B")
	assert.ErrorIs(t, err, traverse.ErrStoreNil)

	g := core.NewAdjacencyList()
	g.AddVertex("A")
	_, err = traverse.FindAllPaths(g, "ghost", "A")
	assert.ErrorIs(t, err, traverse.ErrStartVertexNotFound)
	_, err = traverse.FindAllPaths(g, "A", "ghost")
	assert.ErrorIs(t, err, traverse.ErrTargetVertexNotFound)

	_, err = traverse.FindAllPaths(g, "A", "A", traverse.WithMaxPaths(-1))
	assert.ErrorIs(t, err, traverse.ErrOptionViolation)
}

func TestFindAllPaths_Diamond(t *testing.T) {
	for name, g := range stores() {
		t.Run(name, func(t *testing.T) {
			// A→B→D and A→C→D plus the chord B→C
			addEdges(g, [][2]string{
				{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"B", "C"},
			})
			paths, err := traverse.FindAllPaths(g, "A", "D")
			require.NoError(t, err)
			assert.ElementsMatch(t, [][]string{
				{"A", "B", "C", "D"},
				{"A", "B", "D"},
				{"A", "C", "B", "D"},
				{"A", "C", "D"},
			}, paths)

			// simple paths only: no vertex repeats inside one path
			for _, p := range paths {
				seen := map[string]bool{}
				for _, v := range p {
					assert.False(t, seen[v], "path %v revisits %s", p, v)
					seen[v] = true
				}
			}
		})
	}
}

func TestFindAllPaths_MaxPathsCap(t *testing.T) {
	g := core.NewAdjacencyMatrix()
	addEdges(g, [][2]string{
		{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"B", "C"},
	})
	paths, err := traverse.FindAllPaths(g, "A", "D", traverse.WithMaxPaths(2))
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestFindAllPaths_NoPath(t *testing.T) {
	g := core.NewAdjacencyList(core.WithDirected(true))
	g.AddVertex("A")
	g.AddVertex("B")
	paths, err := traverse.FindAllPaths(g, "A", "B")
	require.NoError(t, err)
	assert.Empty(t, paths, "disconnected endpoints yield an empty result, not an error")
}

func TestFindAllPaths_StartEqualsEnd(t *testing.T) {
	g := core.NewAdjacencyList()
	g.AddVertex("A")
	g.AddVertex("B")
	g.AddEdge("A", "B", 1)
	paths, err := traverse.FindAllPaths(g, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A"}}, paths)
}
