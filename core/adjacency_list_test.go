package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/rsolonenko/graphkit/core"
)

// AdjacencyListSuite exercises behavior specific to the sparse backend:
// neighbor ordering, in-place upsert, and removal filtering.
type AdjacencyListSuite struct {
	suite.Suite
	g *core.AdjacencyList
}

func (s *AdjacencyListSuite) SetupTest() {
	// Undirected, weighted by default; individual tests may override.
	s.g = core.NewAdjacencyList(core.WithWeighted())
}

func (s *AdjacencyListSuite) TestNeighborInsertionOrderIsPreserved() {
	require := require.New(s.T())
	for _, v := range []string{"A", "D", "B", "C"} {
		s.g.AddVertex(v)
	}
	s.g.AddEdge("A", "D", 1)
	s.g.AddEdge("A", "B", 2)
	s.g.AddEdge("A", "C", 3)

	got := s.g.Neighbors("A")
	require.Equal([]core.Neighbor{{ID: "D", Weight: 1}, {ID: "B", Weight: 2}, {ID: "C", Weight: 3}}, got)
}

func (s *AdjacencyListSuite) TestUpsertDoesNotReorder() {
	require := require.New(s.T())
	for _, v := range []string{"A", "B", "C"} {
		s.g.AddVertex(v)
	}
	s.g.AddEdge("A", "B", 1)
	s.g.AddEdge("A", "C", 2)
	s.g.AddEdge("A", "B", 7) // update in place, B stays first

	got := s.g.Neighbors("A")
	require.Equal([]core.Neighbor{{ID: "B", Weight: 7}, {ID: "C", Weight: 2}}, got)
}

func (s *AdjacencyListSuite) TestRemoveEdgeFiltersBothDirections() {
	require := require.New(s.T())
	for _, v := range []string{"A", "B", "C"} {
		s.g.AddVertex(v)
	}
	s.g.AddEdge("A", "B", 1)
	s.g.AddEdge("A", "C", 2)
	s.g.RemoveEdge("A", "B")

	require.Equal([]core.Neighbor{{ID: "C", Weight: 2}}, s.g.Neighbors("A"))
	require.Empty(s.g.Neighbors("B"))
	require.Equal(1, s.g.EdgeCount())
}

func (s *AdjacencyListSuite) TestDirectedRemoveLeavesReverse() {
	require := require.New(s.T())
	g := core.NewAdjacencyList(core.WithDirected(true), core.WithWeighted())
	g.AddVertex("X")
	g.AddVertex("Y")
	g.AddEdge("X", "Y", 1)
	g.AddEdge("Y", "X", 2)

	g.RemoveEdge("X", "Y")
	require.False(g.HasEdge("X", "Y"))
	require.True(g.HasEdge("Y", "X"))
}

func TestAdjacencyListSuite(t *testing.T) {
	suite.Run(t, new(AdjacencyListSuite))
}
