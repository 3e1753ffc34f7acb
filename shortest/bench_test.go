package shortest_test

import (
	"fmt"
	"testing"

	"github.com/rsolonenko/graphkit/core"
	"github.com/rsolonenko/graphkit/shortest"
)

// weightedChain builds 0-1-2-...-(n-1) with weight i on edge i.
func weightedChain(g core.Store, n int) {
	prev := ""
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("v%04d", i)
		g.AddVertex(id)
		if prev != "" {
			g.AddEdge(prev, id, int64(i))
		}
		prev = id
	}
}

func BenchmarkDijkstra_Chain(b *testing.B) {
	g := core.NewAdjacencyList(core.WithWeighted())
	weightedChain(g, 5000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := shortest.Dijkstra(g, "v0000"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBellmanFord_Chain(b *testing.B) {
	g := core.NewAdjacencyList(core.WithWeighted())
	weightedChain(g, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := shortest.BellmanFord(g, "v0000"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDijkstra_MatrixVsList(b *testing.B) {
	const n = 1000
	for name, g := range map[string]core.Store{
		"list":   core.NewAdjacencyList(core.WithWeighted()),
		"matrix": core.NewAdjacencyMatrix(core.WithWeighted()),
	} {
		weightedChain(g, n)
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := shortest.Dijkstra(g, "v0000"); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
