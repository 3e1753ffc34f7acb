package traverse_test

import (
	"fmt"
	"testing"

	"github.com/rsolonenko/graphkit/core"
	"github.com/rsolonenko/graphkit/traverse"
)

// buildChainStore creates a linear chain of n vertices on the given backend.
func buildChainStore(g core.Store, n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(fmt.Sprintf("v%05d", i))
	}
	for i := 0; i < n-1; i++ {
		g.AddEdge(fmt.Sprintf("v%05d", i), fmt.Sprintf("v%05d", i+1), 1)
	}
}

func BenchmarkBFS_Chain(b *testing.B) {
	const n = 10000
	g := core.NewAdjacencyList()
	buildChainStore(g, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = traverse.BFS(g, "v00000")
	}
}

func BenchmarkDFS_Chain(b *testing.B) {
	const n = 10000
	g := core.NewAdjacencyList()
	buildChainStore(g, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = traverse.DFS(g, "v00000")
	}
}

// BenchmarkBFS_MatrixVsList contrasts the O(V) matrix row scans against the
// O(deg) list snapshots on an identical chain.
func BenchmarkBFS_MatrixVsList(b *testing.B) {
	const n = 1000
	list := core.NewAdjacencyList()
	matrix := core.NewAdjacencyMatrix()
	buildChainStore(list, n)
	buildChainStore(matrix, n)

	b.Run("list", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = traverse.BFS(list, "v00000")
		}
	})
	b.Run("matrix", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = traverse.BFS(matrix, "v00000")
		}
	})
}
