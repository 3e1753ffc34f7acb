package perf

import (
	"github.com/rsolonenko/graphkit/core"
	"github.com/rsolonenko/graphkit/traverse"
)

// Properties summarizes the structure of one graph.
type Properties struct {
	Vertices  int
	Edges     int
	Directed  bool
	Weighted  bool
	Connected bool
	// Density is edges relative to the maximum possible for the graph
	// mode; zero for graphs with fewer than two vertices.
	Density float64
	// Degree statistics use the out-degree on directed graphs.
	MinDegree int
	MaxDegree int
	AvgDegree float64
}

// Analyze computes Properties for g in O(V + E).
func Analyze(g core.Store) (*Properties, error) {
	if g == nil {
		return nil, ErrStoreNil
	}
	p := &Properties{
		Vertices:  g.VertexCount(),
		Edges:     g.EdgeCount(),
		Directed:  g.Directed(),
		Weighted:  g.Weighted(),
		Connected: traverse.IsConnected(g),
	}

	if p.Vertices >= 2 {
		maxEdges := float64(p.Vertices) * float64(p.Vertices-1)
		if !p.Directed {
			maxEdges /= 2
		}
		p.Density = float64(p.Edges) / maxEdges
	}

	degTotal := 0
	for i, v := range g.Vertices() {
		d := len(g.Neighbors(v))
		degTotal += d
		if i == 0 || d < p.MinDegree {
			p.MinDegree = d
		}
		if d > p.MaxDegree {
			p.MaxDegree = d
		}
	}
	if p.Vertices > 0 {
		p.AvgDegree = float64(degTotal) / float64(p.Vertices)
	}
	return p, nil
}
