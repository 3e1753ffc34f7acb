package viz_test

import (
	"fmt"

	"github.com/rsolonenko/graphkit/core"
	"github.com/rsolonenko/graphkit/shortest"
	"github.com/rsolonenko/graphkit/viz"
)

// ExampleRenderer_PathBreakdown prints a route hop by hop with weights.
func ExampleRenderer_PathBreakdown() {
	g := core.NewAdjacencyList(core.WithWeighted())
	for _, v := range []string{"A", "B", "C"} {
		g.AddVertex(v)
	}
	g.AddEdge("A", "C", 2)
	g.AddEdge("C", "B", 1)

	tree, _ := shortest.Dijkstra(g, "A")
	r := viz.New(viz.Plain())
	fmt.Print(r.PathBreakdown(g, tree.PathTo("B")))
	// Output:
	// A -(2)-> C -(1)-> B  total=3
}
