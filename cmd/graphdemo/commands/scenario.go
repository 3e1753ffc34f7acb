package commands

import (
	"fmt"

	"github.com/rsolonenko/graphkit/core"
	"github.com/rsolonenko/graphkit/gen"
)

// scenario bundles a prebuilt graph with sensible demo endpoints.
type scenario struct {
	graph core.Store
	// from and to are the default endpoints commands fall back to when
	// the user does not pass --from/--to.
	from, to string
}

// buildScenario constructs the graph selected by --scenario into the
// backend selected by --repr.
func buildScenario() (*scenario, error) {
	switch scenarioFlag {
	case "city":
		g, err := newStore(core.WithWeighted())
		if err != nil {
			return nil, err
		}
		for _, v := range []string{"A", "B", "C", "D", "E"} {
			g.AddVertex(v)
		}
		for _, e := range []struct {
			u, v string
			w    int64
		}{
			{"A", "B", 4}, {"A", "C", 2}, {"B", "C", 1},
			{"B", "D", 5}, {"C", "D", 8}, {"C", "E", 10}, {"D", "E", 2},
		} {
			g.AddEdge(e.u, e.v, e.w)
		}
		return &scenario{graph: g, from: "A", to: "E"}, nil

	case "social":
		g, err := newStore(core.WithDirected(true))
		if err != nil {
			return nil, err
		}
		for _, v := range []string{"alice", "bob", "carol", "dave", "erin", "frank"} {
			g.AddVertex(v)
		}
		for _, e := range [][2]string{
			{"alice", "bob"}, {"alice", "carol"}, {"bob", "carol"},
			{"carol", "dave"}, {"dave", "alice"}, {"erin", "alice"},
			{"erin", "frank"},
		} {
			g.AddEdge(e[0], e[1], 1)
		}
		return &scenario{graph: g, from: "alice", to: "dave"}, nil

	case "grid":
		g, err := newStore()
		if err != nil {
			return nil, err
		}
		if err := gen.Grid(g, 4, 4); err != nil {
			return nil, err
		}
		return &scenario{graph: g, from: "0_0", to: "3_3"}, nil

	case "random":
		g, err := newStore(core.WithWeighted())
		if err != nil {
			return nil, err
		}
		if err := gen.RandomSparse(g, 12, 0.3,
			gen.WithSeed(42), gen.WithWeightFn(gen.UniformWeightFn(1, 9))); err != nil {
			return nil, err
		}
		return &scenario{graph: g, from: "v0", to: "v11"}, nil

	default:
		return nil, fmt.Errorf("unknown scenario %q (want city, social, grid, or random)", scenarioFlag)
	}
}

func newStore(opts ...core.Option) (core.Store, error) {
	switch reprFlag {
	case "list":
		return core.NewAdjacencyList(opts...), nil
	case "matrix":
		return core.NewAdjacencyMatrix(opts...), nil
	default:
		return nil, fmt.Errorf("unknown representation %q (want list or matrix)", reprFlag)
	}
}
