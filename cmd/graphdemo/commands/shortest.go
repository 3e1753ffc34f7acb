package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rsolonenko/graphkit/shortest"
)

var (
	shortestAlgo string
	shortestFrom string
	shortestTo   string
)

var shortestCmd = &cobra.Command{
	Use:   "shortest",
	Short: "Compute shortest paths from a source vertex",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := buildScenario()
		if err != nil {
			return err
		}
		from := shortestFrom
		if from == "" {
			from = sc.from
		}
		r := renderer()

		switch shortestAlgo {
		case "dijkstra":
			var opts []shortest.Option
			if shortestTo != "" {
				opts = append(opts, shortest.WithTarget(shortestTo))
			}
			tree, err := shortest.Dijkstra(sc.graph, from, opts...)
			if err != nil {
				return err
			}
			if shortestTo != "" {
				fmt.Print(r.PathBreakdown(sc.graph, tree.PathTo(shortestTo)))
				return nil
			}
			fmt.Print(r.DistanceTable(tree))
			return nil

		case "bellman-ford":
			tree, negCycle, err := shortest.BellmanFord(sc.graph, from)
			if err != nil {
				return err
			}
			if negCycle {
				fmt.Println("negative-weight cycle reachable from", from, "- distances unreliable")
				return nil
			}
			fmt.Print(r.DistanceTable(tree))
			return nil

		case "bfs":
			to := shortestTo
			if to == "" {
				to = sc.to
			}
			path, err := shortest.BFSPath(sc.graph, from, to)
			if err != nil {
				return err
			}
			fmt.Print(r.PathBreakdown(sc.graph, path))
			return nil

		default:
			return fmt.Errorf("unknown algorithm %q (want dijkstra, bellman-ford, or bfs)", shortestAlgo)
		}
	},
}

func init() {
	shortestCmd.Flags().StringVar(&shortestAlgo, "algo", "dijkstra", "algorithm: dijkstra, bellman-ford, or bfs")
	shortestCmd.Flags().StringVar(&shortestFrom, "from", "", "source vertex (defaults per scenario)")
	shortestCmd.Flags().StringVar(&shortestTo, "to", "", "target vertex (full table when omitted)")
}
