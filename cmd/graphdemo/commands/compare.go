package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rsolonenko/graphkit/perf"
)

var compareCfg perf.Config

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Time the list and matrix backends on the same workload",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := perf.Compare(compareCfg)
		if err != nil {
			return err
		}
		fmt.Printf("workload: %d vertices, %d edges, p=%.2f, seed=%d, directed=%t, weighted=%t\n\n",
			report.Config.Vertices, report.Edges, report.Config.EdgeProbability,
			report.Config.Seed, report.Config.Directed, report.Config.Weighted)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "phase\tlist\tmatrix")
		fmt.Fprintf(w, "build\t%v\t%v\n", report.List.Build, report.Matrix.Build)
		fmt.Fprintf(w, "has-edge\t%v\t%v\n", report.List.HasEdge, report.Matrix.HasEdge)
		fmt.Fprintf(w, "neighbors\t%v\t%v\n", report.List.Neighbors, report.Matrix.Neighbors)
		fmt.Fprintf(w, "bfs\t%v\t%v\n", report.List.BFS, report.Matrix.BFS)
		fmt.Fprintf(w, "dfs\t%v\t%v\n", report.List.DFS, report.Matrix.DFS)
		fmt.Fprintf(w, "dijkstra\t%v\t%v\n", report.List.Dijkstra, report.Matrix.Dijkstra)
		return w.Flush()
	},
}

func init() {
	compareCmd.Flags().IntVarP(&compareCfg.Vertices, "vertices", "n", 100, "graph size")
	compareCmd.Flags().Float64VarP(&compareCfg.EdgeProbability, "probability", "p", 0.1, "edge probability")
	compareCmd.Flags().Int64Var(&compareCfg.Seed, "seed", 1, "scenario seed")
	compareCmd.Flags().BoolVar(&compareCfg.Directed, "directed", false, "directed graph")
	compareCmd.Flags().BoolVar(&compareCfg.Weighted, "weighted", true, "weighted graph")
}
