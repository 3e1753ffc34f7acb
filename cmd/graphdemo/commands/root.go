// Package commands wires the graphdemo CLI: ready-made scenario graphs
// explored through the traversal, shortest-path, and comparison tools.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rsolonenko/graphkit/viz"
)

var (
	reprFlag     string
	scenarioFlag string
	plainFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "graphdemo",
	Short: "Explore graph algorithms over interchangeable representations",
	Long: `graphdemo runs traversals, shortest paths, and backend comparisons
over built-in scenario graphs.

Scenarios:
  city    undirected weighted road map (5 cities)
  social  directed follow graph (6 accounts)
  grid    4x4 undirected lattice
  random  seeded sparse random graph (12 vertices)

Every command accepts --repr to choose the adjacency-list or
adjacency-matrix backend; results are identical either way.`,
	SilenceUsage: true,
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&reprFlag, "repr", "list", "graph backend: list or matrix")
	rootCmd.PersistentFlags().StringVar(&scenarioFlag, "scenario", "city", "scenario graph: city, social, grid, or random")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "disable colored output")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(traverseCmd)
	rootCmd.AddCommand(shortestCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(connectedCmd)
	rootCmd.AddCommand(compareCmd)
}

// renderer honors --plain.
func renderer() *viz.Renderer {
	if plainFlag {
		return viz.New(viz.Plain())
	}
	return viz.New(viz.Ocean())
}
