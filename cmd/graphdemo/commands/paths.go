package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rsolonenko/graphkit/traverse"
)

var (
	pathsFrom string
	pathsTo   string
	pathsMax  int
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Enumerate simple paths between two vertices",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := buildScenario()
		if err != nil {
			return err
		}
		from, to := pathsFrom, pathsTo
		if from == "" {
			from = sc.from
		}
		if to == "" {
			to = sc.to
		}

		paths, err := traverse.FindAllPaths(sc.graph, from, to, traverse.WithMaxPaths(pathsMax))
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Printf("no path from %s to %s\n", from, to)
			return nil
		}
		r := renderer()
		for _, p := range paths {
			fmt.Print(r.PathBreakdown(sc.graph, p))
		}
		fmt.Printf("%d path(s)\n", len(paths))
		return nil
	},
}

func init() {
	pathsCmd.Flags().StringVar(&pathsFrom, "from", "", "start vertex (defaults per scenario)")
	pathsCmd.Flags().StringVar(&pathsTo, "to", "", "end vertex (defaults per scenario)")
	pathsCmd.Flags().IntVar(&pathsMax, "max", traverse.DefaultMaxPaths, "maximum paths to enumerate (0 = unbounded)")
}
