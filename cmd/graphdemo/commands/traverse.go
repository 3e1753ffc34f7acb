package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rsolonenko/graphkit/traverse"
)

var (
	traverseAlgo string
	traverseFrom string
)

var traverseCmd = &cobra.Command{
	Use:   "traverse",
	Short: "Walk the scenario graph breadth- or depth-first",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := buildScenario()
		if err != nil {
			return err
		}
		start := traverseFrom
		if start == "" {
			start = sc.from
		}

		var res *traverse.Result
		switch traverseAlgo {
		case "bfs":
			res, err = traverse.BFS(sc.graph, start)
		case "dfs":
			res, err = traverse.DFS(sc.graph, start)
		case "dfs-rec":
			res, err = traverse.DFSRecursive(sc.graph, start)
		default:
			return fmt.Errorf("unknown algorithm %q (want bfs, dfs, or dfs-rec)", traverseAlgo)
		}
		if err != nil {
			return err
		}
		fmt.Print(renderer().TraversalSteps(res))
		return nil
	},
}

func init() {
	traverseCmd.Flags().StringVar(&traverseAlgo, "algo", "bfs", "traversal algorithm: bfs, dfs, or dfs-rec")
	traverseCmd.Flags().StringVar(&traverseFrom, "from", "", "start vertex (defaults per scenario)")
}
