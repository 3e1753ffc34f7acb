package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rsolonenko/graphkit/perf"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the scenario graph and its structural properties",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := buildScenario()
		if err != nil {
			return err
		}
		r := renderer()
		fmt.Print(r.Summary(sc.graph))

		props, err := perf.Analyze(sc.graph)
		if err != nil {
			return err
		}
		fmt.Printf("density=%.3f connected=%t degree min/avg/max = %d/%.1f/%d\n",
			props.Density, props.Connected, props.MinDegree, props.AvgDegree, props.MaxDegree)
		return nil
	},
}
