package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rsolonenko/graphkit/traverse"
)

var connectedCmd = &cobra.Command{
	Use:   "connected",
	Short: "Check whether the scenario graph is connected",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := buildScenario()
		if err != nil {
			return err
		}
		missing := traverse.Unreachable(sc.graph)
		if len(missing) == 0 {
			fmt.Println("connected: yes")
			return nil
		}
		fmt.Println("connected: no")
		fmt.Printf("unreachable (%d): %s\n", len(missing), strings.Join(missing, ", "))
		return nil
	},
}
