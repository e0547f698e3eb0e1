package cmd

import (
	"fmt"

	"github.com/RMO1749/distvec/core"
	"github.com/spf13/cobra"
)

// inspectCmd prints the initial distance vector table of every node,
// before any rounds have run.
var inspectCmd = &cobra.Command{
	Use:     "inspect",
	Aliases: []string{"i"},
	Short:   "Print the initial distance vector tables",
	Run: func(cmd *cobra.Command, args []string) {
		sim, _, err := newSimulation()
		if err != nil {
			fmt.Println("Error:", err.Error())
			return
		}
		fmt.Print(core.RenderTables(sim))
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
