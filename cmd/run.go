package cmd

import (
	"fmt"

	"github.com/RMO1749/distvec/core"
	"github.com/spf13/cobra"
)

var maxRounds uint64

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the algorithm to convergence without intervention",
	Long: `Repeats broadcast-and-relax rounds until a full round produces no table
changes anywhere, or the round budget is exhausted (count-to-infinity guard).`,
	Run: func(cmd *cobra.Command, args []string) {
		sim, cfg, err := newSimulation()
		if err != nil {
			fmt.Println("Error:", err.Error())
			return
		}
		budget := maxRounds
		if budget == 0 {
			budget = cfg.RoundBudget()
		}
		rep := sim.RunToConvergence(budget)
		fmt.Print(core.RenderTables(sim))
		fmt.Println(core.RenderReport(rep))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Uint64Var(&maxRounds, "max-rounds", 0, "round budget before giving up (default 50 per node)")
}
