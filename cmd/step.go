package cmd

import (
	"fmt"

	"github.com/RMO1749/distvec/core"
	"github.com/spf13/cobra"
)

// stepCmd runs the algorithm one round at a time, asking whether to
// continue after every round. Control always returns between rounds, so
// the caller can stop before convergence.
var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Run the algorithm in single-step mode",
	Run: func(cmd *cobra.Command, args []string) {
		sim, cfg, err := newSimulation()
		if err != nil {
			fmt.Println("Error:", err.Error())
			return
		}
		budget := cfg.RoundBudget()
		for round := uint64(0); round < budget; round++ {
			res := sim.RunSingleStep()
			fmt.Println(core.RenderStep(res))
			fmt.Print(core.RenderTables(sim))
			if !res.Changed {
				fmt.Printf("reached a stable state in %d rounds\n", res.Round)
				return
			}
			if !promptYN("Continue to next round?", true) {
				fmt.Println("stopped before convergence")
				return
			}
		}
		fmt.Printf("did not converge within %d rounds\n", budget)
	},
}

func init() {
	rootCmd.AddCommand(stepCmd)
}
