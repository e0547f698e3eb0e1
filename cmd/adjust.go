package cmd

import (
	"fmt"
	"strconv"

	"github.com/RMO1749/distvec/core"
	"github.com/RMO1749/distvec/state"
	"github.com/spf13/cobra"
)

func parseCost(s string) (state.Cost, error) {
	if s == "inf" || s == "remove" {
		return state.INF, nil
	}
	cost, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: bad cost %q: %w", state.ErrInvalidTopologyEdit, s, err)
	}
	return state.Cost(cost), nil
}

// adjustCmd applies a link-cost edit and re-runs the algorithm so the
// change can propagate. Only the two endpoints' direct entries change
// immediately; everything else re-converges through relaxation.
var adjustCmd = &cobra.Command{
	Use:   "adjust <src> <dst> <cost>",
	Short: "Adjust a link cost, then re-run the algorithm",
	Long: `Adjusts the symmetric link between two nodes to the given cost ("inf" or
"remove" severs the link), then re-runs the algorithm in the chosen mode.`,
	Args: cobra.MaximumNArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		sim, cfg, err := newSimulation()
		if err != nil {
			fmt.Println("Error:", err.Error())
			return
		}

		for len(args) < 3 {
			labels := []string{"source node", "destination node", "cost"}
			validate := state.NameValidator
			if len(args) == 2 {
				validate = func(s string) error {
					_, err := parseCost(s)
					return err
				}
			}
			args = append(args, promptDefaultStr(labels[len(args)], "", validate))
		}

		// settle the initial tables first, so the edit lands on a
		// converged network
		rep := sim.RunToConvergence(cfg.RoundBudget())
		fmt.Println(core.RenderReport(rep))

		cost, err := parseCost(args[2])
		if err != nil {
			fmt.Println("Error:", err.Error())
			return
		}
		change, err := sim.UpdateLink(state.Node(args[0]), state.Node(args[1]), cost)
		if err != nil {
			fmt.Println("Error:", err.Error())
			return
		}
		fmt.Println(core.RenderLinkChange(change))

		if promptYN("Run to convergence without intervention?", true) {
			rep = sim.RunToConvergence(cfg.RoundBudget())
			fmt.Print(core.RenderTables(sim))
			fmt.Println(core.RenderReport(rep))
			return
		}
		budget := cfg.RoundBudget()
		for round := uint64(0); round < budget; round++ {
			res := sim.RunSingleStep()
			fmt.Println(core.RenderStep(res))
			fmt.Print(core.RenderTables(sim))
			if !res.Changed {
				return
			}
			if !promptYN("Continue to next round?", true) {
				return
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(adjustCmd)
}
