package cmd

import (
	"os"

	"github.com/RMO1749/distvec/state"
	"github.com/spf13/cobra"
)

var (
	topologyPath string
	logPath      string
	verbose      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "distvec",
	Short: "Distance-Vector Routing Simulator",
	Long: `distvec simulates the Distance-Vector Routing algorithm over a weighted
topology: every node exchanges its distance vector with its neighbours each
round and relaxes its table until the whole network converges.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&topologyPath, "topology", "t", "topology.yaml", "topology file (yaml or legacy link list)")
	rootCmd.PersistentFlags().StringVarP(&logPath, "log-path", "o", "", "also write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&state.DBG_log_relax, "lrelax", "r", false, "Write relaxation updates to console")
	rootCmd.PersistentFlags().BoolVarP(&state.DBG_log_route_table, "ltable", "l", false, "Write per-round tables to console")
}
