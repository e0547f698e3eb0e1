package cmd

import (
	"log/slog"

	"github.com/RMO1749/distvec/core"
	"github.com/RMO1749/distvec/impl"
	"github.com/RMO1749/distvec/state"
)

// newSimulation loads the configured topology and wires a coordinator
// plus its logger from the persistent flags.
func newSimulation() (*impl.Coordinator, *state.NetworkCfg, error) {
	cfg, err := core.ReadNetworkConfig(topologyPath)
	if err != nil {
		return nil, nil, err
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	name := cfg.Name
	if name == "" {
		name = "distvec"
	}
	log, err := core.NewLogger(name, level, logPath)
	if err != nil {
		return nil, nil, err
	}
	sim, err := core.NewSimulation(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return sim, cfg, nil
}
