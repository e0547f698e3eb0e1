package core

import (
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/RMO1749/distvec/impl"
	"github.com/RMO1749/distvec/state"
	"github.com/encodeous/tint"
	slogmulti "github.com/samber/slog-multi"
)

// NewLogger builds the simulation logger: a tint console handler
// prefixed with the network name, fanned out to a plain text handler
// when a log file is configured.
func NewLogger(name string, level slog.Level, logPath string) (*slog.Logger, error) {
	handlers := make([]slog.Handler, 0)
	handlers = append(handlers,
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:        level,
			AddSource:    false,
			CustomPrefix: name,
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if attr.Key == "time" {
					return slog.Attr{}
				}
				return attr
			},
		}))

	if logPath != "" {
		err := os.MkdirAll(path.Dir(logPath), 0700)
		if err != nil {
			return nil, err
		}
		f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0700)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(slogmulti.Fanout(handlers...)), nil
}

// ReadNetworkConfig loads a topology file. YAML files use the NetworkCfg
// schema; anything else is parsed as the legacy "src dst cost" link
// list.
func ReadNetworkConfig(cfgPath string) (*state.NetworkCfg, error) {
	file, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(path.Ext(cfgPath))
	if ext == ".yaml" || ext == ".yml" {
		return state.ParseNetworkConfig(file)
	}
	return state.ParseLinkList(strings.NewReader(string(file)))
}

// NewSimulation wires a coordinator for the configured network.
func NewSimulation(cfg *state.NetworkCfg, log *slog.Logger) (*impl.Coordinator, error) {
	topo, err := cfg.BuildTopology()
	if err != nil {
		return nil, err
	}
	return impl.NewCoordinator(topo, log), nil
}
