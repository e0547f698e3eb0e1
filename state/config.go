package state

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

type LinkCfg struct {
	A    Node `yaml:"a"`
	B    Node `yaml:"b"`
	Cost Cost `yaml:"cost"`
}

// NetworkCfg describes the simulated network: the node set and the
// symmetric weighted links between them.
type NetworkCfg struct {
	Name  string    `yaml:"name,omitempty"`
	Nodes []Node    `yaml:"nodes"`
	Links []LinkCfg `yaml:"links"`
	// MaxRounds bounds run-to-convergence. Zero means the default of
	// 50 rounds per node.
	MaxRounds uint64 `yaml:"max_rounds,omitempty"`
}

func ParseNetworkConfig(data []byte) (*NetworkCfg, error) {
	var cfg NetworkCfg
	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}
	err = NetworkConfigValidator(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LinkListTerminator ends a legacy link-list file. Lines after it are
// ignored.
const LinkListTerminator = "End of Input"

// ParseLinkList reads the legacy plain-text topology format: one
// "src dst cost" triple per line, terminated by "End of Input". Nodes
// are declared implicitly by appearing in a link.
func ParseLinkList(r io.Reader) (*NetworkCfg, error) {
	cfg := &NetworkCfg{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == LinkListTerminator {
			break
		}
		if line == "" {
			continue
		}
		words := strings.Fields(line)
		if len(words) != 3 {
			return nil, fmt.Errorf("%w: expected \"src dst cost\", got %q", ErrInvalidTopologyEdit, line)
		}
		cost, err := strconv.ParseUint(words[2], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad cost %q: %w", ErrInvalidTopologyEdit, words[2], err)
		}
		for _, name := range words[:2] {
			if !slices.Contains(cfg.Nodes, Node(name)) {
				cfg.Nodes = append(cfg.Nodes, Node(name))
			}
		}
		cfg.Links = append(cfg.Links, LinkCfg{
			A:    Node(words[0]),
			B:    Node(words[1]),
			Cost: Cost(cost),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	err := NetworkConfigValidator(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// BuildTopology materializes the configured network.
func (cfg *NetworkCfg) BuildTopology() (*Topology, error) {
	links := make(map[Pair[Node, Node]]Cost, len(cfg.Links))
	for _, link := range cfg.Links {
		links[MakeSortedPair(link.A, link.B)] = link.Cost
	}
	return NewTopology(cfg.Nodes, links)
}

func (cfg *NetworkCfg) RoundBudget() uint64 {
	if cfg.MaxRounds != 0 {
		return cfg.MaxRounds
	}
	return DefaultRoundsPerNode * uint64(len(cfg.Nodes))
}
