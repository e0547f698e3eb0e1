package state

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"slices"
)

var namePattern, _ = regexp.Compile("^[0-9a-zA-Z._-]+$")

func PathValidator(s string) error {
	_, err := os.Stat(path.Dir(s))
	if err != nil {
		return err
	}
	_, err = filepath.Abs(s)
	return err
}

func NameValidator(s string) error {
	if !namePattern.MatchString(s) {
		return fmt.Errorf("%s is not a valid name, must match pattern %s", s, namePattern.String())
	}
	if len(s) > 100 {
		return fmt.Errorf("len(\"%s\") = %d > 100 is too long", s, len(s))
	}
	return nil
}

func NetworkConfigValidator(cfg *NetworkCfg) error {
	for _, node := range cfg.Nodes {
		err := NameValidator(string(node))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidTopologyEdit, err)
		}
	}
	edges := make([]Pair[Node, Node], 0, len(cfg.Links))
	for _, link := range cfg.Links {
		edge := MakeSortedPair(link.A, link.B)
		if slices.Contains(edges, edge) {
			return fmt.Errorf("%w: duplicate edge found: %s, %s", ErrInvalidTopologyEdit, edge.V1, edge.V2)
		}
		if !slices.Contains(cfg.Nodes, link.A) {
			return fmt.Errorf("%w: node %s not defined", ErrInvalidTopologyEdit, link.A)
		}
		if !slices.Contains(cfg.Nodes, link.B) {
			return fmt.Errorf("%w: node %s not defined", ErrInvalidTopologyEdit, link.B)
		}
		if link.Cost == 0 || link.Cost == INF {
			return fmt.Errorf("%w: link %s, %s must have positive cost", ErrInvalidTopologyEdit, link.A, link.B)
		}
		edges = append(edges, edge)
	}
	return nil
}
