package state

import (
	"fmt"
	"maps"
	"slices"
)

// ErrInvalidTopologyEdit is wrapped by every malformed construction or
// link-edit input: unknown node ids, non-positive costs, duplicate edges.
var ErrInvalidTopologyEdit = fmt.Errorf("invalid topology edit")

// Topology is the shared link-cost table. Links are symmetric and keyed
// by the sorted endpoint pair. During a round the topology is read-only;
// it is mutated only between rounds, by the coordinator's link mutator.
type Topology struct {
	nodes map[Node]struct{}
	links map[Pair[Node, Node]]Cost
}

// NewTopology builds a topology from a node set and symmetric link costs.
func NewTopology(nodes []Node, links map[Pair[Node, Node]]Cost) (*Topology, error) {
	t := &Topology{
		nodes: make(map[Node]struct{}, len(nodes)),
		links: make(map[Pair[Node, Node]]Cost, len(links)),
	}
	for _, n := range nodes {
		if err := NameValidator(string(n)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTopologyEdit, err)
		}
		if _, ok := t.nodes[n]; ok {
			return nil, fmt.Errorf("%w: duplicate node %s", ErrInvalidTopologyEdit, n)
		}
		t.nodes[n] = struct{}{}
	}
	for edge, cost := range links {
		key := MakeSortedPair(edge.V1, edge.V2)
		if err := t.validateEdge(key, cost); err != nil {
			return nil, err
		}
		if _, ok := t.links[key]; ok {
			return nil, fmt.Errorf("%w: duplicate edge %s, %s", ErrInvalidTopologyEdit, key.V1, key.V2)
		}
		t.links[key] = cost
	}
	return t, nil
}

func (t *Topology) validateEdge(edge Pair[Node, Node], cost Cost) error {
	if edge.V1 == edge.V2 {
		return fmt.Errorf("%w: self loop on %s", ErrInvalidTopologyEdit, edge.V1)
	}
	for _, n := range []Node{edge.V1, edge.V2} {
		if _, ok := t.nodes[n]; !ok {
			return fmt.Errorf("%w: node %s not defined", ErrInvalidTopologyEdit, n)
		}
	}
	if cost == 0 || cost == INF {
		return fmt.Errorf("%w: link %s, %s must have a positive finite cost", ErrInvalidTopologyEdit, edge.V1, edge.V2)
	}
	return nil
}

func (t *Topology) HasNode(n Node) bool {
	_, ok := t.nodes[n]
	return ok
}

// Nodes returns every known node id in sorted order.
func (t *Topology) Nodes() []Node {
	nodes := slices.Collect(maps.Keys(t.nodes))
	slices.Sort(nodes)
	return nodes
}

// LinkCost returns the direct cost between two nodes, or INF when no
// link exists.
func (t *Topology) LinkCost(a, b Node) Cost {
	if cost, ok := t.links[MakeSortedPair(a, b)]; ok {
		return cost
	}
	return INF
}

// SetLinkCost sets or re-weights the symmetric link between two nodes.
// A cost of INF removes the link. The caller is responsible for
// serializing this with in-flight rounds.
func (t *Topology) SetLinkCost(a, b Node, cost Cost) error {
	key := MakeSortedPair(a, b)
	if cost == INF {
		if err := t.validateEdge(key, 1); err != nil {
			return err
		}
		delete(t.links, key)
		return nil
	}
	if err := t.validateEdge(key, cost); err != nil {
		return err
	}
	t.links[key] = cost
	return nil
}

// Neighbours returns the nodes directly linked to n, in sorted order.
func (t *Topology) Neighbours(n Node) []Node {
	neighs := make([]Node, 0)
	for edge := range t.links {
		if edge.V1 == n {
			neighs = append(neighs, edge.V2)
		} else if edge.V2 == n {
			neighs = append(neighs, edge.V1)
		}
	}
	slices.Sort(neighs)
	return neighs
}
