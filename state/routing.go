package state

import (
	"fmt"
	"maps"
	"slices"
)

type Node string

// Cost is a link or path cost. INF marks an unreachable destination.
type Cost uint32

const INF = ^Cost(0)

// AddCost adds two costs, saturating at INF. INF is absorbing.
func AddCost(a, b Cost) Cost {
	if a == INF || b == INF {
		return INF
	}
	return Cost(min(uint64(INF), uint64(a)+uint64(b)))
}

func (c Cost) String() string {
	if c == INF {
		return "inf"
	}
	return fmt.Sprintf("%d", uint32(c))
}

// Entry is one row of a distance vector: the best known cost to a
// destination and the neighbour used to reach it. The self entry has
// cost 0 and an empty next hop.
type Entry struct {
	Cost Cost
	Nh   Node
}

// Vector is a node's distance-vector table. It is owned exclusively by
// that node's agent; everyone else sees clones.
type Vector map[Node]Entry

func (v Vector) Clone() Vector {
	return maps.Clone(v)
}

// Destinations returns the known destinations in sorted order.
func (v Vector) Destinations() []Node {
	dests := slices.Collect(maps.Keys(v))
	slices.Sort(dests)
	return dests
}

func (v Vector) String() string {
	out := ""
	for _, dst := range v.Destinations() {
		e := v[dst]
		if out != "" {
			out += ", "
		}
		if e.Nh == "" {
			out += fmt.Sprintf("%s: %s", dst, e.Cost)
		} else {
			out += fmt.Sprintf("%s: %s via %s", dst, e.Cost, e.Nh)
		}
	}
	return out
}
