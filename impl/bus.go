package impl

import (
	"github.com/RMO1749/distvec/state"
)

// Bus is the in-process transport between agents. Delivery is reliable
// and in-order per sender; the round model provides the only ordering
// guarantee that matters, which is that every broadcast of a round lands
// before any relaxation of that round.
type Bus struct {
	topo   *state.Topology
	agents map[state.Node]*Agent
}

func NewBus(topo *state.Topology, agents map[state.Node]*Agent) *Bus {
	return &Bus{
		topo:   topo,
		agents: agents,
	}
}

// Broadcast delivers vec to every neighbour of from, as defined by the
// topology at the time of the call.
func (b *Bus) Broadcast(from state.Node, vec state.Vector) {
	for _, neigh := range b.topo.Neighbours(from) {
		b.agents[neigh].Deliver(from, vec)
	}
}
