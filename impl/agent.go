package impl

import (
	"log/slog"
	"slices"

	"github.com/RMO1749/distvec/state"
)

// Agent is one simulated router. It owns its distance-vector table and a
// mailbox holding the latest vector received from each neighbour. The
// table is mutated only by the agent's own Relax; everyone else gets
// clones.
type Agent struct {
	Id    state.Node
	table state.Vector
	inbox map[state.Node]state.Vector
	log   *slog.Logger
}

func NewAgent(id state.Node, topo *state.Topology, log *slog.Logger) *Agent {
	a := &Agent{
		Id:  id,
		log: log,
	}
	a.Init(topo)
	return a
}

// Init seeds the table: cost 0 to self with no next hop, the direct link
// cost to each neighbour, and INF everywhere else. A node with zero
// neighbours stays isolated with all non-self entries at INF.
func (a *Agent) Init(topo *state.Topology) {
	a.table = make(state.Vector)
	a.inbox = make(map[state.Node]state.Vector)
	for _, dst := range topo.Nodes() {
		if dst == a.Id {
			a.table[dst] = state.Entry{Cost: 0, Nh: ""}
			continue
		}
		cost := topo.LinkCost(a.Id, dst)
		nh := dst
		if cost == state.INF {
			nh = ""
		}
		a.table[dst] = state.Entry{Cost: cost, Nh: nh}
	}
}

// SendVector returns a snapshot of the current table for transmission.
// Receivers must never see the live table.
func (a *Agent) SendVector() state.Vector {
	return a.table.Clone()
}

// Table returns a read-only snapshot for display.
func (a *Agent) Table() state.Vector {
	return a.table.Clone()
}

// Deliver stores the latest vector received from a neighbour. Delivery
// and relaxation are separate phases; the coordinator guarantees all
// deliveries of a round land before any agent relaxes.
func (a *Agent) Deliver(from state.Node, vec state.Vector) {
	a.inbox[from] = vec
}

// ResetDirect overwrites the direct-cost entry for a neighbour after a
// link edit. Transitive entries are left stale on purpose; subsequent
// rounds of relaxation correct them.
func (a *Agent) ResetDirect(neigh state.Node, cost state.Cost) {
	if cost == state.INF {
		a.table[neigh] = state.Entry{Cost: state.INF, Nh: ""}
		return
	}
	a.table[neigh] = state.Entry{Cost: cost, Nh: neigh}
}

// Relax recomputes the table from the latest vector of every current
// neighbour. For each destination the candidate through neighbour v is
// link(self,v) + vec_v[dst], saturating at INF. The cheapest candidate
// wins, but an equal-cost candidate never displaces the current next hop,
// so tables cannot oscillate between equal-cost paths. The recompute is
// independent of delivery order within the round. Returns whether any
// entry changed.
func (a *Agent) Relax(topo *state.Topology) bool {
	neighs := topo.Neighbours(a.Id)
	changed := false

	for _, dst := range a.destinations() {
		if dst == a.Id {
			continue
		}
		cur, known := a.table[dst]
		if !known {
			cur = state.Entry{Cost: state.INF, Nh: ""}
		}

		best := state.Entry{Cost: state.INF, Nh: ""}
		curCandidate := state.INF
		for _, neigh := range neighs {
			cand := state.AddCost(topo.LinkCost(a.Id, neigh), a.neighbourCost(neigh, dst))
			if neigh == cur.Nh {
				curCandidate = cand
			}
			if cand < best.Cost {
				best = state.Entry{Cost: cand, Nh: neigh}
			}
		}
		// ties keep the incumbent next hop
		if cur.Nh != "" && curCandidate == best.Cost && best.Cost != state.INF {
			best.Nh = cur.Nh
		}

		if best != cur {
			if state.DBG_log_relax {
				a.log.Debug("relax", "node", a.Id, "dst", dst,
					"cost", best.Cost, "nh", best.Nh, "was", cur.Cost)
			}
			a.table[dst] = best
			changed = true
		}
	}
	return changed
}

// neighbourCost is the neighbour's advertised cost to dst. Before the
// neighbour's first broadcast only its self entry is known.
func (a *Agent) neighbourCost(neigh, dst state.Node) state.Cost {
	vec, ok := a.inbox[neigh]
	if !ok {
		if dst == neigh {
			return 0
		}
		return state.INF
	}
	entry, ok := vec[dst]
	if !ok {
		return state.INF
	}
	return entry.Cost
}

// destinations is the union of the agent's known destinations and every
// destination advertised by a neighbour, sorted.
func (a *Agent) destinations() []state.Node {
	dests := make([]state.Node, 0, len(a.table))
	for dst := range a.table {
		dests = append(dests, dst)
	}
	for _, vec := range a.inbox {
		for dst := range vec {
			if !slices.Contains(dests, dst) {
				dests = append(dests, dst)
			}
		}
	}
	slices.Sort(dests)
	return dests
}
