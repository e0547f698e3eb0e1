package impl

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/RMO1749/distvec/state"
	"github.com/google/uuid"
)

type Phase int

const (
	Idle Phase = iota
	Running
	Stable
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "IDLE"
	case Running:
		return "RUNNING"
	case Stable:
		return "STABLE"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// StepResult summarizes one round.
type StepResult struct {
	Round        uint64
	Changed      bool
	ChangedNodes []state.Node
}

// Report summarizes a run-to-convergence. A run that exhausts its round
// budget is a distinct outcome, not an error: Converged is false and the
// partial tables remain inspectable on the coordinator.
type Report struct {
	RunId     uuid.UUID
	Converged bool
	Rounds    uint64
	Elapsed   time.Duration
}

// Coordinator drives the round-synchronous simulation: every node
// broadcasts its vector, a barrier, every node relaxes, a barrier. The
// topology is read-shared during a round and mutated only through
// UpdateLink, which serializes with rounds on the coordinator's mutex.
type Coordinator struct {
	mu     sync.Mutex
	topo   *state.Topology
	agents map[state.Node]*Agent
	order  []state.Node
	bus    *Bus
	round  uint64
	phase  Phase
	log    *slog.Logger
}

func NewCoordinator(topo *state.Topology, log *slog.Logger) *Coordinator {
	agents := make(map[state.Node]*Agent)
	order := topo.Nodes()
	for _, id := range order {
		agents[id] = NewAgent(id, topo, log)
	}
	return &Coordinator{
		topo:   topo,
		agents: agents,
		order:  order,
		bus:    NewBus(topo, agents),
		phase:  Idle,
		log:    log,
	}
}

func (c *Coordinator) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *Coordinator) Round() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.round
}

// RunSingleStep advances exactly one round and returns control to the
// caller, who may inspect tables, adjust link costs, or stop.
func (c *Coordinator) RunSingleStep() StepResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step()
}

// RunToConvergence repeats rounds until a round produces zero changes
// anywhere, or maxRounds is exhausted. A maxRounds of zero applies
// DefaultRoundsPerNode per node, which bounds count-to-infinity when a
// severed link leaves no alternate path.
func (c *Coordinator) RunToConvergence(maxRounds uint64) Report {
	c.mu.Lock()
	defer c.mu.Unlock()

	if maxRounds == 0 {
		maxRounds = state.DefaultRoundsPerNode * uint64(len(c.order))
	}
	rep := Report{RunId: uuid.New()}
	start := time.Now()
	for rep.Rounds < maxRounds {
		res := c.step()
		rep.Rounds++
		if !res.Changed {
			rep.Converged = true
			break
		}
	}
	rep.Elapsed = time.Since(start)
	if rep.Converged {
		c.log.Info("converged", "run", rep.RunId, "rounds", rep.Rounds, "elapsed", rep.Elapsed)
	} else {
		c.log.Warn("did not converge within budget", "run", rep.RunId, "rounds", rep.Rounds, "elapsed", rep.Elapsed)
	}
	return rep
}

// step runs one round under c.mu: broadcast phase in sorted node order,
// then the relax phase with one worker per node joined by a barrier.
func (c *Coordinator) step() StepResult {
	c.round++
	c.phase = Running

	for _, id := range c.order {
		c.bus.Broadcast(id, c.agents[id].SendVector())
	}

	changed := make([]bool, len(c.order))
	var wg sync.WaitGroup
	for i, id := range c.order {
		wg.Add(1)
		go func(i int, a *Agent) {
			defer wg.Done()
			changed[i] = a.Relax(c.topo)
		}(i, c.agents[id])
	}
	wg.Wait()

	res := StepResult{Round: c.round}
	for i, id := range c.order {
		if changed[i] {
			res.Changed = true
			res.ChangedNodes = append(res.ChangedNodes, id)
		}
	}
	if !res.Changed {
		c.phase = Stable
	}
	c.log.Debug("round complete", "round", res.Round, "changed", res.ChangedNodes)
	c.dbgPrintTables()
	return res
}

// Table returns a snapshot of one node's distance vector.
func (c *Coordinator) Table(n state.Node) (state.Vector, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.agents[n]
	if !ok {
		return nil, fmt.Errorf("%w: node %s not defined", state.ErrInvalidTopologyEdit, n)
	}
	return a.Table(), nil
}

// Tables returns a snapshot of every node's distance vector.
func (c *Coordinator) Tables() map[state.Node]state.Vector {
	c.mu.Lock()
	defer c.mu.Unlock()
	tables := make(map[state.Node]state.Vector, len(c.agents))
	for id, a := range c.agents {
		tables[id] = a.Table()
	}
	return tables
}

func (c *Coordinator) Nodes() []state.Node {
	return c.order
}

func (c *Coordinator) dbgPrintTables() {
	if !state.DBG_log_route_table {
		return
	}
	for _, id := range c.order {
		c.log.Debug(fmt.Sprintf("%s: %s", id, c.agents[id].Table()))
	}
}
