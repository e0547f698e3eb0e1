package impl

import (
	"testing"

	"github.com/RMO1749/distvec/state"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newMockSim(t *testing.T) *Coordinator {
	t.Helper()
	cfg := state.MockCfg()
	topo, err := cfg.BuildTopology()
	require.NoError(t, err)
	return NewCoordinator(topo, testLogger())
}

func TestRunToConvergenceMock(t *testing.T) {
	sim := newMockSim(t)
	assert.Equal(t, Idle, sim.Phase())

	rep := sim.RunToConvergence(0)
	assert.True(t, rep.Converged)
	assert.Greater(t, rep.Rounds, uint64(1))
	assert.NotEqual(t, uuid.Nil, rep.RunId)
	assert.Equal(t, Stable, sim.Phase())

	bob, err := sim.Table("bob")
	require.NoError(t, err)
	assert.Equal(t, state.Entry{Cost: 7, Nh: "jeb"}, bob["jeb"])
	assert.Equal(t, state.Entry{Cost: 8, Nh: "jeb"}, bob["kat"])
	assert.Equal(t, state.Entry{Cost: 11, Nh: "jeb"}, bob["eve"])
	assert.Equal(t, state.Entry{Cost: 18, Nh: "jeb"}, bob["ada"])

	ada, err := sim.Table("ada")
	require.NoError(t, err)
	assert.Equal(t, state.Entry{Cost: 18, Nh: "kat"}, ada["bob"])

	_, err = sim.Table("nope")
	assert.ErrorIs(t, err, state.ErrInvalidTopologyEdit)
}

func TestSelfDistanceInvariant(t *testing.T) {
	sim := newMockSim(t)
	for {
		res := sim.RunSingleStep()
		for id, vec := range sim.Tables() {
			assert.Equal(t, state.Entry{Cost: 0, Nh: ""}, vec[id], "node %s round %d", id, res.Round)
		}
		if !res.Changed {
			break
		}
	}
}

func TestMonotoneNonIncrease(t *testing.T) {
	sim := newMockSim(t)
	prev := sim.Tables()
	for {
		res := sim.RunSingleStep()
		cur := sim.Tables()
		for id, vec := range cur {
			for dst, e := range vec {
				assert.LessOrEqual(t, e.Cost, prev[id][dst].Cost,
					"cost increased for %s -> %s in round %d", id, dst, res.Round)
			}
		}
		prev = cur
		if !res.Changed {
			break
		}
	}
}

func TestConvergenceDeterminism(t *testing.T) {
	first := newMockSim(t)
	second := newMockSim(t)

	repA := first.RunToConvergence(0)
	repB := second.RunToConvergence(0)

	assert.Equal(t, repA.Rounds, repB.Rounds)
	if diff := cmp.Diff(first.Tables(), second.Tables()); diff != "" {
		t.Errorf("final tables differ between runs (-first +second):\n%s", diff)
	}
}

func TestSingleStepReportsChanges(t *testing.T) {
	sim := newMockSim(t)

	res := sim.RunSingleStep()
	assert.Equal(t, uint64(1), res.Round)
	assert.True(t, res.Changed)
	assert.NotEmpty(t, res.ChangedNodes)
	assert.Equal(t, Running, sim.Phase())

	for res.Changed {
		res = sim.RunSingleStep()
	}
	assert.Equal(t, Stable, sim.Phase())

	// a stable network stays stable
	res = sim.RunSingleStep()
	assert.False(t, res.Changed)
	assert.Empty(t, res.ChangedNodes)
}

func TestUpdateLinkValidation(t *testing.T) {
	sim := newMockSim(t)

	_, err := sim.UpdateLink("bob", "nope", 3)
	assert.ErrorIs(t, err, state.ErrInvalidTopologyEdit)

	_, err = sim.UpdateLink("bob", "jeb", 0)
	assert.ErrorIs(t, err, state.ErrInvalidTopologyEdit)

	_, err = sim.UpdateLink("bob", "bob", 3)
	assert.ErrorIs(t, err, state.ErrInvalidTopologyEdit)
}

func TestUpdateLinkConfirmation(t *testing.T) {
	sim := newMockSim(t)

	change, err := sim.UpdateLink("jeb", "bob", 3)
	require.NoError(t, err)
	assert.Equal(t, state.Cost(7), change.OldCost)
	assert.Equal(t, state.Cost(3), change.NewCost)
	assert.Equal(t, []state.Node{"jeb", "bob"}, change.Affected)

	// direct entries of both endpoints are reinitialized immediately
	bob, err := sim.Table("bob")
	require.NoError(t, err)
	assert.Equal(t, state.Entry{Cost: 3, Nh: "jeb"}, bob["jeb"])
	jeb, err := sim.Table("jeb")
	require.NoError(t, err)
	assert.Equal(t, state.Entry{Cost: 3, Nh: "bob"}, jeb["bob"])
}

func TestLinkCostDecreaseScenario(t *testing.T) {
	// a reaches e via b at cost 8; the alternate path through c costs
	// far more, so c and d never route through the b-e edge
	cfg := state.NetworkCfg{
		Nodes: []state.Node{"a", "b", "c", "d", "e"},
		Links: []state.LinkCfg{
			{A: "a", B: "b", Cost: 1},
			{A: "b", B: "e", Cost: 7},
			{A: "a", B: "c", Cost: 6},
			{A: "c", B: "e", Cost: 9},
			{A: "c", B: "d", Cost: 1},
		},
	}
	topo, err := cfg.BuildTopology()
	require.NoError(t, err)
	sim := NewCoordinator(topo, testLogger())

	before := sim.RunToConvergence(0)
	require.True(t, before.Converged)
	aTable, err := sim.Table("a")
	require.NoError(t, err)
	require.Equal(t, state.Entry{Cost: 8, Nh: "b"}, aTable["e"])

	cBefore, err := sim.Table("c")
	require.NoError(t, err)
	dBefore, err := sim.Table("d")
	require.NoError(t, err)

	_, err = sim.UpdateLink("b", "e", 4)
	require.NoError(t, err)

	// only entries reachable through the changed edge move; c and d are
	// untouched in the first round after the edit
	res := sim.RunSingleStep()
	assert.True(t, res.Changed)
	assert.ElementsMatch(t, []state.Node{"a", "e"}, res.ChangedNodes)
	dAfter, err := sim.Table("d")
	require.NoError(t, err)
	assert.Equal(t, dBefore, dAfter)

	after := sim.RunToConvergence(0)
	require.True(t, after.Converged)
	assert.LessOrEqual(t, after.Rounds+1, before.Rounds,
		"re-convergence after a local decrease should not take longer than the initial run")

	aTable, err = sim.Table("a")
	require.NoError(t, err)
	assert.Equal(t, state.Entry{Cost: 5, Nh: "b"}, aTable["e"])

	// nodes not routing through the edited edge keep their tables
	cAfter, err := sim.Table("c")
	require.NoError(t, err)
	assert.Equal(t, cBefore, cAfter)
	dFinal, err := sim.Table("d")
	require.NoError(t, err)
	assert.Equal(t, dBefore, dFinal)
}

func TestNonConvergenceGuard(t *testing.T) {
	defer goleak.VerifyNone(t)

	// a --1-- b --1-- c; severing b-c leaves no path to c, and a and b
	// count to infinity off each other's stale routes
	cfg := state.NetworkCfg{
		Nodes: []state.Node{"a", "b", "c"},
		Links: []state.LinkCfg{
			{A: "a", B: "b", Cost: 1},
			{A: "b", B: "c", Cost: 1},
		},
	}
	topo, err := cfg.BuildTopology()
	require.NoError(t, err)
	sim := NewCoordinator(topo, testLogger())

	rep := sim.RunToConvergence(0)
	require.True(t, rep.Converged)

	_, err = sim.UpdateLink("b", "c", state.INF)
	require.NoError(t, err)

	rep = sim.RunToConvergence(30)
	assert.False(t, rep.Converged)
	assert.Equal(t, uint64(30), rep.Rounds)

	// the partial state is still inspectable, and the stale route has
	// been climbing instead of resolving
	aTable, err := sim.Table("a")
	require.NoError(t, err)
	assert.Greater(t, aTable["c"].Cost, state.Cost(2))
	assert.Less(t, aTable["c"].Cost, state.INF)
}

func TestIsolatedNodeSimulation(t *testing.T) {
	cfg := state.NetworkCfg{
		Nodes: []state.Node{"a", "b", "x"},
		Links: []state.LinkCfg{{A: "a", B: "b", Cost: 1}},
	}
	topo, err := cfg.BuildTopology()
	require.NoError(t, err)
	sim := NewCoordinator(topo, testLogger())

	rep := sim.RunToConvergence(0)
	assert.True(t, rep.Converged)

	x, err := sim.Table("x")
	require.NoError(t, err)
	assert.Equal(t, state.Entry{Cost: 0, Nh: ""}, x["x"])
	assert.Equal(t, state.Entry{Cost: state.INF, Nh: ""}, x["a"])
	assert.Equal(t, state.Entry{Cost: state.INF, Nh: ""}, x["b"])

	a, err := sim.Table("a")
	require.NoError(t, err)
	assert.Equal(t, state.Entry{Cost: state.INF, Nh: ""}, a["x"])
}
