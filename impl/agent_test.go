package impl

import (
	"io"
	"log/slog"
	"testing"

	"github.com/RMO1749/distvec/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustTopology(t *testing.T, cfg state.NetworkCfg) *state.Topology {
	t.Helper()
	topo, err := cfg.BuildTopology()
	require.NoError(t, err)
	return topo
}

func TestAgentInit(t *testing.T) {
	topo := state.MockTopology()
	a := NewAgent("bob", topo, testLogger())

	table := a.Table()
	assert.Equal(t, state.Entry{Cost: 0, Nh: ""}, table["bob"])
	assert.Equal(t, state.Entry{Cost: 7, Nh: "jeb"}, table["jeb"])
	assert.Equal(t, state.Entry{Cost: 9, Nh: "kat"}, table["kat"])
	assert.Equal(t, state.Entry{Cost: 100, Nh: "eve"}, table["eve"])
	assert.Equal(t, state.Entry{Cost: state.INF, Nh: ""}, table["ada"])
}

func TestAgentIsolatedNode(t *testing.T) {
	topo := mustTopology(t, state.NetworkCfg{
		Nodes: []state.Node{"a", "b", "x"},
		Links: []state.LinkCfg{{A: "a", B: "b", Cost: 1}},
	})
	a := NewAgent("x", topo, testLogger())

	table := a.Table()
	assert.Equal(t, state.Entry{Cost: 0, Nh: ""}, table["x"])
	assert.Equal(t, state.Entry{Cost: state.INF, Nh: ""}, table["a"])
	assert.Equal(t, state.Entry{Cost: state.INF, Nh: ""}, table["b"])

	// nothing to relax against, ever
	assert.False(t, a.Relax(topo))
}

func TestSendVectorIsSnapshot(t *testing.T) {
	topo := state.MockTopology()
	a := NewAgent("bob", topo, testLogger())

	vec := a.SendVector()
	vec["jeb"] = state.Entry{Cost: 1, Nh: "jeb"}

	assert.Equal(t, state.Entry{Cost: 7, Nh: "jeb"}, a.Table()["jeb"])
}

func TestTriangleRelaxation(t *testing.T) {
	// a --1-- b --2-- c, no direct a-c link
	topo := mustTopology(t, state.NetworkCfg{
		Nodes: []state.Node{"a", "b", "c"},
		Links: []state.LinkCfg{
			{A: "a", B: "b", Cost: 1},
			{A: "b", B: "c", Cost: 2},
		},
	})
	a := NewAgent("a", topo, testLogger())
	b := NewAgent("b", topo, testLogger())

	a.Deliver("b", b.SendVector())
	assert.True(t, a.Relax(topo))

	assert.Equal(t, state.Entry{Cost: 3, Nh: "b"}, a.Table()["c"])

	// relaxing again against the same vector is a no-op
	assert.False(t, a.Relax(topo))
}

func TestEqualCostCandidateDoesNotFlipNextHop(t *testing.T) {
	// b and c both reach d at the same total cost from a
	topo := mustTopology(t, state.NetworkCfg{
		Nodes: []state.Node{"a", "b", "c", "d"},
		Links: []state.LinkCfg{
			{A: "a", B: "b", Cost: 1},
			{A: "a", B: "c", Cost: 1},
			{A: "b", B: "d", Cost: 2},
			{A: "c", B: "d", Cost: 2},
		},
	})
	a := NewAgent("a", topo, testLogger())

	// c's offer arrives first and wins the route to d
	a.Deliver("c", state.Vector{
		"c": {Cost: 0, Nh: ""},
		"a": {Cost: 1, Nh: "a"},
		"d": {Cost: 2, Nh: "d"},
	})
	require.True(t, a.Relax(topo))
	require.Equal(t, state.Entry{Cost: 3, Nh: "c"}, a.Table()["d"])

	// b's equal-cost offer must not displace the incumbent next hop,
	// even though b sorts before c
	a.Deliver("b", state.Vector{
		"b": {Cost: 0, Nh: ""},
		"a": {Cost: 1, Nh: "a"},
		"d": {Cost: 2, Nh: "d"},
	})
	a.Relax(topo)
	assert.Equal(t, state.Entry{Cost: 3, Nh: "c"}, a.Table()["d"])
}
