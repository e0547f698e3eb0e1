package state

// MockCfg is a small weighted network used across tests. The cheapest
// bob -> ada path is bob -> jeb -> kat -> ada at cost 18.
func MockCfg() NetworkCfg {
	return NetworkCfg{
		Name:  "mock",
		Nodes: []Node{"bob", "jeb", "kat", "eve", "ada"},
		Links: []LinkCfg{
			{"bob", "jeb", 7},
			{"bob", "kat", 9},
			{"bob", "eve", 100},
			{"jeb", "kat", 1},
			{"kat", "ada", 10},
			{"kat", "eve", 3},
			{"eve", "ada", 8},
		},
	}
}

// MockTopology builds MockCfg, panicking on error. Tests only.
func MockTopology() *Topology {
	cfg := MockCfg()
	topo, err := cfg.BuildTopology()
	if err != nil {
		panic(err)
	}
	return topo
}
