package state

// DefaultRoundsPerNode scales the default run-to-convergence budget with
// the topology size.
const DefaultRoundsPerNode = 50

var (
	DBG_log_relax       = false
	DBG_log_route_table = false
)
