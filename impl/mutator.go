package impl

import (
	"github.com/RMO1749/distvec/state"
)

// LinkChange is the confirmation payload of a link-cost edit, consumed
// by the display layer.
type LinkChange struct {
	Src      state.Node
	Dst      state.Node
	OldCost  state.Cost
	NewCost  state.Cost
	Affected []state.Node
}

// UpdateLink applies an external link-cost change between rounds. The
// cost must be positive, or state.INF to remove the link. Only the
// direct-cost entries of the two endpoints are reinitialized; their
// transitive entries stay stale until corrected by relaxation, exactly
// like a real distance-vector router reacting to a local link event.
func (c *Coordinator) UpdateLink(src, dst state.Node, newCost state.Cost) (LinkChange, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.topo.LinkCost(src, dst)
	if err := c.topo.SetLinkCost(src, dst, newCost); err != nil {
		return LinkChange{}, err
	}
	c.agents[src].ResetDirect(dst, newCost)
	c.agents[dst].ResetDirect(src, newCost)
	if c.phase == Stable {
		c.phase = Running
	}

	change := LinkChange{
		Src:      src,
		Dst:      dst,
		OldCost:  old,
		NewCost:  newCost,
		Affected: []state.Node{src, dst},
	}
	c.log.Info("link cost updated", "src", src, "dst", dst, "old", old, "new", newCost)
	return change, nil
}
