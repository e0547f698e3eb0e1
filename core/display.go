package core

import (
	"fmt"
	"strings"

	"github.com/RMO1749/distvec/impl"
	"github.com/RMO1749/distvec/state"
)

// RenderTable formats one node's distance vector as
// (source, destination, cost, next hop) rows.
func RenderTable(id state.Node, vec state.Vector) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Node %s\n", id)
	fmt.Fprintf(&b, "  %-12s %-8s %s\n", "destination", "cost", "next hop")
	for _, dst := range vec.Destinations() {
		e := vec[dst]
		nh := string(e.Nh)
		if nh == "" {
			if dst == id {
				nh = "self"
			} else {
				nh = "-"
			}
		}
		fmt.Fprintf(&b, "  %-12s %-8s %s\n", dst, e.Cost, nh)
	}
	return b.String()
}

// RenderTables formats every node's table in node order.
func RenderTables(c *impl.Coordinator) string {
	var b strings.Builder
	tables := c.Tables()
	for _, id := range c.Nodes() {
		b.WriteString(RenderTable(id, tables[id]))
	}
	return b.String()
}

func RenderStep(res impl.StepResult) string {
	if !res.Changed {
		return fmt.Sprintf("round %d: stable, no tables changed", res.Round)
	}
	names := make([]string, 0, len(res.ChangedNodes))
	for _, n := range res.ChangedNodes {
		names = append(names, string(n))
	}
	return fmt.Sprintf("round %d: %d tables changed (%s)", res.Round, len(res.ChangedNodes), strings.Join(names, ", "))
}

func RenderReport(rep impl.Report) string {
	if rep.Converged {
		return fmt.Sprintf("reached a stable state in %d rounds (%.3fs, run %s)",
			rep.Rounds, rep.Elapsed.Seconds(), rep.RunId)
	}
	return fmt.Sprintf("did not converge within %d rounds (%.3fs, run %s)",
		rep.Rounds, rep.Elapsed.Seconds(), rep.RunId)
}

func RenderLinkChange(ch impl.LinkChange) string {
	if ch.NewCost == state.INF {
		return fmt.Sprintf("link %s <-> %s removed (was %s); affected nodes: %s, %s",
			ch.Src, ch.Dst, ch.OldCost, ch.Src, ch.Dst)
	}
	return fmt.Sprintf("link %s <-> %s adjusted from %s to %s; affected nodes: %s, %s",
		ch.Src, ch.Dst, ch.OldCost, ch.NewCost, ch.Src, ch.Dst)
}
