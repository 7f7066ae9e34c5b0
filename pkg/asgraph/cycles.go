package asgraph

import "github.com/asgraph-sim/bgpsim/pkg/asys"

// AnyCustomerProviderCycles reports whether the customer-edge subgraph
// (the directed graph with an edge provider -> customer for every
// customer/provider relationship) contains a cycle. Per spec.md §4.6,
// reachability analysis assumes an acyclic customer-provider hierarchy;
// DetermineReachabilityOne/All run this check themselves and return
// util.ErrCyclicTopology when it reports a cycle.
func (g *Graph) AnyCustomerProviderCycles() bool {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[asys.ASID]int, len(g.nodes))

	var visit func(id asys.ASID) bool
	visit = func(id asys.ASID) bool {
		switch state[id] {
		case visiting:
			return true
		case done:
			return false
		}
		state[id] = visiting
		a := g.nodes[id]
		for n, rel := range a.Neighbors {
			if rel == asys.Customer {
				if visit(n.ID) {
					return true
				}
			}
		}
		state[id] = done
		return false
	}

	for id := range g.nodes {
		if state[id] == unvisited && visit(id) {
			return true
		}
	}
	return false
}
