// Package asgraph owns the AS graph: construction from an edge list,
// routing-table lifecycle, the route-propagation and hijack-injection
// engines, and the reachability/cycle analyses that run independently of
// any specific propagation result.
package asgraph

import (
	"sort"

	"github.com/asgraph-sim/bgpsim/pkg/asys"
	"github.com/asgraph-sim/bgpsim/pkg/policy"
)

// Edge is an undirected relationship edge as produced by pkg/loader: a
// peer edge has Customer == 0 (both sides peer); a customer/provider
// edge names which endpoint is the customer.
type Edge struct {
	A, B     asys.ASID
	Customer asys.ASID // 0 (and IsPeer true) when this is a peer edge
	IsPeer   bool
}

// Graph owns every AS node in the topology. Edges are implicit in each
// node's Neighbors map; the graph itself holds no separate edge set once
// construction finishes.
type Graph struct {
	nodes map[asys.ASID]*asys.AS
}

// New builds a Graph from a node ID list and an edge list, wiring every
// edge symmetrically (customer on one side always pairs with provider on
// the other; peer pairs with peer). All nodes share the same Policy
// instance, per spec.md §3 ("policy: reference to a routing policy
// object shared across ASes").
func New(ids []asys.ASID, edges []Edge, pol asys.Policy) *Graph {
	if pol == nil {
		pol = policy.Default{}
	}
	g := &Graph{nodes: make(map[asys.ASID]*asys.AS, len(ids))}
	for _, id := range ids {
		g.nodes[id] = asys.NewAS(id, pol)
	}
	for _, e := range edges {
		a, aok := g.nodes[e.A]
		b, bok := g.nodes[e.B]
		if !aok || !bok {
			continue
		}
		if e.IsPeer {
			a.AddPeer(b)
			b.AddPeer(a)
			continue
		}
		if e.Customer == e.A {
			a.AddProvider(b)
			b.AddCustomer(a)
		} else {
			a.AddCustomer(b)
			b.AddProvider(a)
		}
	}
	return g
}

// GetAsys returns the AS node with the given ID, or (nil, false) if it is
// not in the graph. A lookup miss is an absence, not an error — per
// spec.md §7's UnknownAS contract.
func (g *Graph) GetAsys(id asys.ASID) (*asys.AS, bool) {
	a, ok := g.nodes[id]
	return a, ok
}

// Len returns the number of AS nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// IDs returns every AS_ID in the graph, sorted ascending. Sorted order
// makes CLI output and tests deterministic; spec.md does not require any
// particular iteration order from the graph itself.
func (g *Graph) IDs() []asys.ASID {
	ids := make([]asys.ASID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// IdentifyTopISPs returns the n ASes with the most customer neighbors,
// sorted descending by customer count. Ties fall back to ascending
// AS_ID for determinism.
func (g *Graph) IdentifyTopISPs(n int) []*asys.AS {
	type scored struct {
		a     *asys.AS
		count int
	}
	all := make([]scored, 0, len(g.nodes))
	for _, a := range g.nodes {
		all = append(all, scored{a, a.NeighborCountsByRelation()[asys.Customer]})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].a.ID < all[j].a.ID
	})
	if n > len(all) {
		n = len(all)
	}
	out := make([]*asys.AS, n)
	for i := 0; i < n; i++ {
		out[i] = all[i].a
	}
	return out
}

// GetProviders returns the union of providers of every AS in ids, as a
// deduplicated, sorted slice.
func (g *Graph) GetProviders(ids []asys.ASID) []asys.ASID {
	seen := make(map[asys.ASID]struct{})
	for _, id := range ids {
		a, ok := g.nodes[id]
		if !ok {
			continue
		}
		for _, p := range a.Providers() {
			seen[p] = struct{}{}
		}
	}
	out := make([]asys.ASID, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ClearRoutingTables resets every AS's routing table to just its
// self-route, discarding whatever a prior FindRoutesTo/HijackNHops run
// installed.
func (g *Graph) ClearRoutingTables() {
	for _, a := range g.nodes {
		a.ResetRoutingTable()
	}
}
