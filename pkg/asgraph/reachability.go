package asgraph

import (
	"github.com/asgraph-sim/bgpsim/pkg/asys"
	"github.com/asgraph-sim/bgpsim/pkg/cache"
	"github.com/asgraph-sim/bgpsim/pkg/metrics"
	"github.com/asgraph-sim/bgpsim/pkg/util"
)

// reachNode is one side of the auxiliary bipartite DAG used to compute
// reachability: every AS gets an 'l' (left) and an 'r' (right) node, with
// an edge l->r for itself. A customer edge adds r(provider) -> r(customer)
// (the path descends from provider to customer and stays on the right);
// a peer edge adds l(peer) -> r(neighbor); a provider edge adds
// l(as) -> l(neighbor) (reachability climbs further up still on the
// left). This mirrors _build_reachability_graph in the system this
// simulator's routing semantics were modeled on.
type reachNode struct {
	id    asys.ASID
	right bool
}

// buildReachabilityGraph returns, for every node, its outgoing edges and
// the index assigned to each node (for bitset positions).
func (g *Graph) buildReachabilityGraph() (nodes []reachNode, index map[reachNode]int, out [][]int) {
	ids := g.IDs()
	nodes = make([]reachNode, 0, len(ids)*2)
	index = make(map[reachNode]int, len(ids)*2)
	for _, id := range ids {
		l := reachNode{id, false}
		r := reachNode{id, true}
		index[l] = len(nodes)
		nodes = append(nodes, l)
		index[r] = len(nodes)
		nodes = append(nodes, r)
	}

	out = make([][]int, len(nodes))
	addEdge := func(from, to reachNode) {
		fi := index[from]
		out[fi] = append(out[fi], index[to])
	}
	for _, id := range ids {
		addEdge(reachNode{id, false}, reachNode{id, true})
	}
	for _, id := range ids {
		a := g.nodes[id]
		for n, rel := range a.Neighbors {
			switch rel {
			case asys.Customer:
				addEdge(reachNode{id, true}, reachNode{n.ID, true})
			case asys.Peer:
				addEdge(reachNode{id, false}, reachNode{n.ID, true})
			case asys.Provider:
				addEdge(reachNode{id, false}, reachNode{n.ID, false})
			}
		}
	}
	return nodes, index, out
}

// DetermineReachabilityAll returns, for every AS, the number of ASes
// (including itself) that can reach it under valley-free export rules.
// It returns util.ErrCyclicTopology if the customer-provider subgraph is
// cyclic, since the topological propagation below assumes a DAG.
func (g *Graph) DetermineReachabilityAll(c cache.ReachabilityCache) (map[asys.ASID]int, error) {
	if c == nil {
		c = cache.NoopCache{}
	}
	if g.AnyCustomerProviderCycles() {
		return nil, util.NewCyclicTopologyError("determine_reachability_all")
	}

	reg := metrics.Get()
	fingerprint := g.fingerprint()
	if cached, ok, err := c.Get(fingerprint); err == nil && ok {
		reg.ReachabilityCache.WithLabelValues("hit").Inc()
		return cached, nil
	} else if err != nil {
		util.WithOperation("determine_reachability_all").WithField("error", err).Warn("cache lookup failed")
	} else {
		reg.ReachabilityCache.WithLabelValues("miss").Inc()
	}

	nodes, index, out := g.buildReachabilityGraph()

	ids := g.IDs()
	pos := make(map[asys.ASID]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	inDegree := make([]int, len(nodes))
	for _, targets := range out {
		for _, t := range targets {
			inDegree[t]++
		}
	}

	reachableFrom := make([]*util.BitSet, len(nodes))
	for i, n := range nodes {
		reachableFrom[i] = util.NewBitSet(len(ids))
		if !n.right {
			reachableFrom[i].Set(pos[n.id])
		}
	}

	queue := make([]int, 0, len(nodes))
	for i, d := range inDegree {
		if d == 0 {
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, next := range out[n] {
			reachableFrom[next].Union(reachableFrom[n])
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	result := make(map[asys.ASID]int, len(g.nodes))
	for id := range g.nodes {
		r := index[reachNode{id, true}]
		result[id] = reachableFrom[r].Len()
	}

	reg.ReachabilityRuns.Inc()
	if err := c.Put(fingerprint, result); err != nil {
		util.WithOperation("determine_reachability_all").WithField("error", err).Warn("cache write failed")
	}
	return result, nil
}

// DetermineReachabilityOne returns how many ASes (including itself) can
// reach as_id. It is defined as DetermineReachabilityAll()[as_id] and
// exists only as a convenience for single-AS queries.
func (g *Graph) DetermineReachabilityOne(id asys.ASID, c cache.ReachabilityCache) (int, error) {
	all, err := g.DetermineReachabilityAll(c)
	if err != nil {
		return 0, err
	}
	return all[id], nil
}

// fingerprint derives a cache key from the graph's current edge set.
func (g *Graph) fingerprint() string {
	var edges [][3]int64
	seen := make(map[[2]asys.ASID]bool)
	for id, a := range g.nodes {
		for n, rel := range a.Neighbors {
			key := [2]asys.ASID{id, n.ID}
			rkey := [2]asys.ASID{n.ID, id}
			if seen[key] || seen[rkey] {
				continue
			}
			seen[key] = true

			var lo, hi asys.ASID
			var code int64
			switch rel {
			case asys.Peer:
				lo, hi, code = id, n.ID, 0
				if hi < lo {
					lo, hi = hi, lo
				}
			case asys.Customer:
				lo, hi, code = id, n.ID, -1 // id is provider, n is customer
			default: // asys.Provider
				lo, hi, code = n.ID, id, -1 // n is provider, id is customer
			}
			edges = append(edges, [3]int64{int64(lo), int64(hi), code})
		}
	}
	return cache.Fingerprint(edges)
}
