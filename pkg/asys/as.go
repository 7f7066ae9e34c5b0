package asys

import "strconv"

// AS is a single Autonomous System node: its commercial relationships,
// its security posture, and its routing table. AS nodes are created once
// at graph construction and live for the graph's lifetime; the only
// mutable state after construction is RoutingTable, written only by
// whichever call (FindRoutesTo, HijackNHops) currently drives propagation.
type AS struct {
	ID     ASID
	Policy Policy

	// Neighbors maps each neighboring AS to the relation this AS holds
	// toward it. Every edge is mirrored on the other endpoint with the
	// inverse relation — an invariant enforced at graph construction time,
	// never by AS itself.
	Neighbors map[*AS]Relation

	// Security posture. BGPsecEnabled feeds Route.Authenticated;
	// PublishesRPKI and PublishesPathEnd are recorded but not read by route
	// construction or by policy.Default.
	PublishesRPKI     bool
	PublishesPathEnd  bool
	BGPsecEnabled     bool

	// RoutingTable maps destination AS_ID to the currently selected Route.
	// For every entry (d, r): r.Dest == d and r.Path's last element is
	// this AS. A self-route is always present after ResetRoutingTable.
	RoutingTable map[ASID]*Route
}

// NewAS constructs an AS node with an empty neighbor set and a freshly
// reset routing table. Callers (normally pkg/asgraph's builder) are
// responsible for wiring Neighbors afterward.
func NewAS(id ASID, policy Policy) *AS {
	a := &AS{
		ID:        id,
		Policy:    policy,
		Neighbors: make(map[*AS]Relation),
	}
	a.ResetRoutingTable()
	return a
}

func (a *AS) idString() string {
	return strconv.FormatUint(uint64(a.ID), 10)
}

// NeighborCountsByRelation tallies neighbors per relation — used by
// IdentifyTopISPs (customer count) and CLI summaries.
func (a *AS) NeighborCountsByRelation() map[Relation]int {
	counts := map[Relation]int{Customer: 0, Peer: 0, Provider: 0}
	for _, rel := range a.Neighbors {
		counts[rel]++
	}
	return counts
}

// Providers returns the AS_IDs of this AS's providers.
func (a *AS) Providers() []ASID {
	var ids []ASID
	for n, rel := range a.Neighbors {
		if rel == Provider {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// AddPeer, AddCustomer and AddProvider set a one-directional relation
// entry. Graph construction always calls the matching inverse on the
// other endpoint so Neighbors stays symmetric.
func (a *AS) AddPeer(n *AS)     { a.Neighbors[n] = Peer }
func (a *AS) AddCustomer(n *AS) { a.Neighbors[n] = Customer }
func (a *AS) AddProvider(n *AS) { a.Neighbors[n] = Provider }

// Relation returns the relation this AS holds toward n, and whether n is
// a neighbor at all.
func (a *AS) Relation(n *AS) (Relation, bool) {
	rel, ok := a.Neighbors[n]
	return rel, ok
}

// Route returns the currently installed route for destID, if any.
func (a *AS) Route(destID ASID) (*Route, bool) {
	r, ok := a.RoutingTable[destID]
	return r, ok
}

// ForceRoute installs r directly, bypassing the policy. Nothing in the
// simulator calls it: pkg/asgraph's hijack implementation calls
// ForwardRoute on the attacker without installing the forged route. It
// remains for setting up a table by hand.
func (a *AS) ForceRoute(r *Route) {
	a.RoutingTable[r.Dest] = r
}

// OriginateRoute constructs the first-hop route this AS announces to
// nextHop: dest is this AS, and the path already contains nextHop so
// that on receipt, nextHop is immediately Final().
func (a *AS) OriginateRoute(nextHop *AS) *Route {
	return &Route{
		Dest:           a.ID,
		Path:           []*AS{a, nextHop},
		OriginInvalid:  false,
		PathEndInvalid: false,
		Authenticated:  a.BGPsecEnabled,
	}
}

// ForwardRoute constructs the route this AS would send to nextHop after
// having learned r: the path gains nextHop, Dest/OriginInvalid/
// PathEndInvalid carry over unchanged, and Authenticated becomes true
// only if both r was authenticated and nextHop also runs BGPsec.
func (a *AS) ForwardRoute(r *Route, nextHop *AS) *Route {
	path := make([]*AS, len(r.Path)+1)
	copy(path, r.Path)
	path[len(r.Path)] = nextHop
	return &Route{
		Dest:           r.Dest,
		Path:           path,
		OriginInvalid:  r.OriginInvalid,
		PathEndInvalid: r.PathEndInvalid,
		Authenticated:  r.Authenticated && nextHop.BGPsecEnabled,
	}
}

// LearnRoute runs r through this AS's policy and, if accepted and
// preferred over whatever is currently installed, installs it and
// returns the neighbors it should be forwarded to next. An empty result
// is normal control flow — rejection, a loop back to self, or losing to
// the current route are not errors.
func (a *AS) LearnRoute(r *Route) []*AS {
	if r.Dest == a.ID {
		return nil
	}
	if !a.Policy.Accept(r) {
		return nil
	}
	if current, ok := a.RoutingTable[r.Dest]; ok && !a.Policy.Prefer(current, r) {
		return nil
	}

	a.RoutingTable[r.Dest] = r

	forward := make(map[Relation]bool, 3)
	for _, rel := range AllRelations {
		forward[rel] = a.Policy.ForwardTo(r, rel)
	}

	var out []*AS
	for n, rel := range a.Neighbors {
		if forward[rel] {
			out = append(out, n)
		}
	}
	return out
}

// ResetRoutingTable clears the table and reinstalls the self-route: a
// length-1 path to this AS, authenticated by definition since it never
// crosses a hop.
func (a *AS) ResetRoutingTable() {
	a.RoutingTable = map[ASID]*Route{
		a.ID: {
			Dest:           a.ID,
			Path:           []*AS{a},
			OriginInvalid:  false,
			PathEndInvalid: false,
			Authenticated:  true,
		},
	}
}
