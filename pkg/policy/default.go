// Package policy provides routing policy implementations satisfying
// asys.Policy. Default is the minimum valley-free policy spec.md
// requires; callers needing RPKI/path-end/BGPsec enforcement or custom
// tie-breaks compose their own Policy around the same three predicates.
package policy

import "github.com/asgraph-sim/bgpsim/pkg/asys"

// Default is the baseline routing policy: reject routes that loop back
// through the receiver, prefer the shorter path (tie-broken by relation
// rank then by lower next-hop AS_ID), and export under the standard
// valley-free rule — routes learned from a customer go to everyone,
// routes learned from a peer or provider go only to customers.
type Default struct{}

// relationRank orders next-hop relations for the tie-break: customer
// beats peer beats provider, matching spec.md §4.1.
func relationRank(r asys.Relation) int {
	switch r {
	case asys.Customer:
		return 0
	case asys.Peer:
		return 1
	default:
		return 2
	}
}

// Accept rejects any route whose path already contains the receiver —
// the one loop-prevention rule spec.md requires of every policy.
func (Default) Accept(r *asys.Route) bool {
	final := r.Final()
	for _, a := range r.Path[:len(r.Path)-1] {
		if a.ID == final.ID {
			return false
		}
	}
	return true
}

// Prefer implements the default total order: shorter path wins; equal
// length breaks on the next hop's relation rank, then on the next hop's
// AS_ID (lower wins), deterministically.
func (Default) Prefer(current, new *asys.Route) bool {
	if new.Length() != current.Length() {
		return new.Length() < current.Length()
	}

	newNextHop := nextHopRelation(new)
	curNextHop := nextHopRelation(current)
	newRank := relationRank(newNextHop.relation)
	curRank := relationRank(curNextHop.relation)
	if newRank != curRank {
		return newRank < curRank
	}
	return newNextHop.id < curNextHop.id
}

// ForwardTo implements the standard valley-free export rule: a route
// learned from a customer may go to any relation; a route learned from a
// peer or provider may only go to customers.
func (Default) ForwardTo(r *asys.Route, relation asys.Relation) bool {
	if r.Length() < 2 {
		// Self-route: never re-exported (FindRoutesTo never calls
		// ForwardTo on it, but a defensive false keeps the contract total).
		return false
	}
	learnedFrom := learnedFromRelation(r)
	if learnedFrom == asys.Customer {
		return true
	}
	return relation == asys.Customer
}

type nextHop struct {
	id       asys.ASID
	relation asys.Relation
}

// nextHopRelation returns the relation the route's receiver holds toward
// the AS it learned the route from (first_hop from the receiver's view).
func nextHopRelation(r *asys.Route) nextHop {
	receiver := r.Final()
	from := r.FirstHop()
	rel, _ := receiver.Relation(from)
	return nextHop{id: from.ID, relation: rel}
}

// learnedFromRelation returns the relation the route's receiver holds
// toward the AS that handed it the route — the basis for the valley-free
// export decision.
func learnedFromRelation(r *asys.Route) asys.Relation {
	return nextHopRelation(r).relation
}
