// Package asys implements the AS node and route types that make up the
// routing substrate: the commercial relationship model, the immutable
// Route record, and the AS node that owns a routing table and exchanges
// routes through a pluggable policy.
package asys

// ASID identifies an Autonomous System. A 32-bit unsigned range is
// sufficient for public ASNs, so ASID is a uint32.
type ASID uint32

// Relation is a commercial relationship between two ASes, always stated
// from the local AS's point of view.
type Relation int

const (
	// Customer means the neighbor is a customer of this AS: this AS is the
	// customer's provider.
	Customer Relation = iota
	// Peer means the neighbor and this AS settlement-free peer.
	Peer
	// Provider means the neighbor is a provider of this AS.
	Provider
)

// String returns the lowercase relation name, used in log fields and
// CLI table output.
func (r Relation) String() string {
	switch r {
	case Customer:
		return "customer"
	case Peer:
		return "peer"
	case Provider:
		return "provider"
	default:
		return "unknown"
	}
}

// Inverse returns the relation the neighbor sees looking back at this AS.
// Customer and Provider invert into each other; Peer is symmetric.
func (r Relation) Inverse() Relation {
	switch r {
	case Customer:
		return Provider
	case Provider:
		return Customer
	default:
		return Peer
	}
}

// AllRelations enumerates the three relation values, in a stable order
// used wherever callers need to iterate every relation (e.g. forward-to
// decisions in the default policy).
var AllRelations = [3]Relation{Customer, Peer, Provider}
