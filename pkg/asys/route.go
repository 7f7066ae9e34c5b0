package asys

import "strings"

// Route is an immutable description of a BGP path. Once constructed, none
// of its fields change; a forwarding step always produces a new Route
// rather than mutating an existing one.
type Route struct {
	// Dest is the destination AS_ID. Equal to the origin's ID for
	// legitimate routes; may differ under a hijack.
	Dest ASID
	// Path is the AS path from origin (index 0) to the current receiver
	// (last index). Accepted routes never repeat an AS.
	Path []*AS
	// OriginInvalid is true iff the origin is expected to publish an RPKI
	// record but does not.
	OriginInvalid bool
	// PathEndInvalid is true iff the first hop is expected to publish a
	// path-end record but does not.
	PathEndInvalid bool
	// Authenticated is true iff every AS on the path had BGPsec enabled
	// at the time it (re)signed the route.
	Authenticated bool
}

// Length returns the number of ASes on the path.
func (r *Route) Length() int {
	return len(r.Path)
}

// Origin returns the first AS on the path.
func (r *Route) Origin() *AS {
	return r.Path[0]
}

// FirstHop returns the second-to-last AS on the path. It is undefined
// (and will panic) when Length() < 2, matching the original's contract
// that first_hop has no meaning for a self-route.
func (r *Route) FirstHop() *AS {
	return r.Path[len(r.Path)-2]
}

// Final returns the last AS on the path: the AS that currently holds (or
// is about to learn) this route.
func (r *Route) Final() *AS {
	return r.Path[len(r.Path)-1]
}

// ContainsCycle reports whether any AS appears more than once on the path.
func (r *Route) ContainsCycle() bool {
	seen := make(map[ASID]struct{}, len(r.Path))
	for _, a := range r.Path {
		if _, ok := seen[a.ID]; ok {
			return true
		}
		seen[a.ID] = struct{}{}
	}
	return false
}

// Contains reports whether as appears anywhere on the path.
func (r *Route) Contains(id ASID) bool {
	for _, a := range r.Path {
		if a.ID == id {
			return true
		}
	}
	return false
}

// String renders the path as a comma-separated AS_ID list, with any set
// flags appended — used for debug logging and test failure messages.
func (r *Route) String() string {
	var b strings.Builder
	for i, a := range r.Path {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.idString())
	}
	var flags []string
	if r.OriginInvalid {
		flags = append(flags, "origin_invalid")
	}
	if r.PathEndInvalid {
		flags = append(flags, "path_end_invalid")
	}
	if r.Authenticated {
		flags = append(flags, "authenticated")
	}
	for _, f := range flags {
		b.WriteByte(' ')
		b.WriteString(f)
	}
	return b.String()
}
