package asys

import "testing"

// acceptAllPolicy is a minimal stub used to unit test AS in isolation,
// without pulling in pkg/policy (which imports this package).
type acceptAllPolicy struct {
	preferNew bool
}

func (p acceptAllPolicy) Accept(r *Route) bool                 { return true }
func (p acceptAllPolicy) Prefer(current, new *Route) bool      { return p.preferNew }
func (p acceptAllPolicy) ForwardTo(r *Route, rel Relation) bool { return true }

func TestResetRoutingTableInstallsSelfRoute(t *testing.T) {
	a := NewAS(5, acceptAllPolicy{})
	a.RoutingTable[99] = &Route{Dest: 99}
	a.ResetRoutingTable()

	if len(a.RoutingTable) != 1 {
		t.Fatalf("len(RoutingTable) = %d, want 1", len(a.RoutingTable))
	}
	self, ok := a.Route(5)
	if !ok {
		t.Fatal("self-route missing after reset")
	}
	if len(self.Path) != 1 || self.Path[0] != a {
		t.Errorf("self-route path = %v, want [self]", self.Path)
	}
	if !self.Authenticated {
		t.Error("self-route should be authenticated")
	}
}

func TestOriginateRoute(t *testing.T) {
	target := NewAS(1, acceptAllPolicy{})
	target.BGPsecEnabled = true
	neighbor := NewAS(2, acceptAllPolicy{})

	r := target.OriginateRoute(neighbor)
	if r.Dest != 1 {
		t.Errorf("Dest = %d, want 1", r.Dest)
	}
	if len(r.Path) != 2 || r.Path[0] != target || r.Path[1] != neighbor {
		t.Errorf("Path = %v, want [target, neighbor]", r.Path)
	}
	if !r.Authenticated {
		t.Error("Authenticated should mirror origin's BGPsecEnabled")
	}
}

func TestForwardRouteAuthentication(t *testing.T) {
	origin := NewAS(1, acceptAllPolicy{})
	hop1 := NewAS(2, acceptAllPolicy{})
	hop2 := NewAS(3, acceptAllPolicy{})

	r := &Route{Dest: 1, Path: []*AS{origin, hop1}, Authenticated: true}

	hop2.BGPsecEnabled = false
	fwd := hop1.ForwardRoute(r, hop2)
	if fwd.Authenticated {
		t.Error("Authenticated should go false when next hop lacks BGPsec")
	}

	hop2.BGPsecEnabled = true
	fwd = hop1.ForwardRoute(r, hop2)
	if !fwd.Authenticated {
		t.Error("Authenticated should stay true when both sides run BGPsec")
	}

	if len(fwd.Path) != 3 || fwd.Path[2] != hop2 {
		t.Errorf("Path = %v, want original path + hop2", fwd.Path)
	}
	if fwd.Dest != r.Dest {
		t.Error("Dest must carry over unchanged")
	}
}

func TestLearnRouteRejectsSelfDestination(t *testing.T) {
	a := NewAS(1, acceptAllPolicy{})
	r := &Route{Dest: 1, Path: []*AS{a}}
	if out := a.LearnRoute(r); out != nil {
		t.Errorf("LearnRoute for self-destination returned %v, want nil", out)
	}
}

func TestLearnRouteInstallsAndForwards(t *testing.T) {
	origin := NewAS(1, acceptAllPolicy{})
	receiver := NewAS(2, acceptAllPolicy{preferNew: true})
	next := NewAS(3, acceptAllPolicy{})
	receiver.AddCustomer(next)

	r := origin.OriginateRoute(receiver)
	out := receiver.LearnRoute(r)

	installed, ok := receiver.Route(1)
	if !ok || installed != r {
		t.Fatal("route not installed")
	}
	if len(out) != 1 || out[0] != next {
		t.Errorf("LearnRoute forward targets = %v, want [next]", out)
	}
}

func TestLearnRouteRejectsWorseRoute(t *testing.T) {
	a := NewAS(2, acceptAllPolicy{preferNew: false})
	origin := NewAS(1, acceptAllPolicy{})
	first := origin.OriginateRoute(a)
	a.LearnRoute(first)

	other := NewAS(9, acceptAllPolicy{})
	second := a.ForwardRoute(first, other) // distinct route object, same dest
	second.Path = []*AS{origin, other, a}
	out := a.LearnRoute(second)
	if out != nil {
		t.Errorf("LearnRoute should reject a non-preferred route, got %v", out)
	}
	if installed, _ := a.Route(1); installed != first {
		t.Error("rejected route must not replace the installed one")
	}
}
