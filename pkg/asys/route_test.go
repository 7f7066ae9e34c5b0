package asys

import "testing"

func chain(t *testing.T, ids ...ASID) []*AS {
	t.Helper()
	var path []*AS
	for _, id := range ids {
		path = append(path, &AS{ID: id})
	}
	return path
}

func TestRouteAccessors(t *testing.T) {
	path := chain(t, 1, 2, 3)
	r := &Route{Dest: 1, Path: path}

	if got := r.Length(); got != 3 {
		t.Errorf("Length() = %d, want 3", got)
	}
	if got := r.Origin(); got.ID != 1 {
		t.Errorf("Origin() = %d, want 1", got.ID)
	}
	if got := r.FirstHop(); got.ID != 2 {
		t.Errorf("FirstHop() = %d, want 2", got.ID)
	}
	if got := r.Final(); got.ID != 3 {
		t.Errorf("Final() = %d, want 3", got.ID)
	}
}

func TestRouteContainsCycle(t *testing.T) {
	noCycle := &Route{Path: chain(t, 1, 2, 3)}
	if noCycle.ContainsCycle() {
		t.Error("ContainsCycle() = true for a simple path")
	}

	a := &AS{ID: 7}
	withCycle := &Route{Path: []*AS{a, {ID: 8}, a}}
	if !withCycle.ContainsCycle() {
		t.Error("ContainsCycle() = false for a repeated AS")
	}
}

func TestRouteContains(t *testing.T) {
	r := &Route{Path: chain(t, 1, 2, 3)}
	if !r.Contains(2) {
		t.Error("Contains(2) = false, want true")
	}
	if r.Contains(99) {
		t.Error("Contains(99) = true, want false")
	}
}

func TestRouteString(t *testing.T) {
	r := &Route{Path: chain(t, 1, 2, 3), Authenticated: true}
	if got, want := r.String(), "1,2,3 authenticated"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
