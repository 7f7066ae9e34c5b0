package asgraph

import (
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"

	"github.com/asgraph-sim/bgpsim/pkg/asys"
	"github.com/asgraph-sim/bgpsim/pkg/metrics"
	"github.com/asgraph-sim/bgpsim/pkg/util"
)

// HijackNHops forges a bad route to victim's address space, originated
// by attacker with n forged hops between them, and propagates it through
// the graph exactly like a real route (by forwarding it from attacker
// outward and running the same LearnRoute fixpoint). Per spec.md §4.4:
//
//   - n == 0: the forged path is just [attacker] — attacker claims to be
//     the origin itself. Both origin and path-end validation would catch
//     this, so both flags are set.
//   - n == 1: the forged path is [victim, attacker] — attacker claims to
//     be a direct neighbor of victim. Origin validation would pass (the
//     path correctly ends at victim) but path-end validation would not
//     (attacker is not actually adjacent to victim), so only
//     PathEndInvalid is set.
//   - n >= 2: n-1 other ASes are sampled uniformly at random (without
//     replacement, excluding victim and attacker) to pad the forged path
//     out to the requested length. Neither flag is set — nothing about
//     this path is detectably wrong by origin or path-end validation
//     alone; only BGPsec path authentication (which this route also
//     fails, via Authenticated: false) could catch it.
//
// rng must be non-nil; callers supply it so hijack sampling is
// reproducible given a fixed seed (see pkg/loader's WithSeed).
func (g *Graph) HijackNHops(victim, attacker *asys.AS, n int, rng *rand.Rand) error {
	if n < 0 {
		return util.NewInvalidArgumentError("hijack_n_hops", "n must be non-negative")
	}

	var path []*asys.AS
	switch {
	case n == 0:
		path = []*asys.AS{attacker}
	case n == 1:
		path = []*asys.AS{victim, attacker}
	default:
		pool := make([]*asys.AS, 0, len(g.nodes))
		for _, a := range g.nodes {
			if a != victim && a != attacker {
				pool = append(pool, a)
			}
		}
		if len(pool) < n-1 {
			return util.NewInvalidArgumentError("hijack_n_hops", "not enough ASes to sample "+strconv.Itoa(n-1)+" middle hops")
		}
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		middle := pool[:n-1]

		path = make([]*asys.AS, 0, n+1)
		path = append(path, victim)
		path = append(path, middle...)
		path = append(path, attacker)
	}

	badRoute := &asys.Route{
		Dest:           victim.ID,
		Path:           path,
		OriginInvalid:  n == 0,
		PathEndInvalid: n <= 1,
		Authenticated:  false,
	}

	log := util.WithOperation("hijack_n_hops").WithFields(map[string]interface{}{
		"victim":   victim.ID,
		"attacker": attacker.ID,
		"hops":     n,
		"run":      uuid.NewString(),
	})
	log.Info("injecting hijack route")
	metrics.Get().HijacksInjected.WithLabelValues(strconv.Itoa(n)).Inc()

	queue := make([]*asys.Route, 0, len(attacker.Neighbors))
	for neighbor := range attacker.Neighbors {
		queue = append(queue, attacker.ForwardRoute(badRoute, neighbor))
	}

	for len(queue) > 0 {
		route := queue[0]
		queue = queue[1:]

		receiver := route.Final()
		for _, neighbor := range receiver.LearnRoute(route) {
			queue = append(queue, receiver.ForwardRoute(route, neighbor))
		}
	}
	return nil
}
