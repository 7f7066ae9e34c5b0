package asgraph

import (
	"github.com/google/uuid"

	"github.com/asgraph-sim/bgpsim/pkg/asys"
	"github.com/asgraph-sim/bgpsim/pkg/metrics"
	"github.com/asgraph-sim/bgpsim/pkg/util"
)

// FindRoutesTo runs the FIFO work-queue fixpoint: target originates a
// route to each of its neighbors, and every AS that learns a strictly
// better route re-announces it to its own forward set, until the queue
// drains. Per spec.md §4.2 this assumes routing tables start at their
// post-reset state (self-route only) for every AS other than target.
func (g *Graph) FindRoutesTo(target *asys.AS) {
	log := util.WithOperation("find_routes_to").WithFields(map[string]interface{}{
		"target": target.ID,
		"run":    uuid.NewString(),
	})
	reg := metrics.Get()

	queue := make([]*asys.Route, 0, len(target.Neighbors))
	for neighbor := range target.Neighbors {
		queue = append(queue, target.OriginateRoute(neighbor))
	}

	installed := 0
	for len(queue) > 0 {
		reg.QueueDepth.Set(float64(len(queue)))
		route := queue[0]
		queue = queue[1:]

		receiver := route.Final()
		log.WithField("route", route.String()).Debug("dequeued route")

		for _, neighbor := range receiver.LearnRoute(route) {
			queue = append(queue, receiver.ForwardRoute(route, neighbor))
		}
		installed++
		reg.RoutesInstalled.Inc()
	}
	reg.QueueDepth.Set(0)
	log.WithField("routes_processed", installed).Info("find_routes_to complete")
}
