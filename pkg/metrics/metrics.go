// Package metrics exposes a singleton Prometheus registry for the
// handful of counters and gauges the simulator's propagation and
// reachability engines emit as they run.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once     sync.Once
	registry *Registry
)

// Registry holds every metric the simulator exports.
type Registry struct {
	RoutesInstalled    prometheus.Counter
	QueueDepth         prometheus.Gauge
	HijacksInjected    *prometheus.CounterVec
	ReachabilityRuns   prometheus.Counter
	ReachabilityCache  *prometheus.CounterVec
}

// Get returns the global metrics registry, creating it on first use.
func Get() *Registry {
	once.Do(func() {
		registry = newRegistry()
	})
	return registry
}

func newRegistry() *Registry {
	r := &Registry{}

	r.RoutesInstalled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "asgraph",
		Name:      "routes_installed_total",
		Help:      "Routes dequeued and processed by the propagation work queue.",
	})

	r.QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "asgraph",
		Name:      "propagation_queue_depth",
		Help:      "Current length of the FIFO route-propagation work queue.",
	})

	r.HijacksInjected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "asgraph",
		Name:      "hijacks_injected_total",
		Help:      "Hijack routes injected, labeled by hop count.",
	}, []string{"hops"})

	r.ReachabilityRuns = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "asgraph",
		Name:      "reachability_runs_total",
		Help:      "Completed reachability analyses (determine_reachability_all calls).",
	})

	r.ReachabilityCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "asgraph",
		Name:      "reachability_cache_total",
		Help:      "Reachability cache lookups, labeled by outcome (hit, miss).",
	}, []string{"outcome"})

	return r
}
