package metrics

import "testing"

func TestGetReturnsSingleton(t *testing.T) {
	a := Get()
	b := Get()
	if a != b {
		t.Error("Get() should return the same registry instance across calls")
	}
}

func TestRegistryMetricsAreUsable(t *testing.T) {
	r := Get()
	r.RoutesInstalled.Inc()
	r.QueueDepth.Set(3)
	r.HijacksInjected.WithLabelValues("2").Inc()
	r.ReachabilityRuns.Inc()
	r.ReachabilityCache.WithLabelValues("hit").Inc()
}
