package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/asgraph-sim/bgpsim/pkg/util"
)

// serveMetrics blocks serving /metrics on addr. Callers run it in its own
// goroutine; a listen failure is logged rather than fatal, since metrics
// are an optional ambient concern, never load-bearing for a simulation run.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	util.WithField("addr", addr).Info("serving metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		util.WithField("error", err).Error("metrics server stopped")
	}
}
