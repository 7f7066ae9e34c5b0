package main

import (
	"github.com/asgraph-sim/bgpsim/pkg/cache"
	"github.com/asgraph-sim/bgpsim/pkg/util"
)

// buildCache returns a Redis-backed cache when --redis-addr is set and
// reachable, falling back to NoopCache (with a logged warning) otherwise.
func buildCache() cache.ReachabilityCache {
	if redisAddrFlag == "" {
		return cache.NoopCache{}
	}
	c, err := cache.NewRedisCache(redisAddrFlag)
	if err != nil {
		util.WithField("error", err).Warn("could not reach redis, reachability caching disabled")
		return cache.NoopCache{}
	}
	return c
}
