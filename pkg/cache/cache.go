// Package cache provides an optional reachability-count cache keyed by a
// fingerprint of the graph's edge set, so repeated reachability queries
// against an unchanged topology can skip the bipartite-graph rebuild and
// topological propagation.
package cache

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/asgraph-sim/bgpsim/pkg/asys"
)

// ReachabilityCache stores the result of a determine_reachability_all
// run against a fingerprinted topology.
type ReachabilityCache interface {
	Get(fingerprint string) (map[asys.ASID]int, bool, error)
	Put(fingerprint string, counts map[asys.ASID]int) error
}

// NoopCache never stores anything and always misses. It is the default
// when no cache backend is configured, so reachability analysis behaves
// identically with or without a cache wired in.
type NoopCache struct{}

func (NoopCache) Get(string) (map[asys.ASID]int, bool, error) { return nil, false, nil }
func (NoopCache) Put(string, map[asys.ASID]int) error         { return nil }

// Fingerprint computes a stable hash of an edge list, independent of the
// order edges were supplied in, for use as a cache key. Callers (pkg/asgraph)
// pass the same edges used to build the graph.
func Fingerprint(edges [][3]int64) string {
	sorted := make([][3]int64, len(edges))
	copy(sorted, edges)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i][0] != sorted[j][0] {
			return sorted[i][0] < sorted[j][0]
		}
		if sorted[i][1] != sorted[j][1] {
			return sorted[i][1] < sorted[j][1]
		}
		return sorted[i][2] < sorted[j][2]
	})

	h := fnv.New64a()
	for _, e := range sorted {
		for _, v := range e {
			var b [8]byte
			for i := range b {
				b[i] = byte(v >> (8 * uint(i)))
			}
			h.Write(b[:])
		}
	}
	sum := h.Sum64()
	buf := make([]byte, 16)
	const hex = "0123456789abcdef"
	for i := 0; i < 16; i++ {
		buf[15-i] = hex[sum&0xf]
		sum >>= 4
	}
	return string(buf)
}

// RedisCache stores reachability counts in Redis, serialized as JSON,
// under keys prefixed "asgraph:reach:".
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache dials addr (host:port) and returns a RedisCache with a
// one-hour default TTL per cached entry.
func NewRedisCache(addr string) (ReachabilityCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisCache{client: client, ttl: time.Hour}, nil
}

func (c *RedisCache) key(fingerprint string) string {
	return "asgraph:reach:" + fingerprint
}

func (c *RedisCache) Get(fingerprint string) (map[asys.ASID]int, bool, error) {
	raw, err := c.client.Get(context.Background(), c.key(fingerprint)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var counts map[asys.ASID]int
	if err := json.Unmarshal(raw, &counts); err != nil {
		return nil, false, err
	}
	return counts, true, nil
}

func (c *RedisCache) Put(fingerprint string, counts map[asys.ASID]int) error {
	raw, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	return c.client.Set(context.Background(), c.key(fingerprint), raw, c.ttl).Err()
}
