// Package loader builds a pkg/asgraph Graph from an as-rel relationship
// file and an optional security-posture overlay.
package loader

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/asgraph-sim/bgpsim/pkg/asgraph"
	"github.com/asgraph-sim/bgpsim/pkg/asys"
	"github.com/asgraph-sim/bgpsim/pkg/util"
)

// Option configures a Load call.
type Option func(*config)

type config struct {
	policy       asys.Policy
	securityYAML string
	seed         uint64
	haveSeed     bool
}

// WithPolicy overrides the routing policy every AS in the loaded graph
// shares. Defaults to policy.Default when unset.
func WithPolicy(p asys.Policy) Option {
	return func(c *config) { c.policy = p }
}

// WithSecuritySpec overlays RPKI/path-end/BGPsec posture from a YAML
// file onto the loaded graph, after construction.
func WithSecuritySpec(path string) Option {
	return func(c *config) { c.securityYAML = path }
}

// WithSeed records a seed for deterministic hijack sampling. The loader
// itself does not use the seed; it is plumbed through so callers can
// retrieve it via Result.Seed without threading a second value around.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed; c.haveSeed = true }
}

// Result is what Load returns: the constructed graph plus the seed a
// caller should use for hijack sampling if it wants determinism.
type Result struct {
	Graph    *asgraph.Graph
	Seed     uint64
	HaveSeed bool
}

// securityEntry is one AS's security-posture overlay record.
type securityEntry struct {
	PublishesRPKI    bool `yaml:"publishes_rpki"`
	PublishesPathEnd bool `yaml:"publishes_path_end"`
	BGPsecEnabled    bool `yaml:"bgpsec_enabled"`
}

// Load parses an as-rel file and builds a Graph from it, applying any
// given Options.
func Load(path string, opts ...Option) (*Result, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	ids, edges, err := parseASRelFile(path)
	if err != nil {
		return nil, err
	}

	g := asgraph.New(ids, edges, cfg.policy)

	if cfg.securityYAML != "" {
		if err := applySecuritySpec(g, cfg.securityYAML); err != nil {
			return nil, err
		}
	}

	return &Result{Graph: g, Seed: cfg.seed, HaveSeed: cfg.haveSeed}, nil
}

// parseASRelFile parses the CAIDA serial-1 as-rel grammar:
//
//	<as1>|<as2>|<rel>
//
// where rel is -1 (as1 is as2's provider) or 0 (peer). Lines starting
// with '#' are comments. The last line mentioning a given (as1, as2)
// pair (in either order) wins if the file redefines it.
func parseASRelFile(path string) ([]asys.ASID, []asgraph.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	nodes := make(map[asys.ASID]struct{})
	edgeIndex := make(map[[2]asys.ASID]int)
	var edges []asgraph.Edge

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) != 3 {
			return nil, nil, util.NewASRelFileError(path, lineNo, "expected 3 pipe-separated fields, got "+strconv.Itoa(len(fields)))
		}

		as1, err := strconv.ParseUint(strings.TrimSpace(fields[0]), 10, 32)
		if err != nil {
			return nil, nil, util.NewASRelFileError(path, lineNo, "field 1 is not a valid AS_ID: "+fields[0])
		}
		as2, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 10, 32)
		if err != nil {
			return nil, nil, util.NewASRelFileError(path, lineNo, "field 2 is not a valid AS_ID: "+fields[1])
		}
		rel, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil || (rel != -1 && rel != 0) {
			return nil, nil, util.NewASRelFileError(path, lineNo, "relation code must be -1 or 0, got "+fields[2])
		}

		a, b := asys.ASID(as1), asys.ASID(as2)
		nodes[a] = struct{}{}
		nodes[b] = struct{}{}

		edge := asgraph.Edge{A: a, B: b, IsPeer: rel == 0}
		if rel == -1 {
			edge.Customer = b
		}

		key := [2]asys.ASID{a, b}
		rkey := [2]asys.ASID{b, a}
		if idx, ok := edgeIndex[key]; ok {
			edges[idx] = edge
		} else if idx, ok := edgeIndex[rkey]; ok {
			edges[idx] = edge
			edgeIndex[key] = idx
		} else {
			edgeIndex[key] = len(edges)
			edges = append(edges, edge)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	ids := make([]asys.ASID, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	return ids, edges, nil
}

// applySecuritySpec overlays a YAML-described security posture onto an
// already-built graph. ASes named in the file but absent from the graph
// are silently ignored — the overlay may describe a superset of AS_IDs
// shared across multiple topologies.
func applySecuritySpec(g *asgraph.Graph, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var spec map[string]securityEntry
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return err
	}

	for idStr, entry := range spec {
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			return util.NewASRelFileError(path, 0, "security spec key is not a valid AS_ID: "+idStr)
		}
		a, ok := g.GetAsys(asys.ASID(id))
		if !ok {
			continue
		}
		a.PublishesRPKI = entry.PublishesRPKI
		a.PublishesPathEnd = entry.PublishesPathEnd
		a.BGPsecEnabled = entry.BGPsecEnabled
	}
	return nil
}
