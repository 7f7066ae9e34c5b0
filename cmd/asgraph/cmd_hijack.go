package main

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/asgraph-sim/bgpsim/pkg/asys"
	"github.com/asgraph-sim/bgpsim/pkg/cli"
	"github.com/asgraph-sim/bgpsim/pkg/loader"
)

func newHijackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hijack [as-rel-file] <victim-asn> <attacker-asn> <n-hops>",
		Short: "Inject an n-hop prefix hijack from attacker-asn against victim-asn and propagate it",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			maybeServeMetrics()

			file, rest, err := splitFileArg(args, 3)
			if err != nil {
				return err
			}
			victimID, err := strconv.ParseUint(rest[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid victim-asn %q: %w", rest[0], err)
			}
			attackerID, err := strconv.ParseUint(rest[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid attacker-asn %q: %w", rest[1], err)
			}
			n, err := strconv.Atoi(rest[2])
			if err != nil {
				return fmt.Errorf("invalid n-hops %q: %w", rest[2], err)
			}

			opts := []loader.Option{}
			if securitySpec != "" {
				opts = append(opts, loader.WithSecuritySpec(securitySpec))
			}
			if seedFlag != 0 {
				opts = append(opts, loader.WithSeed(seedFlag))
			}
			result, err := loader.Load(file, opts...)
			if err != nil {
				return err
			}

			victim, ok := result.Graph.GetAsys(asys.ASID(victimID))
			if !ok {
				return fmt.Errorf("AS %d not present in graph", victimID)
			}
			attacker, ok := result.Graph.GetAsys(asys.ASID(attackerID))
			if !ok {
				return fmt.Errorf("AS %d not present in graph", attackerID)
			}

			result.Graph.FindRoutesTo(victim)

			var rng *rand.Rand
			if result.HaveSeed {
				rng = rand.New(rand.NewPCG(result.Seed, result.Seed))
			} else {
				rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
			}
			if err := result.Graph.HijackNHops(victim, attacker, n, rng); err != nil {
				return err
			}

			t := cli.NewTable("AS", "PATH", "ORIGIN INVALID", "PATH-END INVALID", "AUTHENTICATED")
			for _, id := range result.Graph.IDs() {
				a, _ := result.Graph.GetAsys(id)
				r, ok := a.Route(victim.ID)
				if !ok {
					continue
				}
				t.Row(strconv.FormatUint(uint64(id), 10), r.String(), yesno(r.OriginInvalid), yesno(r.PathEndInvalid), yesno(r.Authenticated))
			}
			t.Flush()
			return nil
		},
	}
	return cmd
}

func yesno(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
