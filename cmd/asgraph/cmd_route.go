package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/asgraph-sim/bgpsim/pkg/asys"
	"github.com/asgraph-sim/bgpsim/pkg/cli"
	"github.com/asgraph-sim/bgpsim/pkg/loader"
)

func newRouteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route [as-rel-file] <target-asn>",
		Short: "Propagate routes to target-asn and print every AS's resulting path",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			maybeServeMetrics()

			file, rest, err := splitFileArg(args, 1)
			if err != nil {
				return err
			}
			targetID, err := strconv.ParseUint(rest[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid target-asn %q: %w", rest[0], err)
			}

			opts := []loader.Option{}
			if securitySpec != "" {
				opts = append(opts, loader.WithSecuritySpec(securitySpec))
			}
			result, err := loader.Load(file, opts...)
			if err != nil {
				return err
			}

			target, ok := result.Graph.GetAsys(asys.ASID(targetID))
			if !ok {
				return fmt.Errorf("AS %d not present in graph", targetID)
			}
			result.Graph.FindRoutesTo(target)

			t := cli.NewTable("AS", "PATH LENGTH", "PATH", "AUTHENTICATED")
			for _, id := range result.Graph.IDs() {
				a, _ := result.Graph.GetAsys(id)
				r, ok := a.Route(target.ID)
				if !ok {
					t.Row(strconv.FormatUint(uint64(id), 10), "-", "unreachable", "-")
					continue
				}
				auth := "no"
				if r.Authenticated {
					auth = "yes"
				}
				t.Row(strconv.FormatUint(uint64(id), 10), strconv.Itoa(r.Length()), r.String(), auth)
			}
			t.Flush()
			return nil
		},
	}
	return cmd
}
