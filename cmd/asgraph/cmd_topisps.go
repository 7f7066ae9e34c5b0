package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/asgraph-sim/bgpsim/pkg/asys"
	"github.com/asgraph-sim/bgpsim/pkg/cli"
	"github.com/asgraph-sim/bgpsim/pkg/loader"
)

func newTopISPsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topisps [as-rel-file] <n>",
		Short: "List the n ASes with the most customers",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, rest, err := splitFileArg(args, 1)
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(rest[0])
			if err != nil || n < 0 {
				return fmt.Errorf("invalid n %q: must be a non-negative integer", rest[0])
			}

			opts := []loader.Option{}
			if securitySpec != "" {
				opts = append(opts, loader.WithSecuritySpec(securitySpec))
			}
			result, err := loader.Load(file, opts...)
			if err != nil {
				return err
			}

			top := result.Graph.IdentifyTopISPs(n)
			t := cli.NewTable("RANK", "AS", "CUSTOMERS")
			for i, a := range top {
				counts := a.NeighborCountsByRelation()
				t.Row(strconv.Itoa(i+1), strconv.FormatUint(uint64(a.ID), 10), strconv.Itoa(counts[asys.Customer]))
			}
			t.Flush()
			return nil
		},
	}
	return cmd
}
