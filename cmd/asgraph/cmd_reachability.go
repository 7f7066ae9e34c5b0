package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/asgraph-sim/bgpsim/pkg/asys"
	"github.com/asgraph-sim/bgpsim/pkg/cli"
	"github.com/asgraph-sim/bgpsim/pkg/loader"
)

func newReachabilityCmd() *cobra.Command {
	var (
		all    bool
		out    string
		asnStr string
	)

	cmd := &cobra.Command{
		Use:   "reachability <as-rel-file> [asn]",
		Short: "Count how many ASes can reach a given AS, or every AS with --all",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []loader.Option{}
			if securitySpec != "" {
				opts = append(opts, loader.WithSecuritySpec(securitySpec))
			}
			result, err := loader.Load(args[0], opts...)
			if err != nil {
				return err
			}
			c := buildCache()

			if len(args) == 2 {
				asnStr = args[1]
			}

			if all {
				counts, err := result.Graph.DetermineReachabilityAll(c)
				if err != nil {
					return err
				}
				if out != "" {
					return writeReachabilityFile(out, result, counts)
				}
				t := cli.NewTable("AS", "REACHABLE FROM")
				for _, id := range result.Graph.IDs() {
					t.Row(strconv.FormatUint(uint64(id), 10), strconv.Itoa(counts[id]))
				}
				t.Flush()
				return nil
			}

			if asnStr == "" {
				return fmt.Errorf("either an asn argument or --all is required")
			}
			id, err := strconv.ParseUint(asnStr, 10, 32)
			if err != nil {
				return fmt.Errorf("invalid asn %q: %w", asnStr, err)
			}
			count, err := result.Graph.DetermineReachabilityOne(asys.ASID(id), c)
			if err != nil {
				return err
			}
			fmt.Printf("%d\n", count)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "compute reachability for every AS")
	cmd.Flags().StringVar(&out, "out", "", "write \"<ASN> <count>\" lines to this file instead of stdout (only with --all)")
	return cmd
}

func writeReachabilityFile(path string, result *loader.Result, counts map[asys.ASID]int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, id := range result.Graph.IDs() {
		if _, err := fmt.Fprintf(f, "%d %d\n", id, counts[id]); err != nil {
			return err
		}
	}
	return nil
}
