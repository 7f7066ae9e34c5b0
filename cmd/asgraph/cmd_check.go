package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asgraph-sim/bgpsim/pkg/asys"
	"github.com/asgraph-sim/bgpsim/pkg/loader"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [as-rel-file]",
		Short: "Check a topology for connectivity and customer-provider cycles",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _, err := splitFileArg(args, 0)
			if err != nil {
				return err
			}
			result, err := loader.Load(file)
			if err != nil {
				return err
			}

			if isConnected(result.Graph.IDs(), result.Graph) {
				fmt.Println("graph is fully connected")
			} else {
				fmt.Println("graph is not fully connected")
			}

			fmt.Println("checking for customer-provider cycles")
			if result.Graph.AnyCustomerProviderCycles() {
				fmt.Println("graph has a customer-provider cycle")
			} else {
				fmt.Println("graph has no cycles")
			}
			return nil
		},
	}
	return cmd
}

// isConnected reports whether every AS is reachable from the first one
// via any relation (undirected), ignoring relation semantics entirely —
// this is a structural sanity check, not a routing-reachability query.
func isConnected(ids []asys.ASID, g interface {
	GetAsys(asys.ASID) (*asys.AS, bool)
}) bool {
	if len(ids) == 0 {
		return true
	}
	start, _ := g.GetAsys(ids[0])
	seen := map[asys.ASID]bool{start.ID: true}
	queue := []*asys.AS{start}
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		for n := range a.Neighbors {
			if !seen[n.ID] {
				seen[n.ID] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen) == len(ids)
}
