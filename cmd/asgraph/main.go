package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asgraph-sim/bgpsim/pkg/settings"
	"github.com/asgraph-sim/bgpsim/pkg/util"
	"github.com/asgraph-sim/bgpsim/pkg/version"
)

var (
	asRelFileFlag   string
	securitySpec    string
	metricsAddrFlag string
	redisAddrFlag   string
	seedFlag        uint64
	verboseFlag     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "asgraph",
		Short: "AS-graph BGP routing simulator",
		Long: `asgraph simulates BGP route propagation over an AS-level topology
parsed from a CAIDA-style as-rel file, with RPKI/path-end/BGPsec security
extensions and prefix-hijack injection.

  asgraph route <as-rel-file> <target-asn>              # propagate routes to target
  asgraph hijack <as-rel-file> <victim> <attacker> <n>   # inject a hijack and propagate
  asgraph reachability <as-rel-file> --all --out <path>  # reachability counts for every AS
  asgraph topisps <as-rel-file> <n>                      # top ISPs by customer count
  asgraph check <as-rel-file>                            # connectivity and cycle check`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verboseFlag {
				util.SetLogLevel("debug")
			}
			s, err := settings.Load()
			if err == nil {
				if asRelFileFlag == "" {
					asRelFileFlag = s.DefaultASRelFile
				}
				if metricsAddrFlag == "" {
					metricsAddrFlag = s.MetricsAddr
				}
				if redisAddrFlag == "" {
					redisAddrFlag = s.RedisAddr
				}
				if seedFlag == 0 {
					seedFlag = s.DefaultSeed
				}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&asRelFileFlag, "as-rel-file", "", "as-rel file to use when a subcommand omits the positional argument")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose (debug) logging")
	rootCmd.PersistentFlags().StringVar(&securitySpec, "security-spec", "", "YAML file overlaying RPKI/path-end/BGPsec posture")
	rootCmd.PersistentFlags().StringVar(&metricsAddrFlag, "metrics-addr", "", "address to serve Prometheus metrics on (e.g. :9100); empty disables")
	rootCmd.PersistentFlags().StringVar(&redisAddrFlag, "redis-addr", "", "Redis address for the reachability cache; empty disables caching")
	rootCmd.PersistentFlags().Uint64Var(&seedFlag, "seed", 0, "seed for deterministic hijack middle-AS sampling")

	rootCmd.AddCommand(
		newRouteCmd(),
		newHijackCmd(),
		newReachabilityCmd(),
		newTopISPsCmd(),
		newCheckCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Println(version.Info())
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// asRelFile resolves the as-rel file path for a subcommand: the
// positional argument if given, otherwise the --as-rel-file flag or
// settings.yaml's default_as_rel_file, whichever PersistentPreRunE
// resolved into asRelFileFlag.
func asRelFile(positional string) (string, error) {
	if positional != "" {
		return positional, nil
	}
	if asRelFileFlag != "" {
		return asRelFileFlag, nil
	}
	return "", fmt.Errorf("no as-rel file given and no default_as_rel_file configured")
}

// splitFileArg separates a subcommand's positional args into the as-rel
// file (optional when --as-rel-file or a configured default exists) and
// the trailing args that always follow it. A subcommand taking 2
// required trailing args accepts either 2 or 3 positional args total.
func splitFileArg(args []string, trailing int) (file string, rest []string, err error) {
	switch len(args) {
	case trailing + 1:
		file, err = asRelFile(args[0])
		return file, args[1:], err
	case trailing:
		file, err = asRelFile("")
		return file, args, err
	default:
		return "", nil, fmt.Errorf("expected %d or %d arguments, got %d", trailing, trailing+1, len(args))
	}
}

func maybeServeMetrics() {
	if metricsAddrFlag == "" {
		return
	}
	go serveMetrics(metricsAddrFlag)
}
