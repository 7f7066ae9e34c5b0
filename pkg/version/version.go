package version

import "fmt"

// Version, GitCommit and BuildDate are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/asgraph-sim/bgpsim/pkg/version.Version=v1.0.0 \
//	  -X github.com/asgraph-sim/bgpsim/pkg/version.GitCommit=abc1234 \
//	  -X github.com/asgraph-sim/bgpsim/pkg/version.BuildDate=2026-07-30"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info renders a single-line version summary for the CLI's "version"
// subcommand.
func Info() string {
	return fmt.Sprintf("asgraph %s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
