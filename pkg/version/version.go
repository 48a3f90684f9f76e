// Package version exposes build metadata injected at link time:
//
//	-X 'github.com/compozy/cfgmigrate/pkg/version.Version=v0.3.0'
//	-X 'github.com/compozy/cfgmigrate/pkg/version.CommitHash=abc123'
//	-X 'github.com/compozy/cfgmigrate/pkg/version.BuildDate=2026-01-01T00:00:00Z'
package version

import "fmt"

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String renders the build metadata for --version output.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, CommitHash, BuildDate)
}
