// Package version exposes build metadata for the version command.
package version

import "fmt"

// Build metadata, overridden via ldflags on release builds:
//
//	-ldflags "-X github.com/EmundoT/git-dco/internal/version.Version=v1.0.0 ..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the bare version string, "dev" for local builds.
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with build information, e.g.
// "v1.0.0 (commit: abc123, built: 2026-01-15T09:00:00Z)".
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
