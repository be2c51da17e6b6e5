// Package buildinfo carries version stamps set with -ldflags "-X".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, or the commit for unreleased builds.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String is the full stamp printed by the version command.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Short(), Commit, Date)
}
