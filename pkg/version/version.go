// Package version reports build information. The variables are set at link
// time with -ldflags "-X github.com/Sumatoshi-tech/typkat/pkg/version.Version=...".
package version

import (
	"fmt"
	"runtime/debug"
)

// Build metadata.
var (
	Version = "dev"
	Commit  = "<unknown>"
	Date    = "<unknown>"
)

// String formats the build metadata on one line.
func String() string {
	return fmt.Sprintf("typkat %s (commit %s, built %s)", Resolved(), Commit, Date)
}

// Resolved returns Version, falling back to the module version recorded in
// the binary when it was not set at link time.
func Resolved() string {
	if Version != "dev" {
		return Version
	}

	info, ok := debug.ReadBuildInfo()
	if ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return Version
}
