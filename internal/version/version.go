package version

import (
	"fmt"
	"runtime"
)

// Build metadata, set from main via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func GetVersion() string {
	return Version
}

// GetVersionInfo returns the long form printed by `pomodesk version`.
func GetVersionInfo() string {
	if Version == "dev" {
		return fmt.Sprintf("pomodesk dev (%s, %s/%s)", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("pomodesk %s (commit: %s, built: %s, %s/%s)",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}

func GetShortVersion() string {
	return "pomodesk " + Version
}
