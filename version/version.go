package version

import (
	"fmt"
	"runtime/debug"
)

// Set via -ldflags at build time; the defaults mark a development build.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the bare version string, falling back to module build
// info when no compile-time version was injected.
func Short() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "development"
}

// CommitHash returns the git revision, preferring the injected value
// and falling back to the vcs.revision build setting.
func CommitHash() string {
	if Commit != "unknown" && Commit != "" {
		return Commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}
	return "unknown"
}

// BuildDate returns the build timestamp, preferring the injected value
// and falling back to the vcs.time build setting.
func BuildDate() string {
	if Date != "unknown" && Date != "" {
		return Date
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				return setting.Value
			}
		}
	}
	return "unknown"
}

// Full returns the version with a short commit hash and build date
// when they are known, e.g. "v1.2.0 (abc1234, built 2026-08-01)".
func Full() string {
	commit := CommitHash()
	if commit == "unknown" || len(commit) < 7 {
		return Short()
	}
	if date := BuildDate(); date != "unknown" {
		return fmt.Sprintf("%s (%s, built %s)", Short(), commit[:7], date)
	}
	return fmt.Sprintf("%s (%s)", Short(), commit[:7])
}
