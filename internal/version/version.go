// Package version exposes build version information.
//
// The footer of every rendered page links back to the generator with its
// version, and the version command prints the same values, so this lives
// in its own package rather than in cmd.
package version

import "runtime/debug"

// Version information set at build time via ldflags.
var (
	version = ""
	commit  = ""
	date    = ""
)

// Version returns the version string.
// Priority: ldflags > debug.ReadBuildInfo > "(devel)"
func Version() string {
	if version != "" {
		return version
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		if buildInfo.Main.Version != "" {
			return buildInfo.Main.Version
		}
	}
	return "(devel)"
}

// Commit returns the commit hash.
// Priority: ldflags > debug.ReadBuildInfo > "unknown"
func Commit() string {
	if commit != "" {
		return commit
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range buildInfo.Settings {
			if setting.Key == "vcs.revision" {
				if len(setting.Value) > 7 {
					return setting.Value[:7]
				}
				return setting.Value
			}
		}
	}
	return "unknown"
}

// Date returns the build date.
// Priority: ldflags > debug.ReadBuildInfo > "unknown"
func Date() string {
	if date != "" {
		return date
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range buildInfo.Settings {
			if setting.Key == "vcs.time" {
				return setting.Value
			}
		}
	}
	return "unknown"
}
