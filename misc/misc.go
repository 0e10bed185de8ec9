// Package misc keeps small program-identity helpers with no better home.
package misc

import "runtime/debug"

const appName = "csb"

// GetAppName returns the short program name used for logging, temporary
// files and the CLI surface.
func GetAppName() string {
	return appName
}

// GetVersion returns the module version recorded in build info.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "unknown"
}

// GetGitHash returns the VCS revision recorded in build info.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
