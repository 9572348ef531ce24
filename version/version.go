// Package version reports the revision this binary was built from.
package version

import (
	"os"
	"runtime/debug"
)

// Version returns the first seven characters of COMMIT_SHA, falling back to
// the VCS revision stamped by the Go toolchain, or "unknown".
func Version() string {
	version, ok := os.LookupEnv("COMMIT_SHA")
	if !ok || version == "" {
		version = buildRevision()
	}
	if len(version) > 7 {
		version = version[:7]
	}
	return version
}

func buildRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return s.Value
		}
	}
	return "unknown"
}
