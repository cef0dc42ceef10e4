// Package version holds build-time version information.
package version

// These are set at build time via -ldflags.
var (
	// Version is the release version.
	Version = "dev"
	// Commit is the git commit hash of the build.
	Commit = "unknown"
)
