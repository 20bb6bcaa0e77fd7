// Package version contains build information for proxylists.
// Values are replaced at link time with -ldflags "-X".
package version

var (
	// Version is the current version of proxylists.
	Version = "dev"
	// BuildTime is the time when the binary was built.
	BuildTime = "unknown"
	// GitCommit is the git commit hash of the build.
	GitCommit = "unknown"
)
