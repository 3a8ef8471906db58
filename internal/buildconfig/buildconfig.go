package buildconfig

import "fmt"

// Build-time variables injected via ldflags
var (
	version = "dev"
	commit  = "unknown"
)

// Version returns the build version
func Version() string {
	return version
}

// Commit returns the git commit hash
func Commit() string {
	return commit
}

// VersionString returns the single-line form printed by credence -version.
func VersionString() string {
	return fmt.Sprintf("credence %s (%s)", version, commit)
}
