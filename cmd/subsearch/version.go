package main

// Version information for subsearch
var (
	// Version is the current version of subsearch
	Version = "1.0.0"

	// BuildDate is set during build time
	BuildDate = "dev"

	// GitCommit is set during build time
	GitCommit = "dev"
)

// GetVersionInfo returns formatted version information
func GetVersionInfo() string {
	if BuildDate != "dev" && GitCommit != "dev" {
		return Version + " (" + GitCommit + ", built " + BuildDate + ")"
	}
	return Version + " (dev build)"
}
