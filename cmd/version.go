// Package cmd holds build-time version information for banterctl.
package cmd

// Build information. Populated at build time via ldflags.
var (
	Version = "0.1.0"
	Commit  = "none"
	Date    = "unknown"
)
