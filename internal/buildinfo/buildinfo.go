// Package buildinfo carries version metadata stamped in at link time.
package buildinfo

import "fmt"

// Set via -ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the one-line version banner.
func String() string {
	return fmt.Sprintf("cargo-toolchain %s (commit=%s, date=%s)", Version, Commit, Date)
}
