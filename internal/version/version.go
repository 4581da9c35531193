// Package version reports build metadata stamped in with
// -ldflags "-X github.com/example/circle/internal/version.Commit=...".
package version

import "fmt"

// Build metadata. Overwritten at link time.
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

const binary = "circle"

// String returns e.g. "circle dev (commit: 1a2b3c4, built: 2026-03-08T10:00:00Z)".
func String() string {
	return fmt.Sprintf("%s dev (commit: %s, built: %s)", binary, ShortCommit(), BuildTime)
}

// ShortCommit returns the commit hash cut to seven characters.
func ShortCommit() string {
	const n = 7
	if len(Commit) <= n {
		return Commit
	}
	return Commit[:n]
}
