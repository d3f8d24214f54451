// Package buildinfo carries version stamps injected at link time:
//
//	go build -ldflags "-X pdlattice/internal/buildinfo.Version=v0.1.0"
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 12 {
			return Commit[:12]
		}
		return Commit
	}
	return "dev"
}

// String returns the full stamp, e.g. "v0.1.0 (abc123, 2026-01-02)".
func String() string {
	return Version + " (" + Commit + ", " + Date + ")"
}
