// Package buildinfo holds build identifiers injected with
//
//	-ldflags "-X quarkcube/internal/buildinfo.Version=v1.2.0 -X quarkcube/internal/buildinfo.Commit=..."
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the release version, else the commit, else "dev". Window
// titles and the HUD use it.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns every identifier for startup logs.
func String() string {
	return "quarkcube " + Version + " (commit " + Commit + ", built " + Date + ")"
}
