package buildinfo

import "fmt"

// Set at link time with -ldflags "-X github.com/aalvaropc/domainmodel/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("domainmodel %s (commit=%s, date=%s)", Version, Commit, Date)
}
