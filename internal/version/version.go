// Package version provides build-time version information for ahcache.
//
// Variables are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/rickgao/skyblock-ah/internal/version.Version=1.0.0 \
//	                   -X github.com/rickgao/skyblock-ah/internal/version.Commit=$(git rev-parse --short HEAD) \
//	                   -X github.com/rickgao/skyblock-ah/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/ahcache
package version

// Name is the binary name reported in logs, /health and the User-Agent.
const Name = "ahcache"

// Build-time variables (set via ldflags)
var (
	// Version is the semantic version (e.g., "1.0.0")
	Version = "dev"

	// Commit is the git commit hash (short form)
	Commit = "unknown"

	// BuildTime is the UTC build timestamp (ISO 8601)
	BuildTime = "unknown"
)

// String returns a formatted version string.
func String() string {
	return Name + " " + Version + " (" + Commit + ") built " + BuildTime
}

// UserAgent identifies this build to the upstream auction API.
func UserAgent() string {
	return Name + "/" + Version + " (+commit " + Commit + ")"
}
