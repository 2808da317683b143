// internal/version/version.go
package version

// Set with -ldflags "-X altseed/internal/version.Version=..." at release time.
var (
	Version = "dev"
	Commit  = ""
)

// String is the one-line form printed by `altseed version`.
func String() string {
	if Commit == "" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
