// Package build holds build-time information.
package build

// Version and Commit identify the sroot binary. They default to development values
// and are overwritten by linker flags, e.g.
// -ldflags "-X github.com/WIPACrepo/cvmfs/internal/build.Version=v1.2.0".
var (
	Version = "dev"
	Commit  = ""
)

// String renders the version line printed by the CLI.
func String() string {
	if Commit == "" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
