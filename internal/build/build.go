// Package build holds build-time information.
package build

// Version and Commit identify the bccproj binary.
// They can be overwritten by linker flags.
var (
	Version = "dev"
	Commit  = "none"
)

// String returns the version line printed in debug output.
func String() string {
	return Version + " (" + Commit + ")"
}
