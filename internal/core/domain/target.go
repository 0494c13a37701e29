// Package domain contains the core types of the bcc project tool: targets,
// commands, configuration and the project layout.
package domain

// Target is an architecture variant the build can produce.
type Target int

const (
	// TargetX86 produces the 32-bit executable.
	TargetX86 Target = iota
	// TargetX64 produces the 64-bit executable.
	TargetX64
)

// DefaultTarget is the target whose executable is copied into the project root
// after a full build.
const DefaultTarget = TargetX64

// Targets lists every target in compile order.
// X86 always builds before X64 because both share state inside the build tool's tree.
var Targets = []Target{TargetX86, TargetX64}

// String returns the build subdirectory name of the target.
func (t Target) String() string {
	if t == TargetX64 {
		return "x64"
	}
	return "x86"
}

// Makefile returns the makefile variant that builds the target.
func (t Target) Makefile() string {
	if t == TargetX64 {
		return "build_x64.mk"
	}
	return "build_x86.mk"
}

// BitWidth returns the label used in release archive names.
func (t Target) BitWidth() string {
	if t == TargetX64 {
		return "64bit"
	}
	return "32bit"
}
