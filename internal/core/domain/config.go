package domain

import "strings"

// BuildTool selects the external build program.
type BuildTool int

const (
	// BuildToolGNU drives the build with GNU Make.
	BuildToolGNU BuildTool = iota
	// BuildToolPomake drives the build with pomake, the make program shipped with Pelles C.
	BuildToolPomake
	// BuildToolUnknown is any configured value that names neither supported tool.
	BuildToolUnknown
)

// ParseBuildTool maps a configuration value to a BuildTool.
// Unrecognized values map to BuildToolUnknown; they are rejected only when a build runs.
func ParseBuildTool(s string) BuildTool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gnu", "make":
		return BuildToolGNU
	case "pomake":
		return BuildToolPomake
	default:
		return BuildToolUnknown
	}
}

// String returns the configuration value for the tool.
func (b BuildTool) String() string {
	switch b {
	case BuildToolGNU:
		return "gnu"
	case BuildToolPomake:
		return "pomake"
	default:
		return "unknown"
	}
}

// Program returns the executable name of the tool.
func (b BuildTool) Program() string {
	switch b {
	case BuildToolGNU:
		return "make"
	case BuildToolPomake:
		return "pomake"
	default:
		return ""
	}
}

// MarkerCommands holds the argument vectors of the development version marker program.
// Both run in the project root.
type MarkerCommands struct {
	// Mark stamps the generated sources as a development build.
	Mark []string
	// Clear removes the development stamp.
	Clear []string
}

// Config holds the settings of one invocation.
type Config struct {
	BuildTool BuildTool
	StripExe  bool
	Marker    MarkerCommands
}

// DefaultConfig returns the settings used when no config file overrides them.
func DefaultConfig() Config {
	return Config{
		BuildTool: BuildToolGNU,
		StripExe:  false,
		Marker: MarkerCommands{
			Mark:  []string{"php", "scripts/version.php", "dev"},
			Clear: []string{"php", "scripts/version.php", "remove"},
		},
	}
}
