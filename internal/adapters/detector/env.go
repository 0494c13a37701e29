// Package detector provides environment detection for output rendering.
package detector

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ColorEnvVar lets the user override color detection with "always", "never" or "auto".
const ColorEnvVar = "BCCPROJ_COLOR"

// OutputMode represents how diagnostics are rendered.
type OutputMode int

const (
	// ModeAuto defers to environment detection.
	ModeAuto OutputMode = iota
	// ModeColor renders diagnostics with ANSI colors.
	ModeColor
	// ModePlain renders diagnostics as plain text.
	ModePlain
)

type fdWriter interface {
	Fd() uintptr
}

// DetectEnvironment returns the recommended output mode for w.
// Colors are used only when w is a terminal, NO_COLOR is unset and the
// process is not running under CI.
func DetectEnvironment(w io.Writer) OutputMode {
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	f, ok := w.(fdWriter)
	if !ok || !term.IsTerminal(int(f.Fd())) { //nolint:gosec // file descriptors fit in int
		return ModePlain
	}

	ci := os.Getenv("CI")
	if ci == "true" || ci == "1" {
		return ModePlain
	}
	return ModeColor
}

// ResolveMode applies the user override to the detected mode.
// userFlag should be one of "always", "never", "auto" or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "always":
		return ModeColor
	case "never":
		return ModePlain
	default:
		return autoDetected
	}
}
