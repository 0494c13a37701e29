// Package output provides utilities for creating termenv.Output with consistent
// color profile and TTY handling across the CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/bccproj/internal/adapters/detector"
)

// ColorProfile returns the color profile to use when writing to w.
// Plain text is used unless w is an interactive terminal, see detector.DetectEnvironment.
// The BCCPROJ_COLOR variable overrides the detection.
func ColorProfile(w io.Writer) termenv.Profile {
	mode := detector.ResolveMode(detector.DetectEnvironment(w), os.Getenv(detector.ColorEnvVar))
	if mode != detector.ModeColor {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a new termenv.Output with the specific profile logic.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile(w)),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
