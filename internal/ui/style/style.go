// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Severity labels printed after the program name.
const (
	ErrorLabel   = "error"
	WarningLabel = "warning"
)
