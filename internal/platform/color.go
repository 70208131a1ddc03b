package platform

import (
	"os"

	"charm.land/lipgloss/v2"
	"golang.org/x/term"
)

// colorEnabled controls whether styling is emitted.
// Set once by InitColor().
var colorEnabled bool

// InitColor determines whether styled output should be enabled for f.
// It respects NO_COLOR (https://no-color.org/), TERM=dumb, and non-TTY output.
func InitColor(f *os.File) {
	if os.Getenv("NO_COLOR") != "" {
		colorEnabled = false
		return
	}
	if os.Getenv("TERM") == "dumb" {
		colorEnabled = false
		return
	}
	colorEnabled = f != nil && term.IsTerminal(int(f.Fd()))
}

var (
	boldStyle    = lipgloss.NewStyle().Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")) // cyan
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")) // red
)

// apply renders s with st when color is enabled.
func apply(st lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return st.Render(s)
}

// Bold styles option names in usage text.
func Bold(s string) string { return apply(boldStyle, s) }

// Heading styles usage section headings.
func Heading(s string) string { return apply(headingStyle, s) }

// Error styles the "error:" prefix of resolution failures.
func Error(s string) string { return apply(errorStyle, s) }
