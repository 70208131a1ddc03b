package cli

import (
	"io"

	"charm.land/lipgloss/v2"

	"github.com/lamchakchan/cargo-toolchain/internal/platform"
)

// printUsage writes the help text; callers pass stderr. lipgloss downsamples
// the styling to what w supports.
func printUsage(w io.Writer) {
	lipgloss.Fprintf(w, `
Prints the currently active rustup toolchain

%s
    cargo toolchain [OPTIONS]

%s
    %s    print the default toolchain for the directory rather than the currently active one
    %s         print this message and exit

`,
		platform.Heading("USAGE:"),
		platform.Heading("OPTIONS:"),
		platform.Bold("-d, --directory"),
		platform.Bold("-h, --help"),
	)
}
