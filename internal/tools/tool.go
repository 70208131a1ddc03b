// Package tools describes the external executables cargo-toolchain shells out
// to, with PATH detection and install hints for error messages.
package tools

import (
	"github.com/lamchakchan/cargo-toolchain/internal/platform"
)

// Tool represents an external executable.
type Tool struct {
	Name       string // executable name on PATH, or a path
	InstallCmd string // manual install hint; generic hint if empty
}

// IsInstalled reports whether the tool can be found: on PATH for a bare
// name, as an executable file for a path.
func (t *Tool) IsInstalled() bool {
	return platform.Exists(t.Name)
}

// InstallHint returns the manual install command for this tool.
func (t *Tool) InstallHint() string {
	if t.InstallCmd != "" {
		return t.InstallCmd
	}
	return "install " + t.Name + " and make sure it is on PATH"
}
