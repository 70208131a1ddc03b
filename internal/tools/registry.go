package tools

import "runtime"

// DefaultManager is the toolchain manager executable looked up on PATH.
const DefaultManager = "rustup"

// Rustup returns the toolchain manager definition. name overrides the
// executable (an absolute path or another name on PATH); empty means rustup.
func Rustup(name string) Tool {
	if name == "" {
		name = DefaultManager
	}
	return Tool{
		Name:       name,
		InstallCmd: rustupInstallHint(runtime.GOOS),
	}
}

func rustupInstallHint(goos string) string {
	if goos == "windows" {
		return "download and run rustup-init.exe from https://rustup.rs"
	}
	return "curl --proto '=https' --tlsv1.2 -sSf https://sh.rustup.rs | sh"
}
