// Package toolchain resolves the rustup toolchain in effect for the current
// invocation, either from the RUSTUP_TOOLCHAIN override set by rustup's proxies
// (e.g. `cargo +nightly ...`) or by asking rustup for the directory default.
package toolchain

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/lamchakchan/cargo-toolchain/internal/config"
	"github.com/lamchakchan/cargo-toolchain/internal/logger"
	"github.com/lamchakchan/cargo-toolchain/internal/platform"
	"github.com/lamchakchan/cargo-toolchain/internal/tools"
)

// OverrideVar is set by rustup for the commands it proxies and carries the
// toolchain selected for that invocation, including +toolchain overrides.
const OverrideVar = "RUSTUP_TOOLCHAIN"

// channels are the default release channels, in match order.
var channels = [...]string{"stable", "beta", "nightly"}

// Runner runs a command and captures its output. unsetEnv names environment
// variables removed from the child's environment.
type Runner interface {
	Output(ctx context.Context, unsetEnv []string, name string, args ...string) (stdout, stderr []byte, err error)
}

// Resolver looks up toolchains. The zero value uses rustup on PATH, the real
// process environment and a discarding logger.
type Resolver struct {
	Manager   tools.Tool
	Runner    Runner
	LookupEnv func(string) (string, bool)
	Logger    *slog.Logger
}

// New returns a Resolver wired to the host: the configured manager executable,
// os/exec and the process environment.
func New(cfg config.Config, log *slog.Logger) *Resolver {
	return &Resolver{
		Manager:   tools.Rustup(cfg.Manager),
		Runner:    platform.ExecRunner{},
		LookupEnv: platform.LookupEnv,
		Logger:    log,
	}
}

// Resolve returns the directory default when directory is true, otherwise
// the active toolchain.
func (r *Resolver) Resolve(ctx context.Context, directory bool) (string, error) {
	if directory {
		return r.ResolveDirectoryDefault(ctx)
	}
	return r.ResolveActive(ctx)
}

// ResolveActive returns the toolchain used to call the current executable.
// It honors per-invocation overrides through OverrideVar and falls back to
// ResolveDirectoryDefault when the variable is not set.
func (r *Resolver) ResolveActive(ctx context.Context) (string, error) {
	if v, ok := r.lookupEnv()(OverrideVar); ok {
		name := Normalize(v)
		r.log().Debug("toolchain.override", "var", OverrideVar, "raw", v, "name", name)
		return name, nil
	}
	return r.ResolveDirectoryDefault(ctx)
}

// ResolveDirectoryDefault asks the manager which toolchain applies to the
// working directory, ignoring any per-invocation override.
func (r *Resolver) ResolveDirectoryDefault(ctx context.Context) (string, error) {
	manager := r.manager()
	args := []string{"show", "active-toolchain"}
	op := manager.Name + " " + strings.Join(args, " ")

	r.log().Debug("toolchain.query", "manager", manager.Name, "args", args, "unset", OverrideVar)
	stdout, stderr, err := r.runner().Output(ctx, []string{OverrideVar}, manager.Name, args...)
	if err != nil {
		e := &Error{
			Op:     op,
			Kind:   KindSubprocess,
			Stderr: strings.TrimSpace(strings.ToValidUTF8(string(stderr), "\uFFFD")),
			Err:    err,
		}
		if !manager.IsInstalled() {
			e.Hint = manager.InstallHint()
		}
		return "", e
	}
	if !utf8.Valid(stdout) {
		return "", &Error{Op: op, Kind: KindEncoding, Err: errInvalidUTF8}
	}

	raw := strings.TrimSpace(string(stdout))
	name := Normalize(raw)
	r.log().Debug("toolchain.resolved", "raw", raw, "name", name)
	return name, nil
}

// Normalize truncates the host triple from a default-channel toolchain name,
// e.g. "nightly-x86_64-unknown-linux-gnu" becomes "nightly". Custom toolchain
// names are returned unchanged.
func Normalize(raw string) string {
	for _, ch := range channels {
		if strings.HasPrefix(raw, ch) {
			return ch
		}
	}
	return raw
}

func (r *Resolver) manager() tools.Tool {
	if r.Manager.Name == "" {
		return tools.Rustup("")
	}
	return r.Manager
}

func (r *Resolver) runner() Runner {
	if r.Runner == nil {
		return platform.ExecRunner{}
	}
	return r.Runner
}

func (r *Resolver) lookupEnv() func(string) (string, bool) {
	if r.LookupEnv == nil {
		return platform.LookupEnv
	}
	return r.LookupEnv
}

func (r *Resolver) log() *slog.Logger {
	if r.Logger == nil {
		return logger.L()
	}
	return r.Logger
}
