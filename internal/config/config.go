// Package config reads cargo-toolchain's runtime settings from the environment.
package config

import (
	"log/slog"
	"strings"
)

const (
	// EnvManager overrides the toolchain manager executable (name or path).
	EnvManager = "CARGO_TOOLCHAIN_RUSTUP"
	// EnvLogLevel enables diagnostics on stderr: debug, info, warn or error.
	EnvLogLevel = "CARGO_TOOLCHAIN_LOG"
)

// Config holds the settings for one invocation.
type Config struct {
	// Manager is the toolchain manager executable; empty means rustup on PATH.
	Manager string
	// LogEnabled is false unless EnvLogLevel names a known level.
	LogEnabled bool
	LogLevel   slog.Level
}

// Load builds a Config from getenv (normally os.Getenv).
func Load(getenv func(string) string) Config {
	cfg := Config{
		Manager:  strings.TrimSpace(getenv(EnvManager)),
		LogLevel: slog.LevelInfo,
	}
	if lvl, ok := parseLevel(getenv(EnvLogLevel)); ok {
		cfg.LogEnabled = true
		cfg.LogLevel = lvl
	}
	return cfg
}

func parseLevel(raw string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug", "trace":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
