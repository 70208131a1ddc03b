package main

import (
	"context"
	"os"

	"github.com/lamchakchan/cargo-toolchain/internal/buildinfo"
	"github.com/lamchakchan/cargo-toolchain/internal/cli"
	"github.com/lamchakchan/cargo-toolchain/internal/config"
	"github.com/lamchakchan/cargo-toolchain/internal/logger"
	"github.com/lamchakchan/cargo-toolchain/internal/platform"
	"github.com/lamchakchan/cargo-toolchain/internal/toolchain"
)

func main() {
	cfg := config.Load(os.Getenv)
	log := logger.Setup(logger.Config{
		Enabled: cfg.LogEnabled,
		Level:   cfg.LogLevel,
		Output:  os.Stderr,
	})
	platform.InitColor(os.Stderr)

	log.Debug("startup", "build", buildinfo.String(), "manager", cfg.Manager)

	resolver := toolchain.New(cfg, log)
	os.Exit(cli.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, resolver))
}
