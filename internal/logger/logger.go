// Package logger holds the process-wide diagnostic logger. It discards
// everything until Setup enables it, and never writes to stdout.
package logger

import (
	"io"
	"log/slog"
	"sync"
)

// Config selects whether and where diagnostics are written.
type Config struct {
	Enabled bool
	Level   slog.Level
	// Output receives log records, normally os.Stderr.
	Output io.Writer
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup installs the global logger described by cfg and returns it.
// A disabled config or a nil Output resets the logger to discard.
func Setup(cfg Config) *slog.Logger {
	l := discard()
	if cfg.Enabled && cfg.Output != nil {
		l = slog.New(slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{
			Level:     cfg.Level,
			AddSource: cfg.Level <= slog.LevelDebug,
		}))
	}

	mu.Lock()
	global = l
	mu.Unlock()
	return l
}

// L returns the logger installed by the last Setup, or a discarding one.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
