// Package app wires a yake invocation together: configuration, logging,
// document loading and composition, and the executor that runs the target.
package app

import (
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/zerotired/yake/internal/executor"
)

// App encapsulates the dependencies of one yake run.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
	runner executor.Runner
}

// New constructs an App with its own isolated logger. A nil runner selects
// the real shell; tests pass a recorder instead.
func New(outW, errW io.Writer, cfg *Config, runner executor.Runner) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	if cfg.NoColor {
		color.NoColor = true
	}
	if runner == nil {
		runner = &executor.Shell{OutW: outW, ErrW: errW}
	}
	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: cfg,
		runner: runner,
	}
}
