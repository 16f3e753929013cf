package app

import (
	"errors"

	"github.com/zerotired/yake/internal/fsutil"
)

// Config holds everything a single yake invocation needs.
type Config struct {
	// YakefilePath is the root document to load.
	YakefilePath string

	// Dir is the directory searched for subordinate Yakefiles when the root
	// document sets include_recursively. Passed explicitly; the engine never
	// reads the process working directory itself.
	Dir string

	// Target is the qualified name to execute.
	Target string

	LogFormat string
	LogLevel  string
	NoColor   bool
}

// NewConfig validates a Config and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Target == "" {
		return nil, errors.New("Target is a required configuration field and cannot be empty")
	}
	if cfg.YakefilePath == "" {
		cfg.YakefilePath = fsutil.YakefileName
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	return &cfg, nil
}
