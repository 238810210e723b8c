package app

import (
	"fmt"

	"github.com/vk/puzzlegrid/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPaths []string // manifest files or directories
	Only          []string // puzzle ids to run; empty runs all

	LogFormat   string
	LogLevel    string
	WorkerCount int
	NoColor     bool
}

// NewConfig validates cfg and returns a copy ready for NewApp. Manifest
// paths are only required by Run.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("invalid workers %d: must be at least 1", cfg.WorkerCount)
	}

	for _, id := range cfg.Only {
		if _, _, err := config.ParseID(id); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}
