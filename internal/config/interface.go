package config

import (
	"context"
)

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads manifests from the given files or directories and merges
	// them, in path order, into a single model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
