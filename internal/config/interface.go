package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads every configuration file under the given paths, translates
	// them into the format-agnostic model and merges the result.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
