package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads a plugin configuration file, translates it into the
	// format-agnostic model, applies defaults, and validates it.
	Load(ctx context.Context, path string) (*Model, error)
}
