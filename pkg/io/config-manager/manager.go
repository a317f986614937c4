package configmanager

import (
	"github.com/devantler-tech/offboard/pkg/timer"
)

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// Timer enables timing output in notifications when provided.
	Timer timer.Timer
	// Silent suppresses all loading notifications when true.
	Silent bool
	// IgnoreConfigFile skips reading on-disk config files when true (env, flags and defaults only).
	IgnoreConfigFile bool
	// SkipValidation skips config validation when true.
	// Used by commands that print the config without acting on it.
	SkipValidation bool
}

// ConfigManager provides configuration management functionality.
type ConfigManager[T any] interface {
	// Load loads the configuration with the specified options.
	// Returns the loaded config, either freshly loaded or previously cached.
	Load(opts LoadOptions) (*T, error)
}
