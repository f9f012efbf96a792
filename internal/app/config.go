package app

import (
	"audioshelf/internal/config"
)

// Config holds the application configuration
type Config struct {
	// LibraryPath is the library export given on the command line. It wins
	// over the library set in the configuration files.
	LibraryPath string

	// ConfigPath loads config.yaml from a single directory instead of the
	// user and project layers.
	ConfigPath string

	// Rate overrides; nil keeps the configured value.
	TickRate  *float64
	FrameRate *float64

	// Debug settings
	Debug bool

	// Demo opens the built-in sample library.
	Demo bool

	// Settings is the loaded audioshelf configuration with the overrides
	// above applied.
	Settings *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(libraryPath, configPath string, debug, demo bool) *Config {
	return &Config{
		LibraryPath: libraryPath,
		ConfigPath:  configPath,
		Debug:       debug,
		Demo:        demo,
	}
}

// applyOverrides copies the command line values over the loaded settings.
func (c *Config) applyOverrides(settings config.Config) config.Config {
	if c.TickRate != nil {
		settings.TickRate = *c.TickRate
	}
	if c.FrameRate != nil {
		settings.FrameRate = *c.FrameRate
	}
	if c.LibraryPath != "" {
		settings.Library = c.LibraryPath
	}
	if c.Debug {
		settings.LogLevel = "debug"
	}
	return settings
}
