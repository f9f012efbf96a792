package app

import (
	"context"
	"fmt"
	"os"

	"audioshelf/internal/config"
	"audioshelf/internal/library"
	"audioshelf/internal/tui/keymap"
	"audioshelf/pkg/logging"
)

// Application is the main application structure that bootstraps and runs audioshelf
type Application struct {
	config  *Config
	library *library.Library
	keys    *keymap.Table
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	// Configure logging based on debug flag
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Initialize logging for CLI output (will be replaced for TUI mode)
	logging.InitForCLI(appLogLevel, os.Stderr)

	settings, err := LoadSettings(cfg)
	if err != nil {
		return nil, err
	}
	cfg.Settings = &settings

	keys, err := keymap.Load(settings.Keybindings)
	if err != nil {
		logging.Error("Bootstrap", err, "Invalid keybindings")
		return nil, fmt.Errorf("failed to load keybindings: %w", err)
	}

	lib, err := loadLibrary(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load library")
		return nil, err
	}
	logging.Info("Bootstrap", "Loaded %d audiobooks", lib.Len())

	return &Application{
		config:  cfg,
		library: lib,
		keys:    keys,
	}, nil
}

// LoadSettings loads the layered configuration, or the single directory
// named by cfg.ConfigPath, and applies the command line overrides.
func LoadSettings(cfg *Config) (config.Config, error) {
	var (
		settings config.Config
		err      error
	)

	if cfg.ConfigPath != "" {
		// Use single directory configuration loading
		settings, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load audioshelf configuration from path: %s", cfg.ConfigPath)
			return config.Config{}, fmt.Errorf("failed to load audioshelf configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Info("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		// Use layered configuration loading (default behavior)
		settings, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load audioshelf configuration")
			return config.Config{}, fmt.Errorf("failed to load audioshelf configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	return cfg.applyOverrides(settings), nil
}

// LoadKeys loads the configuration and builds the keybinding table from it.
func LoadKeys(cfg *Config) (*keymap.Table, error) {
	settings, err := LoadSettings(cfg)
	if err != nil {
		return nil, err
	}
	keys, err := keymap.Load(settings.Keybindings)
	if err != nil {
		return nil, fmt.Errorf("failed to load keybindings: %w", err)
	}
	return keys, nil
}

func loadLibrary(cfg *Config) (*library.Library, error) {
	if cfg.Demo {
		logging.Info("Bootstrap", "Using the built-in demo library")
		return library.Demo(), nil
	}
	path := cfg.Settings.Library
	if path == "" {
		logging.Warn("Bootstrap", "No library file given, starting with an empty library")
		return library.Empty(), nil
	}
	return library.Load(path)
}

// Run executes the application
func (a *Application) Run(ctx context.Context) error {
	return runTUIMode(ctx, a)
}
