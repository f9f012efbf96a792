package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var osGetenv = os.Getenv

const (
	appName          = "audioshelf"
	userConfigDir    = ".config/audioshelf"
	userDataDir      = ".local/share/audioshelf"
	projectConfigDir = ".audioshelf"
	configFileName   = "config.yaml"

	// EnvConfigDir overrides the user configuration directory.
	EnvConfigDir = "AUDIOSHELF_CONFIG"
	// EnvDataDir overrides the data directory holding the log file.
	EnvDataDir = "AUDIOSHELF_DATA"
	// EnvLogLevel overrides the configured log level.
	EnvLogLevel = "AUDIOSHELF_LOGLEVEL"
)

// LoadConfig loads the audioshelf configuration by layering default, user, and project settings.
func LoadConfig() (Config, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. Determine user-specific configuration path
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// Log this error but don't fail; user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if config, err = mergeFileIfExists(config, userConfigPath); err != nil {
		return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	// 3. Determine project-specific configuration path
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if config, err = mergeFileIfExists(config, projectConfigPath); err != nil {
		return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	return finalize(config), nil
}

// LoadConfigFromPath loads the defaults overlaid with config.yaml from a
// single directory, skipping the user and project layers.
func LoadConfigFromPath(dir string) (Config, error) {
	path := filepath.Join(dir, configFileName)
	if _, err := os.Stat(path); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	config, err := mergeFileIfExists(GetDefaultConfig(), path)
	if err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return finalize(config), nil
}

func mergeFileIfExists(base Config, path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return Config{}, err
	}
	return mergeConfigs(base, overlay), nil
}

func finalize(config Config) Config {
	if level := osGetenv(EnvLogLevel); level != "" {
		config.LogLevel = level
	}
	if dir, err := GetDataDir(); err == nil {
		config.DataDir = dir
	}
	return config
}

var getUserConfigPath = func() (string, error) {
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads one configuration layer from a YAML file.
func loadConfigFromFile(filePath string) (fileConfig, error) {
	var config fileConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fileConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fileConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Keybindings merge
// per mode and per key sequence; mode names match case-insensitively.
func mergeConfigs(base Config, overlay fileConfig) Config {
	merged := base.Clone()

	if overlay.TickRate != nil {
		merged.TickRate = *overlay.TickRate
	}
	if overlay.FrameRate != nil {
		merged.FrameRate = *overlay.FrameRate
	}
	if overlay.Library != nil {
		merged.Library = *overlay.Library
	}
	if overlay.Mouse != nil {
		merged.Mouse = *overlay.Mouse
	}
	if overlay.LogLevel != nil {
		merged.LogLevel = *overlay.LogLevel
	}

	for mode, entries := range overlay.Keybindings {
		target := mode
		for existing := range merged.Keybindings {
			if strings.EqualFold(existing, mode) {
				target = existing
				break
			}
		}
		if merged.Keybindings[target] == nil {
			merged.Keybindings[target] = make(map[string]string, len(entries))
		}
		for seq, action := range entries {
			merged.Keybindings[target][seq] = action
		}
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	if dir := osGetenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// GetDataDir returns the directory for the log file, honouring
// AUDIOSHELF_DATA and XDG_DATA_HOME.
func GetDataDir() (string, error) {
	if dir := osGetenv(EnvDataDir); dir != "" {
		return dir, nil
	}
	if xdg := osGetenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userDataDir), nil
}
