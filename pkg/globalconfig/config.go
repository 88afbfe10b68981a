// Package globalconfig provides global configuration management for tabapps.
// Configuration is stored at ~/.config/tabapps/config.yaml and holds the
// paths the tool reads from and writes to.
package globalconfig

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Version is the current config schema version.
const Version = "1.0"

// Default locations, matching the paths the installer has always used.
const (
	DefaultCatalogPath  = "/etc/tablet-apps/apps.json"
	DefaultAppDataDir   = "/data/data"
	DefaultShortcutsDir = "/usr/share/applications/tablet-apps"
)

// ErrNotInitialized is returned when the config file doesn't exist yet.
var ErrNotInitialized = errors.New("tabapps config not found")

// Config represents the global tabapps configuration.
type Config struct {
	Version      string `yaml:"version"`
	CatalogPath  string `yaml:"catalog_path"`  // App catalog JSON file
	AppDataDir   string `yaml:"app_data_dir"`  // Base dir for per-app tablet configs
	ShortcutsDir string `yaml:"shortcuts_dir"` // Desktop shortcut output dir
}

// NewConfig creates a new Config with defaults.
func NewConfig() *Config {
	return &Config{
		Version:      Version,
		CatalogPath:  DefaultCatalogPath,
		AppDataDir:   DefaultAppDataDir,
		ShortcutsDir: DefaultShortcutsDir,
	}
}

// Load loads the config from ~/.config/tabapps/config.yaml.
// Returns ErrNotInitialized if the config file doesn't exist.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotInitialized
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Fill in defaults for fields the file omits
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = DefaultCatalogPath
	}
	if cfg.AppDataDir == "" {
		cfg.AppDataDir = DefaultAppDataDir
	}
	if cfg.ShortcutsDir == "" {
		cfg.ShortcutsDir = DefaultShortcutsDir
	}

	return &cfg, nil
}

// LoadOrCreate loads the config if it exists, or returns a new one with
// defaults. The new config is not persisted until Save is called.
func LoadOrCreate() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		if errors.Is(err, ErrNotInitialized) {
			return NewConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Save saves the config to ~/.config/tabapps/config.yaml.
func (c *Config) Save() error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
