// Package globalconfig provides global configuration management for tabapps.
package globalconfig

import (
	"os"
	"path/filepath"
)

const (
	// ConfigDirName is the name of the config directory under ~/.config.
	ConfigDirName = "tabapps"
	// ConfigFileName is the name of the main config file.
	ConfigFileName = "config.yaml"
	// StateDirName is the name of the state subdirectory.
	StateDirName = "state"
	// ManifestFileName is the name of the install manifest file.
	ManifestFileName = "installed.json"
)

// GetConfigDir returns the config directory path (~/.config/tabapps).
// Respects XDG_CONFIG_HOME if set.
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDirName), nil
}

// GetConfigPath returns the full path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// GetStateDir returns the path to the state directory.
func GetStateDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, StateDirName), nil
}

// GetManifestPath returns the path to the install manifest file.
func GetManifestPath() (string, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, ManifestFileName), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}
	// Also ensure state directory exists
	stateDir, err := GetStateDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(stateDir, 0755)
}
