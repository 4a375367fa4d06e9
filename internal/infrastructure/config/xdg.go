package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "quadchat"
	configFileName = "config.toml"
	schemaFileName = "config.schema.json"
	dirPerm        = 0o755
	filePerm       = 0o644
)

// GetConfigDir returns $XDG_CONFIG_HOME/quadchat, defaulting to
// ~/.config/quadchat. ENV=dev selects ./.dev/quadchat.
func GetConfigDir() (string, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, ".dev", appName), nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// GetConfigFile returns the path of the TOML config file.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// GetLogDir returns $XDG_STATE_HOME/quadchat/logs, defaulting to
// ~/.local/state/quadchat/logs.
func GetLogDir() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateHome = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateHome, appName, "logs"), nil
}
