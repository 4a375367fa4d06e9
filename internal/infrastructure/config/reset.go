package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ResetToDefaults overwrites the config file with the default configuration
// and reloads it. It returns the path written.
func (m *Manager) ResetToDefaults() (string, error) {
	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("failed to encode default config: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	path := m.GetConfigFile()
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	m.setDefaults()
	if err := m.reload(); err != nil {
		return path, fmt.Errorf("failed to reload config: %w", err)
	}
	return path, nil
}
