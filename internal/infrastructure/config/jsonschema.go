package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// Schema reflects the JSON schema of Config.
func Schema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/quadchat/config.schema.json"
	schema.Title = "QuadChat Configuration"
	schema.Description = "Configuration schema for QuadChat, a four-pane chat window"
	return schema
}

// SchemaJSON returns the indented JSON form of Schema.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes config.schema.json next to config.toml and returns
// its path.
func (m *Manager) WriteSchemaFile() (string, error) {
	data, err := SchemaJSON()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return "", err
	}

	path := filepath.Join(m.dir, schemaFileName)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return path, nil
}
