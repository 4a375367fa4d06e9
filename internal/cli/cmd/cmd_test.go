package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/quadchat/internal/domain/entity"
)

func executeCommand(t *testing.T, args ...string) string {
	t.Helper()

	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("ENV", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		geometryWidth, geometryHeight, geometryGap = 0, 0, 0
		configSchemaWrite, configResetYes = false, false
	})

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestConfigPath_CreatesDefaultFile(t *testing.T) {
	out := executeCommand(t, "config", "path")

	path := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "quadchat", "config.toml")
	assert.Contains(t, out, path)
	assert.Contains(t, out, "exists")
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestConfigSchema_PrintsJSON(t *testing.T) {
	out := executeCommand(t, "config", "schema")

	assert.Contains(t, out, `"layout"`)
	assert.Contains(t, out, `"report_delay_ms"`)
}

func TestConfigReset_WithYes(t *testing.T) {
	out := executeCommand(t, "config", "reset", "--yes")

	assert.Contains(t, out, "Config reset to defaults")
	assert.Equal(t, "QuadChat", GetApp().Manager.Get().Window.Title)
}

func TestTargets_ListsBothTables(t *testing.T) {
	out := executeCommand(t, "targets")

	assert.Contains(t, out, "Script layout")
	assert.Contains(t, out, "Direct layout")
	assert.Contains(t, out, "webview1")
	assert.Contains(t, out, "main4")
	for _, target := range entity.DirectTargets {
		assert.Contains(t, out, target.URL)
	}
}

func TestGeometry_DefaultsToConfiguredWindow(t *testing.T) {
	out := executeCommand(t, "geometry")

	assert.Contains(t, out, "1200x900")
	assert.Contains(t, out, "no gutter")
	assert.Contains(t, out, "600")
	assert.Contains(t, out, "450")
}

func TestGeometry_WithGap(t *testing.T) {
	out := executeCommand(t, "geometry", "--width", "1000", "--height", "800", "--gap", "4")

	assert.Contains(t, out, "1000x800")
	assert.Contains(t, out, "gap 4px")
	assert.Contains(t, out, "498")
	assert.Contains(t, out, "502")
}

func TestParseLayoutFlag(t *testing.T) {
	mode, err := parseLayoutFlag("")
	require.NoError(t, err)
	assert.Equal(t, entity.LayoutMode(""), mode)

	mode, err = parseLayoutFlag(" Direct ")
	require.NoError(t, err)
	assert.Equal(t, entity.LayoutModeDirect, mode)

	_, err = parseLayoutFlag("floating")
	assert.Error(t, err)
}
