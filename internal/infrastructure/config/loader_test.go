package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/quadchat/internal/domain/entity"
)

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "QuadChat", mgr.viper.GetString("window.title"))
	assert.Equal(t, 1200, mgr.viper.GetInt("window.width"))
	assert.Equal(t, 900, mgr.viper.GetInt("window.height"))
	assert.Equal(t, "script", mgr.viper.GetString("layout.mode"))
	assert.Equal(t, 4.0, mgr.viper.GetFloat64("layout.gap"))
	assert.Equal(t, 500, mgr.viper.GetInt("layout.report_delay_ms"))
	assert.Equal(t, "Loading...", mgr.viper.GetString("layout.loading_text"))
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)

	require.NoError(t, mgr.Load())

	_, statErr := os.Stat(filepath.Join(dir, "config.toml"))
	require.NoError(t, statErr)

	cfg := mgr.Get()
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 500*time.Millisecond, cfg.Layout.ReportDelay())
}

func TestLoad_ReadsFileAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	content := `
[window]
title = "  Chats  "
width = 800
height = 600

[layout]
mode = "DIRECT"
gap = 8
loading_text = "Please wait"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "Chats", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, entity.LayoutModeDirect, cfg.Layout.Mode)
	assert.Equal(t, 8.0, cfg.Layout.Gap)
	assert.Equal(t, 500, cfg.Layout.ReportDelayMS)
	assert.Equal(t, "Please wait", cfg.Layout.ScriptOptions().LoadingText)
}

func TestLoad_EnvOverridesLogging(t *testing.T) {
	t.Setenv("QUADCHAT_LOG_LEVEL", "debug")
	t.Setenv("QUADCHAT_LOG_FORMAT", "json")

	mgr, err := NewManagerWithDir(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, "debug", mgr.Get().Logging.Level)
	assert.Equal(t, "json", mgr.Get().Logging.Format)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	content := `
[window]
width = 0

[layout]
gap = -1
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window.width must be positive")
	assert.Contains(t, err.Error(), "layout.gap must be non-negative")
}

func TestGet_BeforeLoadReturnsDefaults(t *testing.T) {
	mgr, err := NewManagerWithDir(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.Title = ""
	cfg.Layout.Mode = entity.LayoutMode("grid")
	cfg.Logging.Level = " WARN "
	cfg.Logging.Format = "xml"

	normalizeConfig(cfg)

	assert.Equal(t, "QuadChat", cfg.Window.Title)
	assert.Equal(t, entity.LayoutModeScript, cfg.Layout.Mode)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestValidateConfig_UnknownLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"

	err := validateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestReload_NotifiesCallbacks(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var titles []string
	mgr.OnConfigChange(func(cfg *Config) {
		titles = append(titles, cfg.Window.Title)
	})

	require.NoError(t, os.WriteFile(mgr.GetConfigFile(), []byte("[window]\ntitle = \"Renamed\"\n"), 0o644))

	mgr.mu.Lock()
	require.NoError(t, mgr.reload())
	mgr.notifyCallbacksLocked()

	assert.Equal(t, []string{"Renamed"}, titles)
	assert.Equal(t, "Renamed", mgr.Get().Window.Title)
}

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "QuadChat Configuration", doc["title"])

	path, err := (&Manager{dir: t.TempDir()}).WriteSchemaFile()
	require.NoError(t, err)
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(written))
}

func TestGetConfigDir_XDG(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := GetConfigDir()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg/quadchat", dir)
}

func TestResetToDefaults_OverwritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\ntitle = \"Custom\"\nwidth = 640\nheight = 480\n"), 0o644))

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	require.Equal(t, "Custom", mgr.Get().Window.Title)

	written, err := mgr.ResetToDefaults()
	require.NoError(t, err)
	assert.Equal(t, path, written)
	assert.Equal(t, DefaultConfig(), mgr.Get())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "QuadChat")
	assert.NotContains(t, string(data), "Custom")
}

func TestLoggingConfig_FileSink(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")

	sink, err := LoggingConfig{EnableFileLog: true, MaxSizeMB: 5, MaxBackups: 2}.FileSink()
	require.NoError(t, err)
	assert.True(t, sink.Enabled)
	assert.Equal(t, filepath.Join("/tmp/state", "quadchat", "logs"), sink.Dir)
	assert.Equal(t, 5, sink.MaxSizeMB)

	sink, err = LoggingConfig{EnableFileLog: true, LogDir: "/var/log/quadchat", MaxSizeMB: 1}.FileSink()
	require.NoError(t, err)
	assert.Equal(t, "/var/log/quadchat", sink.Dir)

	sink, err = LoggingConfig{}.FileSink()
	require.NoError(t, err)
	assert.False(t, sink.Enabled)
	assert.Empty(t, sink.Dir)
}

func TestValidateConfig_FileLogNeedsSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.EnableFileLog = true
	cfg.Logging.MaxSizeMB = 0

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.max_size_mb")
}
