package config

import (
	"time"

	"github.com/bnema/quadchat/internal/application/port"
	"github.com/bnema/quadchat/internal/domain/entity"
	"github.com/bnema/quadchat/internal/logging"
)

// Config represents the complete configuration for quadchat.
type Config struct {
	Window  WindowConfig  `mapstructure:"window" toml:"window" json:"window"`
	Layout  LayoutConfig  `mapstructure:"layout" toml:"layout" json:"layout"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
}

// WindowConfig controls the host window.
type WindowConfig struct {
	// Title is applied live on config reload.
	Title  string `mapstructure:"title" toml:"title" json:"title" jsonschema:"description=Host window title"`
	Width  int    `mapstructure:"width" toml:"width" json:"width" jsonschema:"minimum=1,description=Initial window width in pixels"`
	Height int    `mapstructure:"height" toml:"height" json:"height" jsonschema:"minimum=1,description=Initial window height in pixels"`
}

// LayoutConfig controls how the quadrants are built.
type LayoutConfig struct {
	Mode          entity.LayoutMode `mapstructure:"mode" toml:"mode" json:"mode" jsonschema:"enum=script,enum=direct,description=script rebuilds the page into a grid; direct places views at computed coordinates"`
	Gap           float64           `mapstructure:"gap" toml:"gap" json:"gap" jsonschema:"minimum=0,description=Gutter between quadrants in pixels"`
	ReportDelayMS int               `mapstructure:"report_delay_ms" toml:"report_delay_ms" json:"report_delay_ms" jsonschema:"minimum=0,description=Delay before the page reports quadrant positions"`
	LoadingText   string            `mapstructure:"loading_text" toml:"loading_text" json:"loading_text" jsonschema:"description=Placeholder shown in each quadrant"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`

	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log" jsonschema:"description=Also write JSON logs to a rotating file"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir" jsonschema:"description=Log file directory; empty selects the XDG state directory"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
}

// ReportDelay returns the position report delay as a duration.
func (c LayoutConfig) ReportDelay() time.Duration {
	return time.Duration(c.ReportDelayMS) * time.Millisecond
}

// ScriptOptions maps the layout section onto layout script options.
func (c LayoutConfig) ScriptOptions() port.LayoutScriptOptions {
	return port.LayoutScriptOptions{
		Gap:         c.Gap,
		ReportDelay: c.ReportDelay(),
		LoadingText: c.LoadingText,
	}
}

// FileSink maps the logging section onto the log file sink settings. An
// empty log_dir resolves to GetLogDir.
func (c LoggingConfig) FileSink() (logging.FileConfig, error) {
	dir := c.LogDir
	if c.EnableFileLog && dir == "" {
		var err error
		if dir, err = GetLogDir(); err != nil {
			return logging.FileConfig{}, err
		}
	}
	return logging.FileConfig{
		Enabled:    c.EnableFileLog,
		Dir:        dir,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
	}, nil
}
