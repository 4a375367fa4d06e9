package config

import "github.com/bnema/quadchat/internal/domain/entity"

const (
	defaultTitle         = "QuadChat"
	defaultWidth         = 1200
	defaultHeight        = 900
	defaultReportDelayMS = 500
	defaultLoadingText   = "Loading..."
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  defaultTitle,
			Width:  defaultWidth,
			Height: defaultHeight,
		},
		Layout: LayoutConfig{
			Mode:          entity.LayoutModeScript,
			Gap:           entity.DefaultGutter,
			ReportDelayMS: defaultReportDelayMS,
			LoadingText:   defaultLoadingText,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
	}
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setWindowDefaults(defaults)
	m.setLayoutDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setWindowDefaults(defaults *Config) {
	m.viper.SetDefault("window.title", defaults.Window.Title)
	m.viper.SetDefault("window.width", defaults.Window.Width)
	m.viper.SetDefault("window.height", defaults.Window.Height)
}

func (m *Manager) setLayoutDefaults(defaults *Config) {
	m.viper.SetDefault("layout.mode", string(defaults.Layout.Mode))
	m.viper.SetDefault("layout.gap", defaults.Layout.Gap)
	m.viper.SetDefault("layout.report_delay_ms", defaults.Layout.ReportDelayMS)
	m.viper.SetDefault("layout.loading_text", defaults.Layout.LoadingText)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}
