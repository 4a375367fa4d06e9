package config

import (
	"fmt"
	"strings"

	"github.com/bnema/quadchat/internal/domain/entity"
)

// normalizeConfig folds case and replaces unknown enum values with defaults.
func normalizeConfig(config *Config) {
	config.Window.Title = strings.TrimSpace(config.Window.Title)
	if config.Window.Title == "" {
		config.Window.Title = defaultTitle
	}

	switch entity.LayoutMode(strings.ToLower(strings.TrimSpace(string(config.Layout.Mode)))) {
	case entity.LayoutModeDirect:
		config.Layout.Mode = entity.LayoutModeDirect
	default:
		config.Layout.Mode = entity.LayoutModeScript
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}
}

// validateConfig performs validation of configuration values.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.Width <= 0 {
		validationErrors = append(validationErrors, "window.width must be positive")
	}
	if config.Window.Height <= 0 {
		validationErrors = append(validationErrors, "window.height must be positive")
	}
	return validationErrors
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	if !config.Layout.Mode.Valid() {
		validationErrors = append(validationErrors, fmt.Sprintf("layout.mode must be %q or %q", entity.LayoutModeScript, entity.LayoutModeDirect))
	}
	if config.Layout.Gap < 0 {
		validationErrors = append(validationErrors, "layout.gap must be non-negative")
	}
	if config.Layout.ReportDelayMS < 0 {
		validationErrors = append(validationErrors, "layout.report_delay_ms must be non-negative")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a known level", config.Logging.Level))
	}
	if config.Logging.EnableFileLog && config.Logging.MaxSizeMB <= 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be positive when file logging is enabled")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}
