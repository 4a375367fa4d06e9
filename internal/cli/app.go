// Package cli provides the quadchat command line application.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/quadchat/internal/cli/styles"
	"github.com/bnema/quadchat/internal/domain/build"
	"github.com/bnema/quadchat/internal/infrastructure/config"
	"github.com/bnema/quadchat/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// LoadErr is set when the config file could not be loaded and defaults
	// are in use.
	LoadErr error

	ctx context.Context
}

// NewApp creates a new CLI application. A config file that fails to load
// falls back to defaults rather than failing the command.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}

	cfg := config.DefaultConfig()
	loadErr := mgr.Load()
	if loadErr == nil {
		cfg = mgr.Get()
	}

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		LoadErr: loadErr,
		ctx:     ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
