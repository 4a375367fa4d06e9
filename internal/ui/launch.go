package ui

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/quadchat/internal/bootstrap"
	"github.com/bnema/quadchat/internal/domain/entity"
	"github.com/bnema/quadchat/internal/infrastructure/config"
	"github.com/bnema/quadchat/internal/infrastructure/layoutscript"
	"github.com/bnema/quadchat/internal/logging"
)

// LaunchOptions configures a GUI run.
type LaunchOptions struct {
	Manager *config.Manager
	// Mode overrides the configured layout mode when valid.
	Mode entity.LayoutMode
	Args []string
}

// Launch initializes the component graph and runs the GUI until it exits.
// It returns the process exit code.
func Launch(ctx context.Context, opts LaunchOptions) int {
	log := logging.FromContext(ctx)
	if opts.Manager == nil {
		log.Error().Msg("launch requires a config manager")
		return 1
	}

	renderer := layoutscript.NewRenderer(layoutscript.DefaultHandlerName)
	initResult, err := bootstrap.RunParallelInit(ctx, bootstrap.ParallelInitInput{
		Manager:  opts.Manager,
		Renderer: renderer,
	})
	if err != nil {
		log.Error().Err(err).Msg("initialization failed")
		return 1
	}

	cfg := initResult.Config
	ctx, closeLog := initLogger(ctx, cfg)
	defer closeLog()
	defer logging.LogPanic(ctx)
	log = logging.FromContext(ctx)
	log.Debug().Str("schema", initResult.SchemaFile).Dur("duration", initResult.Duration).Msg("config loaded")

	components, err := bootstrap.Wire(ctx, renderer, opts.Manager.Get)
	if err != nil {
		log.Error().Err(err).Msg("failed to wire components")
		return 1
	}

	app, err := New(&Dependencies{
		Ctx:           ctx,
		Config:        cfg,
		ConfigManager: opts.Manager,
		Components:    components,
		BridgeScript:  initResult.BridgeScript,
		Mode:          opts.Mode,
	})
	if err != nil {
		components.Close()
		log.Error().Err(err).Msg("failed to create application")
		return 1
	}

	setupSignalHandler(ctx, app)
	return app.Run(ctx, opts.Args)
}

// initLogger replaces the bootstrap logger with one built from cfg. A log
// file that cannot be opened degrades to stderr only.
func initLogger(ctx context.Context, cfg *config.Config) (context.Context, func()) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	logCfg.Format = cfg.Logging.Format

	sink, err := cfg.Logging.FileSink()
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("cannot resolve log directory")
		sink.Enabled = false
	}

	logger, cleanup, err := logging.NewWithFile(logCfg, sink)
	if err != nil {
		logger.Warn().Err(err).Str("dir", sink.Dir).Msg("file logging disabled")
	}
	return logging.WithContext(ctx, logger), cleanup
}

func setupSignalHandler(ctx context.Context, app *App) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
		app.Quit()
	}()
}
