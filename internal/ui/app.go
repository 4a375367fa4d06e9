package ui

import (
	"context"
	_ "embed"
	"sync"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/quadchat/internal/application/port"
	"github.com/bnema/quadchat/internal/application/usecase"
	"github.com/bnema/quadchat/internal/domain/entity"
	"github.com/bnema/quadchat/internal/infrastructure/config"
	"github.com/bnema/quadchat/internal/logging"
	"github.com/bnema/quadchat/internal/ui/window"
	"github.com/bnema/quadchat/pkg/webkit"
)

const (
	// AppID is the application identifier for GTK.
	AppID = "com.github.bnema.quadchat"

	// responseEvent carries command results back to the page.
	responseEvent = "quadchat:response"
	hostBaseURI   = "quadchat://host/"
)

//go:embed host.html
var hostPage string

// App wraps the GTK Application and manages the window lifecycle.
type App struct {
	deps       *Dependencies
	gtkApp     *gtk.Application
	mainWindow *window.MainWindow

	layoutOnce sync.Once
	mu         sync.RWMutex
	cfg        *config.Config
}

// New creates a new App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return &App{
		deps: deps,
		cfg:  deps.Config,
	}, nil
}

// Run starts the GTK main loop and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating GTK application")

	a.gtkApp = gtk.NewApplication(AppID, gio.ApplicationFlagsNone)
	if a.gtkApp == nil {
		log.Error().Msg("failed to create GTK application")
		return 1
	}

	a.gtkApp.ConnectActivate(func() {
		a.onActivate(ctx)
	})
	a.gtkApp.ConnectShutdown(func() {
		a.onShutdown(ctx)
	})

	log.Info().Str("mode", string(a.deps.layoutMode())).Msg("starting GTK main loop")
	return a.gtkApp.Run(args)
}

func (a *App) currentConfig() *config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cfg
}

// onActivate is called when the GTK application is activated.
func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application activated")

	ctx = logging.WithWindow(ctx, port.MainWindowLabel)
	if err := a.createMainWindow(ctx); err != nil {
		log.Error().Err(err).Msg("failed to create main window")
		return
	}
	if err := a.initBridge(ctx); err != nil {
		log.Error().Err(err).Msg("failed to install script bridge")
		return
	}
	a.initRelayout(ctx)
	a.initLayout(ctx)
	a.finalizeActivation(ctx)
}

func (a *App) createMainWindow(ctx context.Context) error {
	cfg := a.currentConfig()
	mainWindow, err := window.New(ctx, a.gtkApp, window.Options{
		Label:  port.MainWindowLabel,
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})
	if err != nil {
		return err
	}
	a.mainWindow = mainWindow
	return a.deps.Components.Registry.RegisterWindow(mainWindow)
}

// initBridge installs the document-start shim and routes posted messages to
// the command router. Results go back to the page as a CustomEvent.
func (a *App) initBridge(ctx context.Context) error {
	page := a.mainWindow.Page()
	components := a.deps.Components

	if err := page.AddDocumentStartScript(a.deps.BridgeScript); err != nil {
		return err
	}

	bridgeCtx := logging.WithComponent(ctx, "bridge")
	return page.RegisterMessageHandler(ctx, components.Renderer.HandlerName(), func(raw []byte) {
		resp, err := components.Router.Dispatch(bridgeCtx, raw)
		reply := map[string]any{"ok": err == nil, "result": resp}
		if err != nil {
			reply["error"] = err.Error()
		}
		if dispatchErr := page.DispatchCustomEvent(bridgeCtx, responseEvent, reply); dispatchErr != nil {
			logging.FromContext(bridgeCtx).Warn().Err(dispatchErr).Msg("failed to deliver command response")
		}
	})
}

func (a *App) initRelayout(ctx context.Context) {
	log := logging.FromContext(ctx)
	relayout := a.deps.Components.RelayoutUC

	a.mainWindow.OnResize(func(size entity.Size) {
		if _, err := relayout.Execute(ctx, usecase.RelayoutInput{
			Size: size,
			Gap:  a.currentConfig().Layout.Gap,
		}); err != nil {
			log.Warn().Err(err).Msg("relayout after resize failed")
		}
	})
}

// initLayout loads the host page and builds the quadrants once it has
// finished loading.
func (a *App) initLayout(ctx context.Context) {
	log := logging.FromContext(ctx)
	page := a.mainWindow.Page()
	mode := a.deps.layoutMode()

	page.OnLoadFinished(func() {
		a.layoutOnce.Do(func() {
			a.buildQuadrants(ctx, mode)
		})
	})

	if err := page.LoadHTML(hostPage, hostBaseURI); err != nil {
		log.Error().Err(err).Msg("failed to load host page")
	}
}

func (a *App) buildQuadrants(ctx context.Context, mode entity.LayoutMode) {
	log := logging.FromContext(ctx).With().Str("mode", string(mode)).Logger()
	components := a.deps.Components

	switch mode {
	case entity.LayoutModeDirect:
		out, err := components.ComposeUC.Execute(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to compose quadrants")
			return
		}
		log.Info().Int("views", len(out.Created)).Msg("quadrants composed")
	default:
		err := components.InjectUC.Execute(ctx, usecase.InjectLayoutInput{
			WindowLabel: port.MainWindowLabel,
			Options:     a.currentConfig().Layout.ScriptOptions(),
		})
		if err != nil {
			log.Error().Err(err).Msg("layout injection failed")
		}
	}
}

func (a *App) finalizeActivation(ctx context.Context) {
	log := logging.FromContext(ctx)

	a.mainWindow.Show()
	log.Info().Msg("main window displayed")

	a.initConfigWatcher(ctx)
}

func (a *App) initConfigWatcher(ctx context.Context) {
	log := logging.FromContext(ctx)

	mgr := a.deps.ConfigManager
	if mgr == nil {
		log.Debug().Msg("no config manager available, skipping watcher")
		return
	}
	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("failed to start config watcher")
		return
	}

	mgr.OnConfigChange(func(newCfg *config.Config) {
		webkit.RunOnMainThread(func() {
			a.applyConfig(ctx, newCfg)
		})
	})
	log.Debug().Msg("config watcher initialized")
}

// applyConfig applies the live-reloadable settings: the title and the gap.
// A gap change updates the page grid and moves the children to match.
func (a *App) applyConfig(ctx context.Context, cfg *config.Config) {
	log := logging.FromContext(ctx)

	a.mu.Lock()
	previous := a.cfg
	a.cfg = cfg
	a.mu.Unlock()

	if a.mainWindow == nil {
		return
	}
	if previous == nil || previous.Window.Title != cfg.Window.Title {
		a.mainWindow.SetTitle(cfg.Window.Title)
		log.Info().Str("title", cfg.Window.Title).Msg("window title updated")
	}
	if previous == nil || previous.Layout.Gap != cfg.Layout.Gap {
		if a.deps.layoutMode() == entity.LayoutModeScript {
			if err := a.deps.Components.InjectUC.UpdateGap(ctx, port.MainWindowLabel, cfg.Layout.Gap); err != nil {
				log.Warn().Err(err).Msg("failed to update grid gap")
			}
		}
		if _, err := a.deps.Components.RelayoutUC.Execute(ctx, usecase.RelayoutInput{Gap: cfg.Layout.Gap}); err != nil {
			log.Warn().Err(err).Msg("relayout after config change failed")
		}
	}
}

// onShutdown is called when the GTK application is shutting down.
func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application shutting down")

	if a.mainWindow != nil {
		a.mainWindow.Destroy()
	}
	a.deps.Components.Close()

	log.Info().Msg("application shutdown complete")
}

// Quit asks GTK to quit the application.
func (a *App) Quit() {
	if a.gtkApp != nil {
		a.gtkApp.Quit()
	}
}
