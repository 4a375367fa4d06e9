package bootstrap

import (
	"context"

	"github.com/bnema/quadchat/internal/application/port"
	"github.com/bnema/quadchat/internal/application/usecase"
	"github.com/bnema/quadchat/internal/domain/entity"
	"github.com/bnema/quadchat/internal/infrastructure/bridge"
	"github.com/bnema/quadchat/internal/infrastructure/config"
	"github.com/bnema/quadchat/internal/infrastructure/events"
	"github.com/bnema/quadchat/internal/infrastructure/layoutscript"
	"github.com/bnema/quadchat/internal/infrastructure/registry"
	"github.com/bnema/quadchat/internal/logging"
)

// Components holds the wired application graph shared with the GUI.
type Components struct {
	Registry *registry.Registry
	Bus      *events.Bus
	Router   *bridge.Router
	Renderer *layoutscript.Renderer

	InjectUC    *usecase.InjectLayoutUseCase
	ProvisionUC *usecase.ProvisionWebViewsUseCase
	ComposeUC   *usecase.ComposeQuadrantsUseCase
	DispatchUC  *usecase.DispatchURLsUseCase
	RelayoutUC  *usecase.RelayoutQuadrantsUseCase
	ApplyURLsUC *usecase.ApplyQuadURLsUseCase

	// Config returns the live configuration.
	Config func() *config.Config

	stopListening func()
}

// Wire builds every use case around a fresh registry and registers the
// bridge commands and the load-urls listener of the main window.
func Wire(ctx context.Context, renderer *layoutscript.Renderer, current func() *config.Config) (*Components, error) {
	if renderer == nil {
		renderer = layoutscript.NewRenderer("")
	}
	if current == nil {
		current = config.DefaultConfig
	}

	reg := registry.New()
	bus := events.NewBus(reg)

	c := &Components{
		Registry:    reg,
		Bus:         bus,
		Router:      bridge.NewRouter(),
		Renderer:    renderer,
		InjectUC:    usecase.NewInjectLayoutUseCase(reg, renderer),
		ProvisionUC: usecase.NewProvisionWebViewsUseCase(reg),
		ComposeUC:   usecase.NewComposeQuadrantsUseCase(reg),
		DispatchUC:  usecase.NewDispatchURLsUseCase(bus),
		RelayoutUC:  usecase.NewRelayoutQuadrantsUseCase(reg),
		ApplyURLsUC: usecase.NewApplyQuadURLsUseCase(reg),
		Config:      current,
	}

	if err := bridge.RegisterAll(ctx, c.Router, bridge.Config{
		ProvisionUC: c.ProvisionUC,
		DispatchUC:  c.DispatchUC,
		RelayoutUC:  c.RelayoutUC,
		Gap:         c.Gap,
	}); err != nil {
		return nil, err
	}

	c.stopListening = bus.Listen(port.MainWindowLabel, port.LoadURLsEvent, c.applyURLs)
	return c, nil
}

// Gap returns the gutter of the active layout mode. Direct mode children
// ignore it.
func (c *Components) Gap() float64 {
	return c.Config().Layout.Gap
}

func (c *Components) applyURLs(ctx context.Context, payload any) {
	log := logging.FromContext(ctx)

	urls, ok := payload.(entity.QuadURLs)
	if !ok {
		log.Warn().Type("payload", payload).Msg("unexpected load-urls payload")
		return
	}
	if _, err := c.ApplyURLsUC.Execute(ctx, port.MainWindowLabel, urls); err != nil {
		log.Warn().Err(err).Msg("failed to apply quad urls")
	}
}

// Close detaches listeners and forgets every registered window.
func (c *Components) Close() {
	if c.stopListening != nil {
		c.stopListening()
		c.stopListening = nil
	}
	c.Registry.UnregisterWindow(port.MainWindowLabel)
}
