package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/quadchat/internal/application/port"
	"github.com/bnema/quadchat/internal/application/usecase"
	"github.com/bnema/quadchat/internal/domain/entity"
	"github.com/bnema/quadchat/internal/logging"
)

// Command names accepted from the page.
const (
	CmdLoadURLs               = "load_urls"
	CmdGetQuadrantPositions   = "get_quadrant_positions"
	CmdCreateEmbeddedWebViews = "create_embedded_webviews"
	CmdRelayoutQuadrants      = "relayout_quadrants"
)

// Config holds all dependencies for command handlers.
type Config struct {
	ProvisionUC *usecase.ProvisionWebViewsUseCase
	DispatchUC  *usecase.DispatchURLsUseCase
	RelayoutUC  *usecase.RelayoutQuadrantsUseCase
	// Gap returns the current gutter; read on every relayout so config
	// reloads apply.
	Gap func() float64
}

type loadURLsArgs struct {
	URLs entity.QuadURLs `json:"urls"`
}

type positionsArgs struct {
	Positions []entity.QuadrantPosition `json:"positions"`
}

type relayoutArgs struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RegisterAll registers every command whose use case is configured.
func RegisterAll(ctx context.Context, router *Router, cfg Config) error {
	log := logging.FromContext(ctx).With().Str("component", "bridge").Logger()

	if cfg.DispatchUC != nil {
		if err := router.RegisterHandler(CmdLoadURLs, HandlerFunc(loadURLsHandler(cfg.DispatchUC))); err != nil {
			return err
		}
	}
	if cfg.ProvisionUC != nil {
		if err := router.RegisterHandler(CmdGetQuadrantPositions, HandlerFunc(reportPositionsHandler(cfg.ProvisionUC))); err != nil {
			return err
		}
		if err := router.RegisterHandler(CmdCreateEmbeddedWebViews, HandlerFunc(createWebViewsHandler(cfg.ProvisionUC))); err != nil {
			return err
		}
	}
	if cfg.RelayoutUC != nil {
		gap := cfg.Gap
		if gap == nil {
			gap = func() float64 { return entity.DefaultGutter }
		}
		if err := router.RegisterHandler(CmdRelayoutQuadrants, HandlerFunc(relayoutHandler(cfg.RelayoutUC, gap))); err != nil {
			return err
		}
	}

	log.Info().Strs("commands", router.Commands()).Msg("registered bridge commands")
	return nil
}

func loadURLsHandler(uc *usecase.DispatchURLsUseCase) HandlerFunc {
	return func(ctx context.Context, args json.RawMessage) (any, error) {
		var in loadURLsArgs
		if err := json.Unmarshal(args, &in); err != nil {
			return nil, fmt.Errorf("invalid %s args: %w", CmdLoadURLs, err)
		}
		if err := uc.Execute(ctx, port.MainWindowLabel, in.URLs); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

// reportPositionsHandler is the page's fire-and-forget report. Failures are
// logged only.
func reportPositionsHandler(uc *usecase.ProvisionWebViewsUseCase) HandlerFunc {
	return func(ctx context.Context, args json.RawMessage) (any, error) {
		log := logging.FromContext(ctx)

		var in positionsArgs
		if err := json.Unmarshal(args, &in); err != nil {
			log.Error().Err(err).Msg("invalid quadrant positions")
			return nil, nil
		}

		out, err := uc.Execute(ctx, in.Positions)
		if err != nil {
			log.Error().Err(err).Msg("failed to create embedded webviews")
			return nil, nil
		}
		if out.Failures != nil {
			log.Warn().Err(out.Failures).
				Int("created", len(out.Created)).
				Int("existing", len(out.Existing)).
				Msg("some webviews could not be created")
		}
		return nil, nil
	}
}

func createWebViewsHandler(uc *usecase.ProvisionWebViewsUseCase) HandlerFunc {
	return func(ctx context.Context, args json.RawMessage) (any, error) {
		var in positionsArgs
		if err := json.Unmarshal(args, &in); err != nil {
			return nil, fmt.Errorf("invalid %s args: %w", CmdCreateEmbeddedWebViews, err)
		}
		if _, err := uc.Execute(ctx, in.Positions); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

func relayoutHandler(uc *usecase.RelayoutQuadrantsUseCase, gap func() float64) HandlerFunc {
	return func(ctx context.Context, args json.RawMessage) (any, error) {
		var in relayoutArgs
		if err := json.Unmarshal(args, &in); err != nil {
			return nil, fmt.Errorf("invalid %s args: %w", CmdRelayoutQuadrants, err)
		}
		out, err := uc.Execute(ctx, usecase.RelayoutInput{
			Size: entity.Size{Width: in.Width, Height: in.Height},
			Gap:  gap(),
		})
		if err != nil {
			return nil, err
		}
		return map[string]any{"moved": out.Moved}, nil
	}
}
