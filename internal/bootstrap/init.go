// Package bootstrap assembles quadchat's components before the GUI starts.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/quadchat/internal/infrastructure/config"
	"github.com/bnema/quadchat/internal/infrastructure/layoutscript"
	"github.com/bnema/quadchat/internal/logging"
)

// ParallelInitInput holds the input for parallel initialization.
type ParallelInitInput struct {
	Manager  *config.Manager
	Renderer *layoutscript.Renderer
}

// ParallelInitResult holds the results of parallel initialization.
type ParallelInitResult struct {
	Config       *config.Config
	BridgeScript string
	SchemaFile   string
	Duration     time.Duration
}

// RunParallelInit loads the configuration, renders the bridge shim and
// refreshes the config schema file concurrently. A schema write failure is
// logged, the others are fatal.
func RunParallelInit(ctx context.Context, input ParallelInitInput) (*ParallelInitResult, error) {
	log := logging.FromContext(ctx)
	start := time.Now()
	result := &ParallelInitResult{}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := input.Manager.Load(); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		result.Config = input.Manager.Get()
		return nil
	})

	g.Go(func() error {
		script, err := input.Renderer.RenderBridge()
		if err != nil {
			return fmt.Errorf("render bridge: %w", err)
		}
		result.BridgeScript = script
		return nil
	})

	g.Go(func() error {
		path, err := input.Manager.WriteSchemaFile()
		if err != nil {
			log.Warn().Err(err).Msg("failed to write config schema")
			return nil
		}
		result.SchemaFile = path
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	log.Debug().Dur("duration", result.Duration).Msg("parallel init complete")
	return result, nil
}
