package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/quadchat/internal/application/port"
	"github.com/bnema/quadchat/internal/domain/entity"
	"github.com/bnema/quadchat/internal/logging"
)

// ComposeQuadrantsUseCase builds the four child views directly at computed
// coordinates, without a round trip through the page.
type ComposeQuadrantsUseCase struct {
	registry port.ViewRegistry
	targets  [entity.QuadrantCount]entity.ChatTarget
}

// NewComposeQuadrantsUseCase creates a composer using entity.DirectTargets.
func NewComposeQuadrantsUseCase(registry port.ViewRegistry) *ComposeQuadrantsUseCase {
	return &ComposeQuadrantsUseCase{
		registry: registry,
		targets:  entity.DirectTargets,
	}
}

// ComposeQuadrantsOutput lists the created views in slot order.
type ComposeQuadrantsOutput struct {
	Created []port.ChildView
	// Existing lists slots that were already composed and were left alone.
	Existing []port.ChildView
}

// Execute splits the main window into four gutterless quadrants and embeds
// one auto-resizing view per quadrant. The first failure aborts the call.
func (uc *ComposeQuadrantsUseCase) Execute(ctx context.Context) (*ComposeQuadrantsOutput, error) {
	log := logging.FromContext(ctx)

	window, ok := uc.registry.Window(port.MainWindowLabel)
	if !ok {
		log.Error().Msg("cannot compose quadrants: main window not found")
		return nil, ErrMainWindowNotFound
	}

	size := window.Size()
	rects := entity.ComputeQuadrants(size)

	out := &ComposeQuadrantsOutput{Created: make([]port.ChildView, 0, entity.QuadrantCount)}
	for i, rect := range rects {
		slot := entity.Slot(i)
		target := uc.targets[i]
		spec := port.ChildViewSpec{
			ID:         entity.DirectViewID(slot),
			Title:      target.Title,
			URL:        target.URL,
			Bounds:     rect,
			Slot:       slot,
			AutoResize: true,
		}

		if existing, ok := uc.registry.Child(window.Label(), spec.ID); ok {
			log.Debug().Str("view_id", spec.ID).Msg("quadrant already composed")
			out.Existing = append(out.Existing, existing)
			continue
		}

		child, err := window.AddChild(ctx, spec)
		if err != nil {
			return out, fmt.Errorf("add %s at %s: %w", spec.ID, slot, err)
		}
		if err := registerChild(logging.WithViewID(ctx, spec.ID), uc.registry, window, child); err != nil {
			return out, fmt.Errorf("register %s: %w", spec.ID, err)
		}
		out.Created = append(out.Created, child)
	}

	log.Info().
		Float64("width", size.Width).
		Float64("height", size.Height).
		Int("views", len(out.Created)).
		Msg("quadrants composed")
	return out, nil
}
