package usecase

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/bnema/quadchat/internal/application/port"
	"github.com/bnema/quadchat/internal/domain/entity"
	"github.com/bnema/quadchat/internal/logging"
)

// ProvisionWebViewsUseCase creates one child web view per reported quadrant.
type ProvisionWebViewsUseCase struct {
	registry port.ViewRegistry
	targets  [entity.QuadrantCount]entity.ChatTarget
}

// NewProvisionWebViewsUseCase creates a provisioner using entity.ProvisionTargets.
func NewProvisionWebViewsUseCase(registry port.ViewRegistry) *ProvisionWebViewsUseCase {
	return &ProvisionWebViewsUseCase{
		registry: registry,
		targets:  entity.ProvisionTargets,
	}
}

// ProvisionWebViewsOutput reports what was created.
type ProvisionWebViewsOutput struct {
	Created []port.ChildView
	// Existing lists views that were already provisioned. They are moved to
	// the reported position instead of being created again.
	Existing []port.ChildView
	// Failures collects per-view errors. Nil when every view was created.
	Failures *multierror.Error
}

// Execute creates up to four child views in the main window, one per
// position, in order. Positions beyond the fourth are ignored. A failed view
// is logged and skipped; the call still succeeds. Only a missing main window
// fails the call, before anything is created. Calling it again never stacks
// a second set of views over the first.
func (uc *ProvisionWebViewsUseCase) Execute(ctx context.Context, positions []entity.QuadrantPosition) (*ProvisionWebViewsOutput, error) {
	log := logging.FromContext(ctx)

	window, ok := uc.registry.Window(port.MainWindowLabel)
	if !ok {
		log.Error().Msg("cannot provision webviews: main window not found")
		return nil, ErrMainWindowNotFound
	}

	out := &ProvisionWebViewsOutput{}
	for i, pos := range positions {
		if i >= len(uc.targets) {
			log.Debug().Int("ignored", len(positions)-i).Msg("extra quadrant positions ignored")
			break
		}
		target := uc.targets[i]

		spec := port.ChildViewSpec{
			ID:          entity.ProvisionedViewID(i),
			Title:       target.Title,
			URL:         target.URL,
			Bounds:      pos.Rect(),
			Slot:        entity.Slot(i),
			Decorated:   false,
			AlwaysOnTop: true,
		}

		if existing, ok := uc.registry.Child(window.Label(), spec.ID); ok {
			if err := existing.SetBounds(ctx, spec.Bounds); err != nil {
				log.Warn().Err(err).Str("view_id", spec.ID).Msg("failed to move existing webview")
				out.Failures = multierror.Append(out.Failures, fmt.Errorf("move %s (%s): %w", spec.Title, spec.ID, err))
				continue
			}
			log.Debug().Str("view_id", spec.ID).Str("quadrant", pos.ID).Msg("webview already provisioned, moved")
			out.Existing = append(out.Existing, existing)
			continue
		}

		child, err := uc.createChild(ctx, window, spec)
		if err != nil {
			log.Error().Err(err).Str("title", target.Title).Msg("failed to create webview")
			out.Failures = multierror.Append(out.Failures, err)
			continue
		}

		log.Info().
			Str("view_id", spec.ID).
			Str("title", target.Title).
			Str("quadrant", pos.ID).
			Msg("webview created")
		out.Created = append(out.Created, child)
	}

	return out, nil
}

func (uc *ProvisionWebViewsUseCase) createChild(ctx context.Context, window port.HostWindow, spec port.ChildViewSpec) (port.ChildView, error) {
	ctx = logging.WithViewID(ctx, spec.ID)
	child, err := window.AddChild(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("create %s (%s): %w", spec.Title, spec.ID, err)
	}
	if err := registerChild(ctx, uc.registry, window, child); err != nil {
		return nil, fmt.Errorf("register %s (%s): %w", spec.Title, spec.ID, err)
	}
	return child, nil
}

// registerChild records child under window. A child the registry refuses is
// removed from the window so no unreachable view stays on screen.
func registerChild(ctx context.Context, registry port.ViewRegistry, window port.HostWindow, child port.ChildView) error {
	err := registry.RegisterChild(window.Label(), child)
	if err == nil {
		return nil
	}
	if removeErr := window.RemoveChild(ctx, child.ID()); removeErr != nil {
		logging.FromContext(ctx).Error().Err(removeErr).Str("view_id", child.ID()).Msg("failed to remove unregistered webview")
		return multierror.Append(err, removeErr)
	}
	return err
}
