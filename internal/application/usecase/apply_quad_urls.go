package usecase

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/bnema/quadchat/internal/application/port"
	"github.com/bnema/quadchat/internal/domain/entity"
	"github.com/bnema/quadchat/internal/logging"
)

// ApplyQuadURLsUseCase navigates a window's child views to the addresses
// carried by a load-urls event, matching url1..url4 to slots.
type ApplyQuadURLsUseCase struct {
	registry port.ViewRegistry
}

// NewApplyQuadURLsUseCase creates a new ApplyQuadURLsUseCase.
func NewApplyQuadURLsUseCase(registry port.ViewRegistry) *ApplyQuadURLsUseCase {
	return &ApplyQuadURLsUseCase{
		registry: registry,
	}
}

// Execute navigates every child whose slot has a non-empty URL. Children
// whose URL is empty keep their current page.
func (uc *ApplyQuadURLsUseCase) Execute(ctx context.Context, windowLabel string, urls entity.QuadURLs) (int, error) {
	log := logging.FromContext(ctx)
	list := urls.List()

	var errs *multierror.Error
	navigated := 0
	for _, child := range uc.registry.Children(windowLabel) {
		slot := child.Slot()
		if slot < 0 || int(slot) >= len(list) || list[slot] == "" {
			continue
		}
		if err := child.Navigate(ctx, list[slot]); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("navigate %s: %w", child.ID(), err))
			continue
		}
		navigated++
	}

	log.Debug().Str("window", windowLabel).Int("navigated", navigated).Msg("quad urls applied")
	return navigated, errs.ErrorOrNil()
}
