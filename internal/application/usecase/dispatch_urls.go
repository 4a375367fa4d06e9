package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/quadchat/internal/application/port"
	"github.com/bnema/quadchat/internal/domain/entity"
	"github.com/bnema/quadchat/internal/logging"
)

// DispatchURLsUseCase broadcasts a load-urls event to a window and its
// listeners. Delivery is fire-and-forget.
type DispatchURLsUseCase struct {
	emitter port.EventEmitter
}

// NewDispatchURLsUseCase creates a new DispatchURLsUseCase.
func NewDispatchURLsUseCase(emitter port.EventEmitter) *DispatchURLsUseCase {
	return &DispatchURLsUseCase{
		emitter: emitter,
	}
}

// Execute emits urls verbatim to target. URLs are not validated. An emission
// failure is returned without retry.
func (uc *DispatchURLsUseCase) Execute(ctx context.Context, target string, urls entity.QuadURLs) error {
	log := logging.FromContext(ctx)

	if err := uc.emitter.Emit(ctx, target, port.LoadURLsEvent, urls); err != nil {
		log.Error().Err(err).Str("target", target).Msg("failed to emit load-urls")
		return fmt.Errorf("emit %s: %w", port.LoadURLsEvent, err)
	}

	log.Debug().Str("target", target).Msg("load-urls emitted")
	return nil
}
