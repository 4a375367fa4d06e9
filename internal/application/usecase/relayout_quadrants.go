package usecase

import (
	"context"

	"github.com/hashicorp/go-multierror"

	"github.com/bnema/quadchat/internal/application/port"
	"github.com/bnema/quadchat/internal/domain/entity"
	"github.com/bnema/quadchat/internal/logging"
)

// RelayoutQuadrantsUseCase moves existing child views after the host window
// changes size.
type RelayoutQuadrantsUseCase struct {
	registry port.ViewRegistry
}

// NewRelayoutQuadrantsUseCase creates a new RelayoutQuadrantsUseCase.
func NewRelayoutQuadrantsUseCase(registry port.ViewRegistry) *RelayoutQuadrantsUseCase {
	return &RelayoutQuadrantsUseCase{
		registry: registry,
	}
}

// RelayoutInput contains input parameters for a relayout.
type RelayoutInput struct {
	WindowLabel string
	// Size overrides the window's reported size. A zero axis is taken from
	// the window.
	Size entity.Size
	// Gap is applied to views placed from page reports. Auto-resizing views
	// always use the gutterless grid.
	Gap float64
}

// RelayoutOutput reports how many views were moved.
type RelayoutOutput struct {
	Moved int
}

// Execute recomputes quadrant rectangles and applies them to every child of
// the window according to its slot. Failures are collected and returned
// after every child has been visited.
func (uc *RelayoutQuadrantsUseCase) Execute(ctx context.Context, input RelayoutInput) (*RelayoutOutput, error) {
	label := input.WindowLabel
	if label == "" {
		label = port.MainWindowLabel
	}
	log := logging.FromContext(ctx).With().Str("window", label).Logger()

	window, ok := uc.registry.Window(label)
	if !ok {
		return nil, ErrMainWindowNotFound
	}

	size := input.Size
	if size.Width <= 0 || size.Height <= 0 {
		current := window.Size()
		if size.Width <= 0 {
			size.Width = current.Width
		}
		if size.Height <= 0 {
			size.Height = current.Height
		}
	}
	gapped := entity.ComputeQuadrantsWithGap(size, input.Gap)
	flush := entity.ComputeQuadrants(size)

	var errs *multierror.Error
	out := &RelayoutOutput{}
	for _, child := range uc.registry.Children(label) {
		slot := child.Slot()
		if slot < 0 || int(slot) >= entity.QuadrantCount {
			log.Warn().Str("view_id", child.ID()).Int("slot", int(slot)).Msg("child has no quadrant slot, skipping")
			continue
		}

		rect := gapped[slot]
		if child.AutoResize() {
			rect = flush[slot]
		}
		if err := child.SetBounds(ctx, rect); err != nil {
			log.Warn().Err(err).Str("view_id", child.ID()).Msg("failed to move child view")
			errs = multierror.Append(errs, err)
			continue
		}
		out.Moved++
	}

	log.Debug().
		Float64("width", size.Width).
		Float64("height", size.Height).
		Int("moved", out.Moved).
		Msg("quadrants relaid out")
	return out, errs.ErrorOrNil()
}
