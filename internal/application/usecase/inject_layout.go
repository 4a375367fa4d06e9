package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/quadchat/internal/application/port"
	"github.com/bnema/quadchat/internal/logging"
)

// InjectLayoutUseCase rewrites the host page into the quadrant grid. The page
// reports region positions back through the get_quadrant_positions command.
type InjectLayoutUseCase struct {
	registry port.ViewRegistry
	renderer port.LayoutScriptRenderer
}

// NewInjectLayoutUseCase creates a new InjectLayoutUseCase.
func NewInjectLayoutUseCase(registry port.ViewRegistry, renderer port.LayoutScriptRenderer) *InjectLayoutUseCase {
	return &InjectLayoutUseCase{
		registry: registry,
		renderer: renderer,
	}
}

// InjectLayoutInput contains input parameters for layout injection.
type InjectLayoutInput struct {
	// WindowLabel defaults to the main window.
	WindowLabel string
	Options     port.LayoutScriptOptions
}

// Execute renders the layout script and evaluates it in the host page.
// The call does not wait for the page to report positions.
func (uc *InjectLayoutUseCase) Execute(ctx context.Context, input InjectLayoutInput) error {
	label := input.WindowLabel
	if label == "" {
		label = port.MainWindowLabel
	}
	log := logging.FromContext(ctx).With().Str("window", label).Logger()

	window, ok := uc.registry.Window(label)
	if !ok {
		log.Error().Msg("host window not found, skipping layout injection")
		return ErrMainWindowNotFound
	}

	script, err := uc.renderer.Render(ctx, input.Options)
	if err != nil {
		log.Error().Err(err).Msg("failed to render layout script")
		return fmt.Errorf("render layout script: %w", err)
	}

	if err := window.EvaluateScript(ctx, script); err != nil {
		log.Error().Err(err).Msg("failed to evaluate layout script")
		return fmt.Errorf("evaluate layout script: %w", err)
	}

	log.Info().
		Float64("gap", input.Options.Gap).
		Dur("report_delay", input.Options.ReportDelay).
		Msg("layout script injected")
	return nil
}

// UpdateGap changes the gap of the grid already injected into the window's
// page, keeping the placeholders aligned with relaid out child views.
func (uc *InjectLayoutUseCase) UpdateGap(ctx context.Context, windowLabel string, gap float64) error {
	if windowLabel == "" {
		windowLabel = port.MainWindowLabel
	}

	window, ok := uc.registry.Window(windowLabel)
	if !ok {
		return ErrMainWindowNotFound
	}

	script, err := uc.renderer.RenderGap(gap)
	if err != nil {
		return fmt.Errorf("render gap script: %w", err)
	}
	if err := window.EvaluateScript(ctx, script); err != nil {
		return fmt.Errorf("evaluate gap script: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("window", windowLabel).Float64("gap", gap).Msg("grid gap updated")
	return nil
}
