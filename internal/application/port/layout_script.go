package port

//go:generate mockgen -source=layout_script.go -destination=mocks/mock_layout_script.go -package=mocks

import (
	"context"
	"time"
)

// LayoutScriptOptions parameterises the grid layout script.
type LayoutScriptOptions struct {
	// Gap is the CSS gap between grid cells in pixels.
	Gap float64
	// ReportDelay is how long the page waits before reporting positions.
	ReportDelay time.Duration
	// LoadingText is shown in every placeholder region.
	LoadingText string
}

// LayoutScriptRenderer produces the JavaScript that rebuilds the host page
// into a 2x2 grid and reports region positions back to the host.
type LayoutScriptRenderer interface {
	Render(ctx context.Context, opts LayoutScriptOptions) (string, error)
	// RenderGap produces a script that changes the gap of an injected grid.
	RenderGap(gap float64) (string, error)
}
