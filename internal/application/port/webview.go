// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, etc.).
package port

//go:generate mockgen -source=webview.go -destination=mocks/mock_webview.go -package=mocks

import (
	"context"

	"github.com/bnema/quadchat/internal/domain/entity"
)

// ChildViewSpec describes a child web view to embed in a host window.
type ChildViewSpec struct {
	// ID is the registry identifier, e.g. "webview1" or "main3".
	ID    string
	Title string
	URL   string
	// Bounds is the view's rectangle relative to the host content area.
	Bounds entity.Rect
	// Slot is the grid position the view occupies.
	Slot entity.Slot

	Decorated   bool
	AlwaysOnTop bool
	// AutoResize makes the view follow host window size changes.
	AutoResize bool
}

// ChildView is an embedded browsing surface positioned inside a host window.
type ChildView interface {
	ID() string
	Title() string
	URL() string
	Slot() entity.Slot
	Bounds() entity.Rect
	AutoResize() bool
	// SetBounds moves and resizes the view.
	SetBounds(ctx context.Context, bounds entity.Rect) error
	// Navigate loads a new address in the view.
	Navigate(ctx context.Context, url string) error
}

// HostWindow is a top-level window that owns child web views.
// Its own content is a web page that scripts can be evaluated in.
type HostWindow interface {
	// Label is the registry identifier of the window ("main").
	Label() string
	// Size returns the current content size in logical pixels.
	Size() entity.Size
	// EvaluateScript runs JavaScript in the window's page.
	EvaluateScript(ctx context.Context, script string) error
	// DispatchEvent delivers a named DOM CustomEvent carrying payload as detail.
	DispatchEvent(ctx context.Context, name string, payload any) error
	// AddChild creates and embeds a child web view.
	AddChild(ctx context.Context, spec ChildViewSpec) (ChildView, error)
	// RemoveChild detaches and destroys a child created by AddChild.
	RemoveChild(ctx context.Context, id string) error
}
