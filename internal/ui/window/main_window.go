// Package window provides GTK window implementations.
package window

import (
	"context"
	"fmt"
	"sync"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/quadchat/internal/application/port"
	"github.com/bnema/quadchat/internal/domain/entity"
	"github.com/bnema/quadchat/internal/logging"
	"github.com/bnema/quadchat/pkg/webkit"
)

// Options configures a MainWindow.
type Options struct {
	Label  string
	Title  string
	Width  int
	Height int
}

// MainWindow is the host window: a page web view with a fixed-position
// layer stacked above it for child views.
type MainWindow struct {
	label   string
	window  *gtk.ApplicationWindow
	overlay *gtk.Overlay
	layer   *gtk.Fixed
	page    *webkit.WebView

	mu       sync.RWMutex
	onResize func(entity.Size)
	children []*childView
	resize   resizeTracker

	logger zerolog.Logger
}

// New creates the host window. It is not shown until Show is called.
func New(ctx context.Context, app *gtk.Application, opts Options) (*MainWindow, error) {
	log := logging.FromContext(ctx)

	if opts.Label == "" {
		opts.Label = port.MainWindowLabel
	}

	mw := &MainWindow{
		label:  opts.Label,
		logger: log.With().Str("component", "main-window").Str("window", opts.Label).Logger(),
	}

	mw.window = gtk.NewApplicationWindow(app)
	if mw.window == nil {
		return nil, ErrWindowCreationFailed
	}
	mw.window.SetTitle(opts.Title)
	mw.window.SetDefaultSize(opts.Width, opts.Height)

	page, err := webkit.NewWebView()
	if err != nil {
		return nil, fmt.Errorf("create page view: %w", err)
	}
	mw.page = page
	page.SetExpand(true)

	mw.overlay = gtk.NewOverlay()
	if mw.overlay == nil {
		return nil, ErrWidgetCreationFailed("overlay")
	}
	mw.layer = gtk.NewFixed()
	if mw.layer == nil {
		return nil, ErrWidgetCreationFailed("layer")
	}

	mw.overlay.SetChild(page.Widget())
	mw.overlay.AddOverlay(mw.layer)
	mw.window.SetChild(mw.overlay)

	// The overlay asks for the layer position on every allocation, which
	// covers maximize, fullscreen and tiling as well as plain resizes.
	mw.overlay.ConnectGetChildPosition(func(gtk.Widgetter) (*gdk.Rectangle, bool) {
		mw.queueResize()
		return nil, false
	})
	for _, signal := range []string{
		"notify::default-width",
		"notify::default-height",
		"notify::maximized",
		"notify::fullscreened",
	} {
		mw.window.Connect(signal, mw.queueResize)
	}

	mw.logger.Debug().Int("width", opts.Width).Int("height", opts.Height).Msg("main window created")
	return mw, nil
}

// queueResize checks the size once the current allocation has finished.
// Children cannot be moved from inside an allocation.
func (mw *MainWindow) queueResize() {
	if mw.resize.schedule() {
		webkit.RunOnMainThread(mw.notifyResize)
	}
}

func (mw *MainWindow) notifyResize() {
	size := mw.Size()
	if !mw.resize.settle(size) {
		return
	}

	mw.mu.RLock()
	fn := mw.onResize
	mw.mu.RUnlock()
	if fn != nil {
		mw.logger.Debug().Float64("width", size.Width).Float64("height", size.Height).Msg("content resized")
		fn(size)
	}
}

// Label implements port.HostWindow.
func (mw *MainWindow) Label() string {
	return mw.label
}

// Size implements port.HostWindow. It reports the content area allocation,
// or the default size before the window is first allocated.
func (mw *MainWindow) Size() entity.Size {
	width, height := mw.overlay.AllocatedWidth(), mw.overlay.AllocatedHeight()
	if width <= 0 || height <= 0 {
		width, height = mw.window.DefaultSize()
	}
	return entity.Size{Width: float64(width), Height: float64(height)}
}

// EvaluateScript implements port.HostWindow.
func (mw *MainWindow) EvaluateScript(ctx context.Context, script string) error {
	return mw.page.EvaluateScript(ctx, script)
}

// DispatchEvent implements port.HostWindow by firing a DOM CustomEvent.
func (mw *MainWindow) DispatchEvent(ctx context.Context, name string, payload any) error {
	return mw.page.DispatchCustomEvent(ctx, name, payload)
}

// AddChild implements port.HostWindow. The child is placed on the layer above
// the page, which keeps it stacked over the page content.
func (mw *MainWindow) AddChild(ctx context.Context, spec port.ChildViewSpec) (port.ChildView, error) {
	child, err := newChildView(spec, mw.layer)
	if err != nil {
		return nil, fmt.Errorf("create child %s: %w", spec.ID, err)
	}
	if err := child.view.LoadURL(spec.URL); err != nil {
		child.destroy()
		return nil, fmt.Errorf("load %s in %s: %w", spec.URL, spec.ID, err)
	}
	child.attach()

	mw.mu.Lock()
	mw.children = append(mw.children, child)
	mw.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("view_id", spec.ID).
		Str("url", spec.URL).
		Float64("x", spec.Bounds.X).
		Float64("y", spec.Bounds.Y).
		Float64("width", spec.Bounds.Width).
		Float64("height", spec.Bounds.Height).
		Msg("child view attached")
	return child, nil
}

// RemoveChild implements port.HostWindow.
func (mw *MainWindow) RemoveChild(ctx context.Context, id string) error {
	mw.mu.Lock()
	var child *childView
	for i, c := range mw.children {
		if c.ID() == id {
			child = c
			mw.children = append(mw.children[:i], mw.children[i+1:]...)
			break
		}
	}
	mw.mu.Unlock()

	if child == nil {
		return fmt.Errorf("%w: %s", ErrChildNotFound, id)
	}
	child.detach()
	child.destroy()

	logging.FromContext(ctx).Debug().Str("view_id", id).Msg("child view removed")
	return nil
}

// Page returns the host page view.
func (mw *MainWindow) Page() *webkit.WebView {
	return mw.page
}

// OnResize registers fn for window size changes.
func (mw *MainWindow) OnResize(fn func(entity.Size)) {
	mw.mu.Lock()
	mw.onResize = fn
	mw.mu.Unlock()
}

// SetTitle updates the window title.
func (mw *MainWindow) SetTitle(title string) {
	mw.window.SetTitle(title)
}

// Show presents the window.
func (mw *MainWindow) Show() {
	mw.window.Present()
}

// Destroy stops every child view and the page.
func (mw *MainWindow) Destroy() {
	mw.mu.Lock()
	children := mw.children
	mw.children = nil
	mw.mu.Unlock()

	for _, child := range children {
		child.destroy()
	}
	mw.page.Destroy()
	mw.logger.Debug().Int("children", len(children)).Msg("main window destroyed")
}

var _ port.HostWindow = (*MainWindow)(nil)

// WindowError represents a window-related error.
type WindowError struct {
	Message string
}

func (e WindowError) Error() string {
	return e.Message
}

// Error constants.
var (
	ErrWindowCreationFailed = WindowError{Message: "failed to create application window"}
	ErrChildNotFound        = WindowError{Message: "child view not found"}
)

// ErrWidgetCreationFailed creates an error for widget creation failure.
func ErrWidgetCreationFailed(name string) error {
	return WindowError{Message: "failed to create widget: " + name}
}
