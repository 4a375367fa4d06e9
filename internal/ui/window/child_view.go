package window

import (
	"context"
	"sync"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/quadchat/internal/application/port"
	"github.com/bnema/quadchat/internal/domain/entity"
	"github.com/bnema/quadchat/pkg/webkit"
)

// childView is a web view positioned on the main window's fixed layer.
type childView struct {
	spec   port.ChildViewSpec
	view   *webkit.WebView
	widget gtk.Widgetter
	layer  *gtk.Fixed

	mu     sync.RWMutex
	bounds entity.Rect
	url    string
}

func newChildView(spec port.ChildViewSpec, layer *gtk.Fixed) (*childView, error) {
	view, err := webkit.NewWebView()
	if err != nil {
		return nil, err
	}

	c := &childView{
		spec:   spec,
		view:   view,
		widget: view.Widget(),
		layer:  layer,
		bounds: spec.Bounds,
		url:    spec.URL,
	}
	if spec.Decorated {
		frame := gtk.NewFrame(spec.Title)
		frame.SetChild(view.Widget())
		view.OnTitleChanged(func(title string) {
			if title != "" {
				frame.SetLabel(title)
			}
		})
		c.widget = frame
	}
	view.SetSizeRequest(int(spec.Bounds.Width), int(spec.Bounds.Height))
	return c, nil
}

func (c *childView) attach() {
	c.layer.Put(c.widget, c.spec.Bounds.X, c.spec.Bounds.Y)
}

func (c *childView) detach() {
	c.layer.Remove(c.widget)
}

func (c *childView) ID() string { return c.spec.ID }
func (c *childView) Title() string { return c.spec.Title }
func (c *childView) Slot() entity.Slot { return c.spec.Slot }
func (c *childView) AutoResize() bool { return c.spec.AutoResize }

// URL returns the committed address, or the requested one while the first
// load is pending.
func (c *childView) URL() string {
	if current := c.view.CurrentURL(); current != "" {
		return current
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.url
}

func (c *childView) Bounds() entity.Rect {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bounds
}

// SetBounds moves and resizes the view on the layer.
func (c *childView) SetBounds(_ context.Context, rect entity.Rect) error {
	if c.view.IsDestroyed() {
		return webkit.ErrWebViewDestroyed
	}

	c.layer.Move(c.widget, rect.X, rect.Y)
	c.view.SetSizeRequest(int(rect.Width), int(rect.Height))

	c.mu.Lock()
	c.bounds = rect
	c.mu.Unlock()
	return nil
}

// Navigate loads url in the view.
func (c *childView) Navigate(_ context.Context, url string) error {
	if err := c.view.LoadURL(url); err != nil {
		return err
	}

	c.mu.Lock()
	c.url = url
	c.mu.Unlock()
	return nil
}

func (c *childView) destroy() {
	c.view.Destroy()
}

var _ port.ChildView = (*childView)(nil)
