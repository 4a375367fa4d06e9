package webkit

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/bnema/quadchat/internal/logging"
)

var viewIDCounter uint64

// WebView wraps a WebKitGTK WebView.
type WebView struct {
	view *webkit.WebView
	id   uint64

	destroyed bool
	mu        sync.RWMutex

	onLoadFinished func()
	onTitleChanged func(string)
}

// NewWebView creates a new WebView with JavaScript enabled.
func NewWebView() (*WebView, error) {
	InitMainThread()

	wkView := webkit.NewWebView()
	if wkView == nil {
		return nil, ErrWebViewNotInitialized
	}

	wv := &WebView{
		view: wkView,
		id:   atomic.AddUint64(&viewIDCounter, 1),
	}
	if settings := wkView.Settings(); settings != nil {
		settings.SetEnableJavascript(true)
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)
	}
	wv.setupEventHandlers()
	return wv, nil
}

func (w *WebView) setupEventHandlers() {
	w.view.Connect("notify::title", func() {
		if fn := w.titleHandler(); fn != nil {
			fn(w.view.Title())
		}
	})

	w.view.ConnectLoadChanged(func(event webkit.LoadEvent) {
		if event != webkit.LoadFinished {
			return
		}
		w.mu.RLock()
		fn := w.onLoadFinished
		w.mu.RUnlock()
		if fn != nil {
			fn()
		}
	})
}

func (w *WebView) titleHandler() func(string) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.onTitleChanged
}

// ID returns the process-unique view identifier.
func (w *WebView) ID() uint64 {
	return w.id
}

// Widget returns the underlying GTK widget.
func (w *WebView) Widget() gtk.Widgetter {
	return w.view
}

// LoadURL navigates the view to url.
func (w *WebView) LoadURL(url string) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWebViewDestroyed
	}
	if url == "" {
		return ErrInvalidURL
	}

	w.view.LoadURI(url)
	return nil
}

// LoadHTML replaces the view content with html resolved against baseURI.
func (w *WebView) LoadHTML(html, baseURI string) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWebViewDestroyed
	}

	w.view.LoadHTML(html, baseURI)
	return nil
}

// CurrentURL returns the committed URI.
func (w *WebView) CurrentURL() string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ""
	}
	return w.view.URI()
}

// EvaluateScript runs script in the page's main world. Evaluation is
// asynchronous: only precondition failures are returned, runtime exceptions
// are logged.
func (w *WebView) EvaluateScript(ctx context.Context, script string) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWebViewDestroyed
	}
	if script == "" {
		return ErrEmptyScript
	}

	log := logging.FromContext(ctx)
	view := w.view
	w.view.EvaluateJavascript(ctx, script, -1, "", "", func(result gio.AsyncResulter) {
		if _, err := view.EvaluateJavascriptFinish(result); err != nil {
			log.Error().Err(err).Uint64("webview_id", w.id).Msg("javascript evaluation failed")
		}
	})
	return nil
}

// DispatchCustomEvent fires a DOM CustomEvent on the page's window object.
func (w *WebView) DispatchCustomEvent(ctx context.Context, name string, payload any) error {
	script, err := CustomEventScript(name, payload)
	if err != nil {
		return err
	}
	return w.EvaluateScript(ctx, script)
}

// SetSizeRequest sets the minimum allocation of the view widget.
func (w *WebView) SetSizeRequest(width, height int) {
	w.view.SetSizeRequest(width, height)
}

// SetExpand makes the view fill its parent in both directions.
func (w *WebView) SetExpand(expand bool) {
	w.view.SetHExpand(expand)
	w.view.SetVExpand(expand)
}

// OnLoadFinished registers fn for the load-finished event.
func (w *WebView) OnLoadFinished(fn func()) {
	w.mu.Lock()
	w.onLoadFinished = fn
	w.mu.Unlock()
}

// OnTitleChanged registers fn for page title changes.
func (w *WebView) OnTitleChanged(fn func(string)) {
	w.mu.Lock()
	w.onTitleChanged = fn
	w.mu.Unlock()
}

// Destroy stops loading and marks the view unusable.
func (w *WebView) Destroy() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.destroyed {
		return
	}
	w.destroyed = true
	w.view.StopLoading()
}

// IsDestroyed reports whether Destroy has been called.
func (w *WebView) IsDestroyed() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.destroyed
}
