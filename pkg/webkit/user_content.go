package webkit

import (
	"context"
	"fmt"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/bnema/quadchat/internal/logging"
)

// AddDocumentStartScript injects source into the top frame before any page
// script runs, on every navigation.
func (w *WebView) AddDocumentStartScript(source string) error {
	if source == "" {
		return ErrEmptyScript
	}
	ucm := w.view.UserContentManager()
	if ucm == nil {
		return ErrWebViewNotInitialized
	}

	ucm.AddScript(webkit.NewUserScript(
		source,
		webkit.UserContentInjectTopFrame,
		webkit.UserScriptInjectAtDocumentStart,
		nil,
		nil,
	))
	return nil
}

// RegisterMessageHandler exposes window.webkit.messageHandlers[name] in the
// main world and calls fn with the JSON form of every posted message.
// The signal is connected before registration so no message is lost.
func (w *WebView) RegisterMessageHandler(ctx context.Context, name string, fn func(raw []byte)) error {
	log := logging.FromContext(ctx).With().Str("component", "message-handler").Str("handler", name).Logger()

	ucm := w.view.UserContentManager()
	if ucm == nil {
		return ErrWebViewNotInitialized
	}

	ucm.ConnectScriptMessageReceived(func(value *javascriptcore.Value) {
		if value == nil {
			log.Warn().Msg("received script message with nil value")
			return
		}
		raw := value.ToJSON(0)
		if raw == "" {
			log.Warn().Msg("script message JSON is empty")
			return
		}
		fn([]byte(raw))
	})

	if !ucm.RegisterScriptMessageHandler(name, "") {
		return fmt.Errorf("%w: %q", ErrHandlerRegistration, name)
	}

	log.Info().Uint64("webview_id", w.id).Msg("script message handler connected")
	return nil
}
