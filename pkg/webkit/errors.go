package webkit

import "errors"

var (
	ErrWebViewNotInitialized = errors.New("webkit: WebView not initialized")
	ErrWebViewDestroyed      = errors.New("webkit: WebView destroyed")
	ErrInvalidURL            = errors.New("webkit: invalid URL")
	ErrEmptyScript           = errors.New("webkit: empty script")
	ErrHandlerRegistration   = errors.New("webkit: script message handler registration failed")
)
