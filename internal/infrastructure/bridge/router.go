// Package bridge routes commands posted by the host page through the WebKit
// script message handler to Go handlers.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/quadchat/internal/logging"
)

var (
	// ErrUnknownCommand is returned when no handler is registered for a command.
	ErrUnknownCommand = errors.New("bridge: unknown command")
	// ErrMalformedMessage is returned when a message is not a command envelope.
	ErrMalformedMessage = errors.New("bridge: malformed message")
)

// Message is the page -> host envelope: {"cmd": "...", "args": {...}}.
type Message struct {
	Cmd  string          `json:"cmd"`
	Args json.RawMessage `json:"args"`
}

// Handler handles the decoded arguments of a single command.
type Handler interface {
	Handle(ctx context.Context, args json.RawMessage) (any, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, args json.RawMessage) (any, error)

// Handle calls f(ctx, args).
func (f HandlerFunc) Handle(ctx context.Context, args json.RawMessage) (any, error) {
	return f(ctx, args)
}

// Router dispatches command envelopes to registered handlers.
type Router struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{handlers: make(map[string]Handler)}
}

// RegisterHandler registers handler for cmd, replacing any previous one.
func (r *Router) RegisterHandler(cmd string, handler Handler) error {
	if cmd == "" {
		return errors.New("command name cannot be empty")
	}
	if handler == nil {
		return errors.New("command handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[cmd] = handler
	return nil
}

// Commands lists registered command names in sorted order.
func (r *Router) Commands() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch decodes raw as a Message and runs the matching handler.
func (r *Router) Dispatch(ctx context.Context, raw []byte) (any, error) {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	if msg.Cmd == "" {
		return nil, fmt.Errorf("%w: missing cmd", ErrMalformedMessage)
	}
	return r.Invoke(ctx, msg.Cmd, msg.Args)
}

// Invoke runs the handler registered for cmd with already decoded args.
func (r *Router) Invoke(ctx context.Context, cmd string, args json.RawMessage) (any, error) {
	log := logging.FromContext(ctx).With().Str("component", "bridge").Str("cmd", cmd).Logger()

	r.mu.RLock()
	handler, ok := r.handlers[cmd]
	r.mu.RUnlock()
	if !ok {
		log.Warn().Msg("no handler registered for command")
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	log.Debug().Int("args_len", len(args)).Msg("received bridge command")

	resp, err := handler.Handle(logging.WithContext(ctx, log), args)
	if err != nil {
		log.Error().Err(err).Msg("command handler returned error")
		return nil, err
	}
	return resp, nil
}
