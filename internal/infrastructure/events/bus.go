// Package events implements best-effort event delivery to host windows and
// in-process listeners.
package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/quadchat/internal/application/port"
	"github.com/bnema/quadchat/internal/logging"
)

// ErrSurfaceNotFound is returned when the target window is not registered.
var ErrSurfaceNotFound = errors.New("events: target surface not found")

// Listener receives an emitted payload.
type Listener func(ctx context.Context, payload any)

type listenerKey struct {
	target string
	event  string
}

type subscription struct {
	id uint64
	fn Listener
}

// Bus implements port.EventEmitter. An emitted event is dispatched to the
// target window's page first, then to every in-process listener for that
// target and event name, in subscription order.
type Bus struct {
	registry port.ViewRegistry

	mu        sync.RWMutex
	listeners map[listenerKey][]subscription
	nextID    uint64
}

// NewBus creates a bus resolving targets through registry.
func NewBus(registry port.ViewRegistry) *Bus {
	return &Bus{
		registry:  registry,
		listeners: make(map[listenerKey][]subscription),
	}
}

// Listen subscribes fn to event on target. The returned func unsubscribes.
func (b *Bus) Listen(target, event string, fn Listener) func() {
	key := listenerKey{target: target, event: event}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.listeners[key] = append(b.listeners[key], subscription{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.listeners[key]
		for i, sub := range subs {
			if sub.id == id {
				b.listeners[key] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers event with payload to target. A missing window or a failed
// page dispatch is returned to the caller; listeners are not notified then.
func (b *Bus) Emit(ctx context.Context, target, event string, payload any) error {
	log := logging.FromContext(ctx)

	window, ok := b.registry.Window(target)
	if !ok {
		return fmt.Errorf("%w: %q", ErrSurfaceNotFound, target)
	}
	if err := window.DispatchEvent(ctx, event, payload); err != nil {
		return fmt.Errorf("dispatch %q to %q: %w", event, target, err)
	}

	b.mu.RLock()
	subs := make([]subscription, len(b.listeners[listenerKey{target: target, event: event}]))
	copy(subs, b.listeners[listenerKey{target: target, event: event}])
	b.mu.RUnlock()

	for _, sub := range subs {
		sub.fn(ctx, payload)
	}

	log.Debug().
		Str("target", target).
		Str("event", event).
		Int("listeners", len(subs)).
		Msg("event emitted")
	return nil
}

var _ port.EventEmitter = (*Bus)(nil)
