// Package registry provides the in-memory view registry that owns every host
// window and child web view created by the process.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/quadchat/internal/application/port"
)

var (
	// ErrDuplicateWindow is returned when a label is registered twice.
	ErrDuplicateWindow = errors.New("registry: window already registered")
	// ErrUnknownWindow is returned when a child's parent is not registered.
	ErrUnknownWindow = errors.New("registry: unknown window")
	// ErrDuplicateChild is returned when a child id is registered twice.
	ErrDuplicateChild = errors.New("registry: child view already registered")
)

type windowEntry struct {
	window   port.HostWindow
	children []port.ChildView
	ids      map[string]port.ChildView
}

// Registry implements port.ViewRegistry.
type Registry struct {
	mu      sync.RWMutex
	windows map[string]*windowEntry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		windows: make(map[string]*windowEntry),
	}
}

// RegisterWindow adds a host window under its label.
func (r *Registry) RegisterWindow(window port.HostWindow) error {
	if window == nil {
		return errors.New("registry: window cannot be nil")
	}
	label := window.Label()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.windows[label]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateWindow, label)
	}
	r.windows[label] = &windowEntry{
		window: window,
		ids:    make(map[string]port.ChildView),
	}
	return nil
}

// Window looks up a host window by label.
func (r *Registry) Window(label string) (port.HostWindow, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.windows[label]
	if !ok {
		return nil, false
	}
	return entry.window, true
}

// UnregisterWindow removes a window and forgets its children.
func (r *Registry) UnregisterWindow(label string) {
	r.mu.Lock()
	delete(r.windows, label)
	r.mu.Unlock()
}

// RegisterChild records a child view under its parent's label.
func (r *Registry) RegisterChild(parentLabel string, child port.ChildView) error {
	if child == nil {
		return errors.New("registry: child cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.windows[parentLabel]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownWindow, parentLabel)
	}
	if _, exists := entry.ids[child.ID()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateChild, child.ID())
	}
	entry.ids[child.ID()] = child
	entry.children = append(entry.children, child)
	return nil
}

// Child looks up a registered child of the parent by id.
func (r *Registry) Child(parentLabel, id string) (port.ChildView, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.windows[parentLabel]
	if !ok {
		return nil, false
	}
	child, ok := entry.ids[id]
	return child, ok
}

// Children returns a copy of the parent's children in registration order.
func (r *Registry) Children(parentLabel string) []port.ChildView {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.windows[parentLabel]
	if !ok {
		return nil
	}
	children := make([]port.ChildView, len(entry.children))
	copy(children, entry.children)
	return children
}

var _ port.ViewRegistry = (*Registry)(nil)
