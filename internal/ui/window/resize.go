package window

import (
	"sync"

	"github.com/bnema/quadchat/internal/domain/entity"
)

// resizeTracker coalesces allocation notifications into one size check per
// idle and reports only real, non-empty size changes.
type resizeTracker struct {
	mu      sync.Mutex
	last    entity.Size
	pending bool
}

// schedule reports whether a check must be queued. It is false while one is
// already pending.
func (t *resizeTracker) schedule() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending {
		return false
	}
	t.pending = true
	return true
}

// settle records size and reports whether listeners should see it.
func (t *resizeTracker) settle(size entity.Size) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = false
	if size.Width <= 0 || size.Height <= 0 || size == t.last {
		return false
	}
	t.last = size
	return true
}
