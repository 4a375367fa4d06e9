package port

//go:generate mockgen -source=events.go -destination=mocks/mock_events.go -package=mocks

import "context"

// LoadURLsEvent is emitted to a window when new quadrant URLs are requested.
const LoadURLsEvent = "load-urls"

// EventEmitter delivers named events to every listener on a surface.
// Delivery is best effort: there is no retry and no acknowledgement.
type EventEmitter interface {
	Emit(ctx context.Context, target, event string, payload any) error
}
