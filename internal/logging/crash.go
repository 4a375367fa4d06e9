package logging

import (
	"context"
	"runtime"
	"runtime/debug"
)

// LogPanic records a panic with its stack and re-panics. Defer it at the
// top of long-lived goroutines and the GUI entry point.
func LogPanic(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}

	FromContext(ctx).Error().
		Interface("panic", r).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Bytes("stack", debug.Stack()).
		Msg("panic")

	panic(r)
}
