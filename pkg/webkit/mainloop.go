package webkit

import (
	"runtime"
	"sync/atomic"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
)

var mainThreadLocked atomic.Bool

// InitMainThread locks the calling goroutine to its OS thread. GTK must be
// driven from that thread for the life of the process.
func InitMainThread() {
	if mainThreadLocked.CompareAndSwap(false, true) {
		runtime.LockOSThread()
	}
}

// RunOnMainThread schedules fn on the GTK main loop. It is safe to call from
// any goroutine.
func RunOnMainThread(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}
