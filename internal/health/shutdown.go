package health

import "sync/atomic"

var ready atomic.Bool

func init() {
	ready.Store(true)
}

// SetReady flips the global readiness gate. The server sets it to false
// when shutdown begins so load balancers stop routing new traffic.
func SetReady(value bool) {
	ready.Store(value)
}

// IsReady reports the current readiness gate state.
func IsReady() bool {
	return ready.Load()
}
