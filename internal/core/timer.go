package core

import "time"

// Throttle reports at most once per interval. It is used to rate-limit
// progress output from long runs.
type Throttle struct {
	every time.Duration
	last  time.Time
	now   func() time.Time
}

// NewThrottle constructs a Throttle firing at most once per interval. A
// non-positive interval defaults to one second.
func NewThrottle(every time.Duration) *Throttle {
	if every <= 0 {
		every = time.Second
	}
	return &Throttle{every: every, now: time.Now}
}

// Ready reports whether the interval has elapsed since the last time Ready
// returned true. The first call always returns true.
func (t *Throttle) Ready() bool {
	now := t.now()
	if !t.last.IsZero() && now.Sub(t.last) < t.every {
		return false
	}
	t.last = now
	return true
}
