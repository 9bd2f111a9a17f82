package core

import (
	"testing"
	"time"
)

func TestThrottleReady(t *testing.T) {
	now := time.Unix(0, 0)
	th := NewThrottle(time.Second)
	th.now = func() time.Time { return now }

	if !th.Ready() {
		t.Fatal("first call should be ready")
	}
	now = now.Add(500 * time.Millisecond)
	if th.Ready() {
		t.Fatal("ready before the interval elapsed")
	}
	now = now.Add(500 * time.Millisecond)
	if !th.Ready() {
		t.Fatal("not ready after the interval elapsed")
	}
	if th.Ready() {
		t.Fatal("ready twice at the same instant")
	}
}

func TestThrottleDefaultsInterval(t *testing.T) {
	if th := NewThrottle(0); th.every != time.Second {
		t.Fatalf("interval = %v", th.every)
	}
}
