package backend

import (
	"context"
	"sync"
	"time"
)

// throttle spaces successive loads of the items file so an editor writing in
// several steps does not trigger a parse per step.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

// wait blocks until the next slot opens. It returns false if ctx ends first.
func (t *throttle) wait(ctx context.Context) bool {
	if t == nil || t.interval <= 0 {
		return ctx.Err() == nil
	}
	t.mu.Lock()
	now := time.Now()
	delay := t.next.Sub(now)
	if delay < 0 {
		delay = 0
	}
	t.next = now.Add(delay + t.interval)
	t.mu.Unlock()

	if delay == 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
