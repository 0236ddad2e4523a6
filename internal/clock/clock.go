// Package clock provides the timer capability owned by the carousel engine.
//
// Three implementations share one interface: the wall clock from
// k8s.io/utils/clock, a deterministic Virtual clock driven by Advance, and a
// Posted wrapper that hands expired callbacks to an event loop so that timer
// ticks run on the same goroutine as every other engine mutation.
package clock

import (
	"sync"
	"time"

	k8sclock "k8s.io/utils/clock"
)

// Timer is a cancellable pending callback.
type Timer = k8sclock.Timer

// Clock reports the current time and schedules one-shot callbacks.
type Clock interface {
	k8sclock.PassiveClock
	AfterFunc(d time.Duration, f func()) Timer
}

// Real returns the wall clock.
func Real() Clock {
	return k8sclock.RealClock{}
}

// RetryDelay is how long a callback rejected by the poster waits before it
// is offered again.
const RetryDelay = 50 * time.Millisecond

type posted struct {
	Clock
	post func(func()) error
}

// Posted wraps base so that expired callbacks are passed to post instead of
// being run on the timer goroutine. A callback that post rejects is offered
// again after RetryDelay until it is accepted or the timer is stopped. post
// returns nil for callbacks it accepts or wants dropped for good.
func Posted(base Clock, post func(func()) error) Clock {
	return posted{Clock: base, post: post}
}

func (p posted) AfterFunc(d time.Duration, f func()) Timer {
	t := &postedTimer{p: p, fn: f}
	t.arm(d)
	return t
}

// postedTimer follows one callback through its first deadline and any
// retries. current is the base timer armed for the next attempt.
type postedTimer struct {
	p  posted
	fn func()

	mu      sync.Mutex
	current Timer
	stopped bool
}

func (t *postedTimer) arm(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.current = t.p.Clock.AfterFunc(d, t.deliver)
}

func (t *postedTimer) deliver() {
	t.mu.Lock()
	stopped := t.stopped
	t.mu.Unlock()
	if stopped {
		return
	}
	if err := t.p.post(t.fn); err != nil {
		t.arm(RetryDelay)
	}
}

// C is nil, as for timers created by time.AfterFunc.
func (t *postedTimer) C() <-chan time.Time {
	return nil
}

func (t *postedTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	return t.current.Stop()
}

func (t *postedTimer) Reset(d time.Duration) bool {
	t.mu.Lock()
	wasActive := !t.stopped && t.current.Stop()
	t.stopped = false
	t.mu.Unlock()
	t.arm(d)
	return wasActive
}
