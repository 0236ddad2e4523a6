package clock

import (
	"sync"
	"time"
)

// Virtual is a manually driven clock. Time only moves when Advance is called,
// and due callbacks run synchronously on the caller's goroutine in deadline
// order. Callbacks may schedule further callbacks; those fire within the same
// Advance call if they fall inside the window.
type Virtual struct {
	mu     sync.Mutex
	start  time.Time
	now    time.Time
	seq    uint64
	timers []*virtualTimer
}

// NewVirtual returns a virtual clock frozen at start.
func NewVirtual(start time.Time) *Virtual {
	return &Virtual{start: start, now: start}
}

func (v *Virtual) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

func (v *Virtual) Since(t time.Time) time.Duration {
	return v.Now().Sub(t)
}

// Elapsed is the virtual time passed since the clock was created.
func (v *Virtual) Elapsed() time.Duration {
	return v.Since(v.start)
}

func (v *Virtual) AfterFunc(d time.Duration, f func()) Timer {
	v.mu.Lock()
	defer v.mu.Unlock()
	t := &virtualTimer{v: v, fn: f}
	v.armLocked(t, d)
	return t
}

// Pending returns the number of armed timers.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.timers)
}

// Advance moves the clock forward by d, firing every callback that comes due.
func (v *Virtual) Advance(d time.Duration) {
	v.mu.Lock()
	target := v.now.Add(d)
	v.mu.Unlock()

	for {
		v.mu.Lock()
		t := v.nextDueLocked(target)
		if t == nil {
			if target.After(v.now) {
				v.now = target
			}
			v.mu.Unlock()
			return
		}
		if t.deadline.After(v.now) {
			v.now = t.deadline
		}
		v.removeLocked(t)
		fn := t.fn
		v.mu.Unlock()

		fn()
	}
}

func (v *Virtual) armLocked(t *virtualTimer, d time.Duration) {
	if d < 0 {
		d = 0
	}
	v.seq++
	t.seq = v.seq
	t.deadline = v.now.Add(d)
	t.armed = true
	v.timers = append(v.timers, t)
}

func (v *Virtual) nextDueLocked(target time.Time) *virtualTimer {
	var next *virtualTimer
	for _, t := range v.timers {
		if t.deadline.After(target) {
			continue
		}
		if next == nil || t.deadline.Before(next.deadline) ||
			(t.deadline.Equal(next.deadline) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (v *Virtual) removeLocked(t *virtualTimer) bool {
	if !t.armed {
		return false
	}
	t.armed = false
	for i, other := range v.timers {
		if other == t {
			v.timers = append(v.timers[:i], v.timers[i+1:]...)
			break
		}
	}
	return true
}

type virtualTimer struct {
	v        *Virtual
	fn       func()
	deadline time.Time
	seq      uint64
	armed    bool
}

// C is nil, as for timers created by time.AfterFunc.
func (t *virtualTimer) C() <-chan time.Time {
	return nil
}

func (t *virtualTimer) Stop() bool {
	t.v.mu.Lock()
	defer t.v.mu.Unlock()
	return t.v.removeLocked(t)
}

func (t *virtualTimer) Reset(d time.Duration) bool {
	t.v.mu.Lock()
	defer t.v.mu.Unlock()
	wasArmed := t.v.removeLocked(t)
	t.v.armLocked(t, d)
	return wasArmed
}
