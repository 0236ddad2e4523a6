// Package loop serializes work onto a single goroutine.
//
// The carousel engine is not safe for concurrent use. Timer callbacks, file
// watch updates and remote commands are posted here and run one at a time by
// whoever drains the loop: Run in console mode, the bubbletea update loop in
// TUI mode.
package loop

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrFull is returned by Post when the queue has no free slot.
	ErrFull = errors.New("loop: queue full")
	// ErrClosed is returned once the loop has been closed.
	ErrClosed = errors.New("loop: closed")
)

const defaultSize = 256

type Loop struct {
	queue chan func()

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// New returns a loop whose queue holds size pending functions.
func New(size int) *Loop {
	if size <= 0 {
		size = defaultSize
	}
	return &Loop{
		queue: make(chan func(), size),
		done:  make(chan struct{}),
	}
}

// Post queues fn without blocking.
func (l *Loop) Post(fn func()) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return ErrClosed
	}
	select {
	case l.queue <- fn:
		return nil
	default:
		return ErrFull
	}
}

// Do queues fn and waits until it has run on the loop goroutine.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	ran := make(chan struct{})
	wrapped := func() {
		defer close(ran)
		fn()
	}

	l.mu.RLock()
	closed := l.closed
	l.mu.RUnlock()
	if closed {
		return ErrClosed
	}

	// The send may block on a full queue; Close must not wait for it.
	select {
	case l.queue <- wrapped:
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return ErrClosed
	}

	select {
	case <-ran:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return ErrClosed
	}
}

// C exposes the queue to external drainers. Each received function must be
// called exactly once.
func (l *Loop) C() <-chan func() {
	return l.queue
}

// Done is closed when the loop is closed.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Run drains the loop until ctx is cancelled or the loop is closed.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return nil
		case fn := <-l.queue:
			fn()
		}
	}
}

// Close rejects further posts. Functions already queued are abandoned.
func (l *Loop) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	close(l.done)
}
