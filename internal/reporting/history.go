package reporting

import (
	"fmt"
	"io"
	"sync"
	"time"

	"carouselctl/internal/carousel"

	k8sclock "k8s.io/utils/clock"
)

// DefaultHistorySize is the number of events kept when no capacity is given.
const DefaultHistorySize = 512

// Entry is one recorded event.
type Entry struct {
	At    time.Duration
	Event carousel.Event
}

// History keeps the most recent events, evicting the oldest when full.
type History struct {
	clock k8sclock.PassiveClock
	start time.Time

	mu       sync.Mutex
	entries  []Entry
	capacity int
	evicted  int
}

// NewHistory records up to capacity events, timed against clk.
func NewHistory(clk k8sclock.PassiveClock, capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &History{clock: clk, start: clk.Now(), capacity: capacity}
}

func (h *History) Report(ev carousel.Event) {
	at := h.clock.Since(h.start)

	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == h.capacity {
		h.entries = append(h.entries[:0], h.entries[1:]...)
		h.evicted++
	}
	h.entries = append(h.entries, Entry{At: at, Event: ev})
}

// Entries returns a copy of the recorded events, oldest first.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Entry(nil), h.entries...)
}

// Last returns the most recent entry.
func (h *History) Last() (Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Evicted is the number of events dropped to make room.
func (h *History) Evicted() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.evicted
}

// WriteTo prints one line per entry: elapsed seconds, then the description.
func (h *History) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, e := range h.Entries() {
		n, err := fmt.Fprintf(w, "%9.3fs  %s\n", e.At.Seconds(), Describe(e.Event))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
