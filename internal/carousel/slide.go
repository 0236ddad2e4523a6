package carousel

import "time"

// NoIndex marks an undefined active index. Select(NoIndex) falls back to 0.
const NoIndex = -1

// Slide is one content unit. The engine orders and selects slides by ID and
// never looks at Content.
type Slide struct {
	ID      string
	Content any
}

// Snapshot is a read-only copy of the engine state for renderers.
type Snapshot struct {
	Slides   []Slide
	Active   int
	Interval time.Duration
	NoWrap   bool
	Keyboard bool
	Paused   bool
	Running  bool
}

// IsActive reports whether the slide at index i is the active one.
func (s Snapshot) IsActive(i int) bool {
	return len(s.Slides) > 0 && i == s.Active
}

// ActiveSlide returns the active slide, if any.
func (s Snapshot) ActiveSlide() (Slide, bool) {
	if s.Active < 0 || s.Active >= len(s.Slides) {
		return Slide{}, false
	}
	return s.Slides[s.Active], true
}

// EventKind names what caused a state change.
type EventKind string

const (
	EventAdd      EventKind = "add"
	EventRemove   EventKind = "remove"
	EventUpdate   EventKind = "update"
	EventSelect   EventKind = "select"
	EventNext     EventKind = "next"
	EventPrev     EventKind = "prev"
	EventTick     EventKind = "tick"
	EventPause    EventKind = "pause"
	EventResume   EventKind = "resume"
	EventInterval EventKind = "interval"
	EventDestroy  EventKind = "destroy"
)

// Event is emitted to the observer after every state change. From and To are
// the active index before and after; Slide is the slide the event is about
// (the added, removed or updated one, otherwise the active one).
type Event struct {
	Kind  EventKind
	From  int
	To    int
	Slide Slide
}

// Moved reports whether the active index changed.
func (e Event) Moved() bool {
	return e.From != e.To
}
