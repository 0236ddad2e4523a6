package carousel

import (
	"slices"
	"time"

	"carouselctl/internal/clock"
)

// Engine is the carousel state machine: an ordered slide list, the active
// index, the auto-advance timer and the pause flag.
//
// Engine is not safe for concurrent use. All calls, including timer
// callbacks, must be serialized onto one goroutine; wrap the clock with
// clock.Posted when the engine is owned by an event loop.
type Engine struct {
	clock    clock.Clock
	observer func(Event)

	slides   []Slide
	active   int
	initial  int
	interval time.Duration
	noWrap   bool
	keyboard bool

	paused    bool
	destroyed bool
	timer     clock.Timer
	// gen invalidates ticks that were already in flight when the timer was
	// cancelled.
	gen uint64
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithObserver registers fn to receive every Event.
func WithObserver(fn func(Event)) Option {
	return func(e *Engine) {
		e.observer = fn
	}
}

// WithSlides seeds the engine with slides before the timer starts.
func WithSlides(slides ...Slide) Option {
	return func(e *Engine) {
		for _, s := range slides {
			if i := e.indexOf(s.ID); i >= 0 {
				e.slides[i] = s
				continue
			}
			e.slides = append(e.slides, s)
		}
	}
}

// New creates an engine. If slides were supplied the requested initial slide
// becomes active and the timer starts.
func New(cfg Config, clk clock.Clock, opts ...Option) *Engine {
	e := &Engine{
		clock:    clk,
		active:   NoIndex,
		initial:  NoIndex,
		interval: cfg.Interval,
		noWrap:   cfg.NoWrap,
		keyboard: cfg.Keyboard,
	}
	if cfg.Active != nil {
		e.initial = *cfg.Active
	}
	for _, opt := range opts {
		opt(e)
	}
	if len(e.slides) > 0 {
		e.activateInitial()
		e.restartTimer()
	}
	return e
}

// AddSlide appends s. A slide with an existing ID replaces that slide in place.
func (e *Engine) AddSlide(s Slide) {
	if i := e.indexOf(s.ID); i >= 0 {
		e.slides[i] = s
		e.emit(EventUpdate, e.active, s)
		return
	}

	e.slides = append(e.slides, s)
	if len(e.slides) == 1 {
		e.activateInitial()
		e.restartTimer()
		e.emit(EventAdd, NoIndex, s)
		return
	}
	e.emit(EventAdd, e.active, s)
}

// UpdateSlide replaces the content of an existing slide without moving the
// active index or touching the timer.
func (e *Engine) UpdateSlide(s Slide) bool {
	i := e.indexOf(s.ID)
	if i < 0 {
		return false
	}
	e.slides[i] = s
	e.emit(EventUpdate, e.active, s)
	return true
}

// RemoveSlide detaches the slide with the given ID. The active index is
// clamped to the nearest valid slide; an empty carousel has no active slide
// and no timer.
func (e *Engine) RemoveSlide(id string) bool {
	i := e.indexOf(id)
	if i < 0 {
		return false
	}
	removed := e.slides[i]
	from := e.active
	e.slides = slices.Delete(e.slides, i, i+1)

	switch {
	case len(e.slides) == 0:
		e.active = NoIndex
		e.stopTimer()
	case i < e.active:
		e.active--
	case i == e.active:
		if e.active >= len(e.slides) {
			e.active = len(e.slides) - 1
		}
		e.restartTimer()
	}
	e.emit(EventRemove, from, removed)
	return true
}

// Select makes index the active slide. NoIndex or an out-of-range index
// selects the first slide. The timer restarts with a full interval.
func (e *Engine) Select(index int) {
	if len(e.slides) == 0 {
		return
	}
	from := e.active
	e.active = e.correct(index)
	e.restartTimer()
	e.emit(EventSelect, from, e.activeSlide())
}

// Next advances to the following slide, wrapping to the first unless NoWrap
// is set. The timer restarts even when the index cannot move.
func (e *Engine) Next() {
	e.step(1, EventNext)
}

// Prev moves to the preceding slide, wrapping to the last unless NoWrap is set.
func (e *Engine) Prev() {
	e.step(-1, EventPrev)
}

// Pause cancels the pending tick. No tick fires until Resume.
func (e *Engine) Pause() {
	if e.paused {
		return
	}
	e.paused = true
	e.stopTimer()
	e.emit(EventPause, e.active, e.activeSlide())
}

// Resume schedules a fresh full-interval tick when the interval is positive,
// slides exist and the engine has not been destroyed.
func (e *Engine) Resume() {
	wasPaused := e.paused
	e.paused = false
	e.restartTimer()
	if wasPaused {
		e.emit(EventResume, e.active, e.activeSlide())
	}
}

// SetInterval changes the auto-advance period. A non-positive value stops
// the timer; a positive one reschedules it right away unless paused.
func (e *Engine) SetInterval(d time.Duration) {
	e.interval = d
	if d <= 0 {
		e.stopTimer()
	} else {
		e.restartTimer()
	}
	e.emit(EventInterval, e.active, e.activeSlide())
}

// SetNoWrap switches between wrapping and clamping navigation. The active
// slide and the timer are left alone.
func (e *Engine) SetNoWrap(noWrap bool) {
	e.noWrap = noWrap
}

// SetKeyboard turns HandleKey on or off.
func (e *Engine) SetKeyboard(enabled bool) {
	e.keyboard = enabled
}

// Destroy stops the timer for good. Later calls never schedule a tick.
func (e *Engine) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	e.stopTimer()
	e.emit(EventDestroy, e.active, e.activeSlide())
}

func (e *Engine) Len() int                { return len(e.slides) }
func (e *Engine) Active() int             { return e.active }
func (e *Engine) Interval() time.Duration { return e.interval }
func (e *Engine) NoWrap() bool            { return e.noWrap }
func (e *Engine) Keyboard() bool          { return e.keyboard }
func (e *Engine) Paused() bool            { return e.paused }
func (e *Engine) Destroyed() bool         { return e.destroyed }

// Running reports whether a tick is scheduled.
func (e *Engine) Running() bool {
	return e.timer != nil
}

// Snapshot returns a copy of the state for rendering.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Slides:   slices.Clone(e.slides),
		Active:   e.active,
		Interval: e.interval,
		NoWrap:   e.noWrap,
		Keyboard: e.keyboard,
		Paused:   e.paused,
		Running:  e.timer != nil,
	}
}

func (e *Engine) step(delta int, kind EventKind) {
	n := len(e.slides)
	if n == 0 {
		return
	}
	from := e.active
	next := e.active + delta
	switch {
	case next >= n && e.noWrap:
		next = n - 1
	case next >= n:
		next = 0
	case next < 0 && e.noWrap:
		next = 0
	case next < 0:
		next = n - 1
	}
	e.active = next
	e.restartTimer()
	e.emit(kind, from, e.activeSlide())
}

func (e *Engine) fire(gen uint64) {
	if gen != e.gen || e.timer == nil {
		return
	}
	e.timer = nil
	e.step(1, EventTick)
}

func (e *Engine) restartTimer() {
	e.stopTimer()
	if e.destroyed || e.paused || e.interval <= 0 || len(e.slides) == 0 {
		return
	}
	gen := e.gen
	e.timer = e.clock.AfterFunc(e.interval, func() { e.fire(gen) })
}

func (e *Engine) stopTimer() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.gen++
}

func (e *Engine) activateInitial() {
	e.active = e.correct(e.initial)
	e.initial = NoIndex
}

func (e *Engine) correct(index int) int {
	if index < 0 || index >= len(e.slides) {
		return 0
	}
	return index
}

func (e *Engine) indexOf(id string) int {
	return slices.IndexFunc(e.slides, func(s Slide) bool { return s.ID == id })
}

func (e *Engine) activeSlide() Slide {
	if e.active < 0 || e.active >= len(e.slides) {
		return Slide{}
	}
	return e.slides[e.active]
}

func (e *Engine) emit(kind EventKind, from int, s Slide) {
	if e.observer == nil {
		return
	}
	e.observer(Event{Kind: kind, From: from, To: e.active, Slide: s})
}
