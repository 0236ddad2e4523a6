// Package carousel implements the carousel engine: the state machine behind
// a slide carousel.
//
// The engine owns an ordered list of slides, the index of the active slide,
// an auto-advance timer and a pause flag. Renderers read a Snapshot and mark
// exactly one slide and one indicator active; input adapters call Next, Prev,
// Select, Pause and Resume.
//
// # States
//
// An engine is Empty until a slide is added, then Active with exactly one
// selected slide. Orthogonally the timer is Running or stopped (Paused,
// interval disabled, or destroyed). Destroy is terminal for the timer.
//
// # Normalization
//
// Nothing in this package returns an error. Undefined or out-of-range
// indices select the first slide and non-positive intervals disable
// auto-advance.
//
// # Timer
//
// Every navigation call restarts the timer with a full interval. A tick
// advances exactly once and schedules the next tick. Cancelling the timer
// also bumps a generation counter, so a tick that had already been posted to
// the owning loop is dropped when it arrives.
package carousel
