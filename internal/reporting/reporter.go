// Package reporting turns carousel engine events into log lines and a
// bounded timeline. Reporters are invoked on the goroutine that owns the
// engine.
package reporting

import (
	"fmt"

	"carouselctl/internal/carousel"
)

// Reporter receives every engine event.
type Reporter interface {
	Report(ev carousel.Event)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(ev carousel.Event)

func (f ReporterFunc) Report(ev carousel.Event) { f(ev) }

// Observer fans an event out to every non-nil reporter, in order. The result
// is meant for carousel.WithObserver.
func Observer(reporters ...Reporter) func(carousel.Event) {
	return func(ev carousel.Event) {
		for _, r := range reporters {
			if r != nil {
				r.Report(ev)
			}
		}
	}
}

// Describe renders an event as a short human-readable line.
func Describe(ev carousel.Event) string {
	switch ev.Kind {
	case carousel.EventAdd, carousel.EventRemove, carousel.EventUpdate:
		return fmt.Sprintf("%s %q, active %s", ev.Kind, ev.Slide.ID, indexString(ev.To))
	case carousel.EventPause, carousel.EventResume, carousel.EventDestroy, carousel.EventInterval:
		return fmt.Sprintf("%s at %s", ev.Kind, indexString(ev.To))
	default:
		return fmt.Sprintf("%s %s -> %s %q", ev.Kind, indexString(ev.From), indexString(ev.To), ev.Slide.ID)
	}
}

func indexString(i int) string {
	if i == carousel.NoIndex {
		return "-"
	}
	return fmt.Sprint(i)
}
