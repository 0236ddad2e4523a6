package reporting

import (
	"time"

	"carouselctl/internal/carousel"
	"carouselctl/pkg/logging"

	k8sclock "k8s.io/utils/clock"
)

const subsystem = "Carousel"

// ConsoleReporter logs engine events through pkg/logging. Slide changes are
// logged at info level, everything else at debug.
type ConsoleReporter struct {
	clock k8sclock.PassiveClock
	start time.Time
}

// NewConsoleReporter measures elapsed time from now on clk.
func NewConsoleReporter(clk k8sclock.PassiveClock) *ConsoleReporter {
	return &ConsoleReporter{clock: clk, start: clk.Now()}
}

// Report logs ev with the elapsed time since the reporter was created.
func (c *ConsoleReporter) Report(ev carousel.Event) {
	elapsed := c.clock.Since(c.start).Round(time.Millisecond)
	line := Describe(ev)

	switch {
	case ev.Moved(), ev.Kind == carousel.EventAdd, ev.Kind == carousel.EventRemove:
		logging.Info(subsystem, "+%s %s", elapsed, line)
	case ev.Kind == carousel.EventPause, ev.Kind == carousel.EventResume, ev.Kind == carousel.EventDestroy:
		logging.Info(subsystem, "+%s %s", elapsed, line)
	default:
		logging.Debug(subsystem, "+%s %s", elapsed, line)
	}
}
