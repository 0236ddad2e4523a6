package config

import (
	"time"

	"carouselctl/internal/carousel"
	"carouselctl/pkg/logging"
)

// Overrides converts the settings into engine overrides. A negative interval
// is logged and treated as zero, which disables auto-advance.
func (c CarouselSettings) Overrides() carousel.Overrides {
	var o carousel.Overrides
	if c.Interval != nil {
		d := c.Interval.D()
		if d < 0 {
			logging.Warn("Config", "negative carousel interval %s, auto-advance disabled", d)
			d = 0
		}
		o.Interval = &d
	}
	o.NoWrap = c.NoWrap
	o.Keyboard = c.Keyboard
	o.Active = c.Active
	return o
}

// EngineConfig resolves the carousel section into an engine configuration.
func (c CarouselctlConfig) EngineConfig() carousel.Config {
	return carousel.DefaultConfig().Apply(c.Carousel.Overrides())
}

// SetInterval is used by command-line flags to override the loaded value.
func (c *CarouselSettings) SetInterval(d time.Duration) {
	v := Duration(d)
	c.Interval = &v
}
