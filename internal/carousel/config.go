package carousel

import "time"

// DefaultInterval is the auto-advance period used when none is configured.
const DefaultInterval = 5 * time.Second

// Config holds the construction-time settings of an Engine.
type Config struct {
	// Interval between automatic advances. Zero or negative disables the timer.
	Interval time.Duration
	// NoWrap clamps navigation at the first and last slide instead of cycling.
	NoWrap bool
	// Keyboard enables HandleKey.
	Keyboard bool
	// Active is the initially requested slide. Nil or out of range selects 0.
	Active *int
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		Interval: DefaultInterval,
		NoWrap:   false,
		Keyboard: true,
	}
}

// Overrides carries optionally supplied settings. Only non-nil fields replace
// the corresponding Config value.
type Overrides struct {
	Interval *time.Duration
	NoWrap   *bool
	Keyboard *bool
	Active   *int
}

// Apply returns c with every supplied override applied.
func (c Config) Apply(o Overrides) Config {
	if o.Interval != nil {
		c.Interval = *o.Interval
	}
	if o.NoWrap != nil {
		c.NoWrap = *o.NoWrap
	}
	if o.Keyboard != nil {
		c.Keyboard = *o.Keyboard
	}
	if o.Active != nil {
		active := *o.Active
		c.Active = &active
	}
	return c
}
