package app

import (
	"carouselctl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// ConfigPath is an explicit configuration file layered on top of the
	// user and project files.
	ConfigPath string

	// Command-line overrides. Empty strings and nil pointers leave the loaded
	// configuration untouched.
	Dir       string
	ConfigMap string
	Watch     *bool
	Remote    *bool
	Carousel  config.CarouselSettings

	// Resolved configuration, set by NewApplication
	CarouselctlConfig *config.CarouselctlConfig
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool) *Config {
	return &Config{
		NoTUI: noTUI,
		Debug: debug,
	}
}

// applyFlags layers the command-line overrides onto the loaded file
// configuration. A deck selected on the command line replaces the one from
// the files entirely.
func (c *Config) applyFlags(file config.CarouselctlConfig) config.CarouselctlConfig {
	switch {
	case c.Dir != "":
		file.Deck.Dir = c.Dir
		file.Deck.ConfigMap = ""
	case c.ConfigMap != "":
		file.Deck.Dir = ""
		file.Deck.ConfigMap = c.ConfigMap
	}
	if c.Watch != nil {
		file.Deck.Watch = c.Watch
	}
	if c.Remote != nil {
		file.Remote.Enabled = c.Remote
	}

	if c.Carousel.Interval != nil {
		file.Carousel.Interval = c.Carousel.Interval
	}
	if c.Carousel.NoWrap != nil {
		file.Carousel.NoWrap = c.Carousel.NoWrap
	}
	if c.Carousel.Keyboard != nil {
		file.Carousel.Keyboard = c.Carousel.Keyboard
	}
	if c.Carousel.Active != nil {
		file.Carousel.Active = c.Carousel.Active
	}
	return file
}
