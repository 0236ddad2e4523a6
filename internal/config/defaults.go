package config

import (
	"carouselctl/internal/carousel"
)

const (
	defaultRemoteHost = "localhost"
	defaultRemotePort = 8090
	defaultLogLevel   = "info"
)

// GetDefaultConfig returns the built-in configuration: a 5s interval with
// wrapping and keyboard navigation on, no deck and the remote server off.
func GetDefaultConfig() CarouselctlConfig {
	interval := Duration(carousel.DefaultInterval)
	noWrap := false
	keyboard := true
	watch := false
	remote := false

	return CarouselctlConfig{
		GlobalSettings: GlobalSettings{
			LogLevel: defaultLogLevel,
		},
		Carousel: CarouselSettings{
			Interval: &interval,
			NoWrap:   &noWrap,
			Keyboard: &keyboard,
		},
		Deck: DeckConfig{
			Watch: &watch,
		},
		Remote: RemoteConfig{
			Enabled: &remote,
			Host:    defaultRemoteHost,
			Port:    defaultRemotePort,
		},
	}
}
