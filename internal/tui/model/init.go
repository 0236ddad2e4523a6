package model

import (
	"carouselctl/internal/carousel"
	"carouselctl/internal/loop"
	"carouselctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
)

// Options configures InitializeModel.
type Options struct {
	Engine     *carousel.Engine
	Loop       *loop.Loop
	Source     string
	DebugMode  bool
	LogChannel <-chan logging.LogEntry
}

// InitializeModel builds the initial model. Width and Height stay zero until
// the first WindowSizeMsg.
func InitializeModel(opts Options) *Model {
	keys := DefaultKeyMap()
	keys.SetNavigationEnabled(opts.Engine.Keyboard())

	return &Model{
		Engine:     opts.Engine,
		Loop:       opts.Loop,
		Source:     opts.Source,
		Keys:       keys,
		Help:       help.New(),
		DebugMode:  opts.DebugMode,
		LogChannel: opts.LogChannel,
	}
}
