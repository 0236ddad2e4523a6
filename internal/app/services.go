package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carouselctl/internal/carousel"
	"carouselctl/internal/clock"
	"carouselctl/internal/config"
	"carouselctl/internal/deck"
	"carouselctl/internal/kube"
	"carouselctl/internal/loop"
	"carouselctl/internal/remote"
	"carouselctl/internal/reporting"
	"carouselctl/pkg/logging"
)

// loadTimeout bounds the initial deck load, mostly for ConfigMap decks.
const loadTimeout = 30 * time.Second

// Services holds the engine and everything that feeds it
type Services struct {
	Loop    *loop.Loop
	Engine  *carousel.Engine
	Source  deck.Source
	Items   []deck.Item
	Console *reporting.ConsoleReporter

	// Reloader and WatchDir are set when the deck is a watched directory.
	Reloader *deck.Reloader
	WatchDir string
	// Remote is set when remote control is enabled.
	Remote *remote.Server
}

// InitializeServices loads the deck and creates the engine on a posting
// clock, so that every timer tick runs on the loop.
func InitializeServices(ctx context.Context, cfg *Config) (*Services, error) {
	c := cfg.CarouselctlConfig
	if c == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}

	src, err := NewSource(c.Deck)
	if err != nil {
		return nil, err
	}

	loadCtx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()
	items, err := src.Load(loadCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck %s: %w", src.Name(), err)
	}
	if len(items) == 0 {
		logging.Warn("Bootstrap", "Deck %s has no slides", src.Name())
	}
	logging.Info("Bootstrap", "Loaded %d slides from %s", len(items), src.Name())

	l := loop.New(0)
	console := reporting.NewConsoleReporter(clock.Real())
	engine := carousel.New(
		c.EngineConfig(),
		clock.Posted(clock.Real(), postTick(l)),
		carousel.WithObserver(reporting.Observer(console)),
		carousel.WithSlides(deck.Slides(items)...),
	)

	s := &Services{
		Loop:    l,
		Engine:  engine,
		Source:  src,
		Items:   items,
		Console: console,
	}

	if isSet(c.Deck.Watch) {
		if c.Deck.Dir == "" {
			logging.Warn("Bootstrap", "Watching is only supported for directory decks, ignoring")
		} else {
			s.Reloader = deck.NewReloader(src, engine, items, l.Post)
			s.WatchDir = c.Deck.Dir
		}
	}
	if c.Remote.IsEnabled() {
		s.Remote = remote.New(engine, l, c.Remote)
	}
	return s, nil
}

// NewSource picks the deck source: a directory, then a ConfigMap, then the
// inline slides.
func NewSource(d config.DeckConfig) (deck.Source, error) {
	switch {
	case d.Dir != "":
		return deck.Dir(d.Dir), nil

	case d.ConfigMap != "":
		namespace, name, err := deck.ParseConfigMapRef(d.ConfigMap)
		if err != nil {
			return nil, err
		}
		kubeContext, err := kube.ResolveContext(d.Kubeconfig, d.KubeContext)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve kube context: %w", err)
		}
		logging.Debug("Bootstrap", "Using kube context %s for configmap %s/%s", kubeContext, namespace, name)

		client, err := kube.NewClient(d.Kubeconfig, kubeContext)
		if err != nil {
			return nil, err
		}
		return deck.ConfigMap(client, namespace, name), nil

	default:
		return deck.Inline(d.Slides), nil
	}
}

// postTick offers timer callbacks to the loop. A full queue is reported so
// the clock retries; a closed loop means shutdown and the tick is dropped.
func postTick(l *loop.Loop) func(func()) error {
	return func(fn func()) error {
		err := l.Post(fn)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, loop.ErrClosed):
			logging.Debug("Timer", "Tick dropped: %v", err)
			return nil
		default:
			logging.Debug("Timer", "Tick deferred: %v", err)
			return err
		}
	}
}

func isSet(b *bool) bool {
	return b != nil && *b
}
