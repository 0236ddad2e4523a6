package deck

import (
	"context"
	"fmt"
	"sync"

	"carouselctl/internal/carousel"
	"carouselctl/pkg/logging"
)

// Reloader reloads a source and posts the resulting changes to the goroutine
// that owns the engine.
type Reloader struct {
	src    Source
	engine *carousel.Engine
	post   func(func()) error

	mu    sync.Mutex
	items []Item
}

// NewReloader remembers initial as the currently displayed items.
func NewReloader(src Source, engine *carousel.Engine, initial []Item, post func(func()) error) *Reloader {
	return &Reloader{
		src:    src,
		engine: engine,
		post:   post,
		items:  initial,
	}
}

// Reload loads the source on the calling goroutine and posts the diff. It
// returns the changes that were posted.
func (r *Reloader) Reload(ctx context.Context) (Changes, error) {
	next, err := r.src.Load(ctx)
	if err != nil {
		return Changes{}, fmt.Errorf("failed to reload %s: %w", r.src.Name(), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ch := Diff(r.items, next)
	if ch.Empty() {
		return ch, nil
	}
	if err := r.post(func() { Sync(r.engine, ch) }); err != nil {
		return Changes{}, fmt.Errorf("failed to apply reload of %s: %w", r.src.Name(), err)
	}
	r.items = next
	logging.Info("Deck", "reloaded %s: %d added, %d removed, %d updated",
		r.src.Name(), len(ch.Added), len(ch.Removed), len(ch.Updated))
	return ch, nil
}

// OnChange adapts Reload for Watch, logging failures.
func (r *Reloader) OnChange(ctx context.Context) func() {
	return func() {
		if _, err := r.Reload(ctx); err != nil {
			logging.Error("Deck", err, "reload failed")
		}
	}
}
