package deck

import (
	"carouselctl/internal/carousel"
)

// Changes is the difference between two loads of the same source.
type Changes struct {
	Added   []Item
	Removed []string
	Updated []Item
}

// Empty reports whether nothing changed.
func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Updated) == 0
}

// Diff compares two item lists by ID. Added keeps the order of next; Removed
// keeps the order of prev.
func Diff(prev, next []Item) Changes {
	old := make(map[string]Item, len(prev))
	for _, it := range prev {
		old[it.ID] = it
	}
	seen := make(map[string]bool, len(next))

	var ch Changes
	for _, it := range next {
		seen[it.ID] = true
		before, ok := old[it.ID]
		switch {
		case !ok:
			ch.Added = append(ch.Added, it)
		case before != it:
			ch.Updated = append(ch.Updated, it)
		}
	}
	for _, it := range prev {
		if !seen[it.ID] {
			ch.Removed = append(ch.Removed, it.ID)
		}
	}
	return ch
}

// Sync applies ch to the engine: removals first, then in-place updates, then
// appends. Must run on the goroutine that owns the engine.
func Sync(e *carousel.Engine, ch Changes) {
	for _, id := range ch.Removed {
		e.RemoveSlide(id)
	}
	for _, it := range ch.Updated {
		e.UpdateSlide(it.Slide())
	}
	for _, it := range ch.Added {
		e.AddSlide(it.Slide())
	}
}
