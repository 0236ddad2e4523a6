// Package deck loads ordered slide sets from inline configuration, a
// directory of markdown files or a Kubernetes ConfigMap, and keeps a running
// engine in sync when the source changes.
package deck

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"carouselctl/internal/carousel"
	"carouselctl/internal/config"
)

// Format tells the renderer how to draw an item body.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// Item is one slide as loaded from a source. It is stored as the Content of
// the engine slide.
type Item struct {
	ID     string
	Title  string
	Body   string
	Format Format
}

// Slide wraps the item for the engine.
func (i Item) Slide() carousel.Slide {
	return carousel.Slide{ID: i.ID, Content: i}
}

// Source produces an ordered list of items.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]Item, error)
}

// Slides converts items to engine slides, keeping order.
func Slides(items []Item) []carousel.Slide {
	out := make([]carousel.Slide, len(items))
	for i, it := range items {
		out[i] = it.Slide()
	}
	return out
}

type inline struct {
	items []Item
}

// Inline serves slides defined in the configuration file.
func Inline(defs []config.SlideDefinition) Source {
	items := make([]Item, len(defs))
	for i, d := range defs {
		items[i] = Item{
			ID:     d.ID,
			Title:  d.Title,
			Body:   d.Body,
			Format: formatOf(d.Format),
		}
		if items[i].Title == "" {
			items[i].Title = titleOf(d.Body, d.ID)
		}
	}
	return &inline{items: items}
}

func (s *inline) Name() string { return "inline" }

func (s *inline) Load(_ context.Context) ([]Item, error) {
	seen := make(map[string]bool, len(s.items))
	for i, it := range s.items {
		if it.ID == "" {
			return nil, fmt.Errorf("inline slide %d has no id", i)
		}
		if seen[it.ID] {
			return nil, fmt.Errorf("duplicate inline slide id %q", it.ID)
		}
		seen[it.ID] = true
	}
	return append([]Item(nil), s.items...), nil
}

func formatOf(s string) Format {
	if strings.EqualFold(s, string(FormatText)) {
		return FormatText
	}
	return FormatMarkdown
}

// formatFor derives the format from a file name or ConfigMap key.
func formatFor(name string) Format {
	if strings.EqualFold(filepath.Ext(name), ".txt") {
		return FormatText
	}
	return FormatMarkdown
}

// titleOf returns the first level-one heading of body, or fallback.
func titleOf(body, fallback string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return fallback
}
