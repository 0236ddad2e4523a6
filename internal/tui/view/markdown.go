package view

import (
	"strings"

	"carouselctl/pkg/logging"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Renderer turns slide bodies into terminal text. Markdown output is cached
// per body for the current width, so a frame that only moves the indicator
// does not re-run glamour.
type Renderer struct {
	width int
	md    *glamour.TermRenderer
	cache map[string]string
}

func NewRenderer() *Renderer {
	return &Renderer{cache: make(map[string]string)}
}

// Markdown renders body wrapped to width. It falls back to plain text when
// glamour fails.
func (r *Renderer) Markdown(body string, width int) string {
	if width < 1 {
		width = 1
	}
	if width != r.width || r.md == nil {
		md, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			logging.Warn("TUI", "markdown renderer unavailable: %v", err)
			return r.Text(body, width)
		}
		r.md = md
		r.width = width
		r.cache = make(map[string]string)
	}

	if out, ok := r.cache[body]; ok {
		return out
	}
	out, err := r.md.Render(body)
	if err != nil {
		logging.Warn("TUI", "failed to render markdown: %v", err)
		return r.Text(body, width)
	}
	out = strings.Trim(out, "\n")
	r.cache[body] = out
	return out
}

// Text wraps plain text to width.
func (r *Renderer) Text(body string, width int) string {
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().Width(width).Render(body)
}
