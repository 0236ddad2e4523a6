package controller

import (
	"carouselctl/internal/tui/model"
	"carouselctl/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg pauses while the pointer is over the slide box and resumes
// when it leaves. Left clicks on the controls row navigate; clicks are not
// gated by the keyboard flag.
func handleMouseMsg(m *model.Model, msg tea.MouseMsg) (*model.Model, tea.Cmd) {
	l := view.ComputeLayout(m)

	inside := l.Box.Contains(msg.X, msg.Y)
	switch {
	case inside && !m.Hovering:
		m.Hovering = true
		m.Engine.Pause()
	case !inside && m.Hovering:
		m.Hovering = false
		m.Engine.Resume()
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || msg.Y != l.ControlsY {
		return m, nil
	}

	switch {
	case l.Prev.Contains(msg.X):
		m.Engine.Prev()
	case l.Next.Contains(msg.X):
		m.Engine.Next()
	default:
		for i, span := range l.Indicators {
			if span.Contains(msg.X) {
				m.Engine.Select(i)
				break
			}
		}
	}
	return m, nil
}
