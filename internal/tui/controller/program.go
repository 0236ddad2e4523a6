package controller

import (
	"carouselctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program. All mouse motion is reported so
// that hovering over the slide pauses the carousel.
func NewProgram(opts model.Options) *tea.Program {
	m := model.InitializeModel(opts)
	app := NewAppModel(m)
	return tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion())
}
