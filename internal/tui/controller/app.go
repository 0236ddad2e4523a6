package controller

import (
	"carouselctl/internal/tui/model"
	"carouselctl/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// AppModel implements tea.Model around the shared model state.
type AppModel struct {
	model    *model.Model
	renderer *view.Renderer
}

// NewAppModel wraps m.
func NewAppModel(m *model.Model) *AppModel {
	return &AppModel{model: m, renderer: view.NewRenderer()}
}

// Init starts draining the loop and, in debug mode, the log channel.
func (a *AppModel) Init() tea.Cmd {
	return tea.Batch(
		model.ListenForLoop(a.model.Loop),
		model.ListenForLogs(a.model.LogChannel),
	)
}

func (a *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.model, cmd = mainUpdate(a.model, msg)
	return a, cmd
}

func (a *AppModel) View() string {
	if a.model.QuitApp {
		return ""
	}
	return view.Render(a.model, a.renderer)
}

// Model exposes the state, mostly for tests.
func (a *AppModel) Model() *model.Model {
	return a.model
}
