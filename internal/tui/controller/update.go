package controller

import (
	"carouselctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// mainUpdate routes messages. Every engine call happens here, on the
// bubbletea update goroutine.
func mainUpdate(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return handleKeyMsg(m, msg)

	case tea.MouseMsg:
		return handleMouseMsg(m, msg)

	case model.LoopMsg:
		if msg.Fn != nil {
			msg.Fn()
		}
		// The keyboard flag can be changed by work posted to the loop.
		m.Keys.SetNavigationEnabled(m.Engine.Keyboard())
		return m, model.ListenForLoop(m.Loop)

	case model.LoopClosedMsg:
		return m, nil

	case model.NewLogEntryMsg:
		m.AddRawLineToActivityLog(msg.Entry.String())
		return m, model.ListenForLogs(m.LogChannel)

	case model.ClipboardResultMsg:
		if msg.Err != nil {
			return m, m.SetStatusMessage("Copy failed: "+msg.Err.Error(), model.StatusBarError, statusTimeout)
		}
		return m, m.SetStatusMessage("Slide copied to clipboard", model.StatusBarSuccess, statusTimeout)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		m.StatusBarClearCancel = nil
		return m, nil
	}
	return m, nil
}

// quit destroys the engine so no tick outlives the program.
func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.QuitApp = true
	m.Engine.Destroy()
	if m.Loop != nil {
		m.Loop.Close()
	}
	return m, tea.Quit
}
