package controller

import (
	"fmt"
	"time"

	"carouselctl/internal/carousel"
	"carouselctl/internal/deck"
	"carouselctl/internal/tui/model"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTimeout = 3 * time.Second

// For mocking in tests
var writeClipboard = clipboard.WriteAll

// handleKeyMsg processes key presses. Navigation keys are gated on the
// engine's keyboard flag; copy, help and quit always work.
func handleKeyMsg(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	m.Keys.SetNavigationEnabled(m.Engine.Keyboard())

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)

	case key.Matches(keyMsg, m.Keys.Help):
		m.ShowHelp = !m.ShowHelp
		return m, nil

	case key.Matches(keyMsg, m.Keys.Copy):
		return m, copyActiveSlide(m.Engine.Snapshot())

	case key.Matches(keyMsg, m.Keys.Prev):
		m.Engine.HandleKey(carousel.KeyRetreat)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Next):
		m.Engine.HandleKey(carousel.KeyAdvance)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Select):
		// Bindings are "1".."9"
		m.Engine.Select(int(keyMsg.String()[0] - '1'))
		return m, nil

	case key.Matches(keyMsg, m.Keys.Pause):
		if m.Engine.Paused() {
			m.Hovering = false
			m.Engine.Resume()
			return m, m.SetStatusMessage("Resumed", model.StatusBarInfo, statusTimeout)
		}
		m.Engine.Pause()
		return m, m.SetStatusMessage("Paused", model.StatusBarInfo, statusTimeout)
	}
	return m, nil
}

// copyActiveSlide writes the active slide's body to the clipboard.
func copyActiveSlide(snap carousel.Snapshot) tea.Cmd {
	s, ok := snap.ActiveSlide()
	if !ok {
		return nil
	}
	text := slideText(s)
	return func() tea.Msg {
		return model.ClipboardResultMsg{Err: writeClipboard(text)}
	}
}

func slideText(s carousel.Slide) string {
	switch c := s.Content.(type) {
	case deck.Item:
		return c.Body
	case string:
		return c
	case nil:
		return s.ID
	default:
		return fmt.Sprint(c)
	}
}
