package model

import (
	"time"

	"carouselctl/internal/carousel"
	"carouselctl/internal/loop"
	"carouselctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// MaxActivityLogLines bounds the debug log pane history.
const MaxActivityLogLines = 200

// MessageType styles the status bar.
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Model is the TUI state. Engine is owned by the bubbletea update goroutine.
type Model struct {
	Engine *carousel.Engine
	Loop   *loop.Loop
	Source string // deck name shown in the header

	Keys KeyMap
	Help help.Model

	Width  int
	Height int

	// Hovering is true while the pointer is over the slide box and the
	// engine has been paused because of it.
	Hovering  bool
	ShowHelp  bool
	DebugMode bool
	QuitApp   bool

	LogChannel  <-chan logging.LogEntry
	ActivityLog []string

	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}
}

// SetStatusMessage updates the status bar message and clears it after
// clearAfter unless another message replaces it first.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// AddRawLineToActivityLog appends a line, trimming the oldest beyond the cap.
func (m *Model) AddRawLineToActivityLog(line string) {
	m.ActivityLog = append(m.ActivityLog, line)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
}
