package model

import (
	"carouselctl/internal/loop"
	"carouselctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// ListenForLoop waits for the next queued function. The update handler runs
// it and re-arms the command.
func ListenForLoop(l *loop.Loop) tea.Cmd {
	if l == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case fn := <-l.C():
			return LoopMsg{Fn: fn}
		case <-l.Done():
			return LoopClosedMsg{}
		}
	}
}

// ListenForLogs waits for the next log entry from the TUI log channel.
func ListenForLogs(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
