package model

import "carouselctl/pkg/logging"

// LoopMsg carries one function taken from the loop queue. It must be run
// exactly once on the update goroutine.
type LoopMsg struct {
	Fn func()
}

// LoopClosedMsg is delivered once the loop has been closed.
type LoopClosedMsg struct{}

// NewLogEntryMsg carries a log entry for the debug pane.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ClearStatusBarMsg clears the status bar.
type ClearStatusBarMsg struct{}

// ClipboardResultMsg reports the outcome of a copy.
type ClipboardResultMsg struct {
	Err error
}
