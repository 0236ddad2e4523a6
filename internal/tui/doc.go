// Package tui hosts the terminal renderer and input adapter for carouselctl.
//
// The code is split the same way as every bubbletea program in this module:
//
//   - model: the state (engine handle, window size, hover flag, log lines)
//     plus the messages and commands that feed it
//   - view: pure rendering and the layout used for mouse hit-testing
//   - controller: the tea.Model implementation that routes keys, mouse
//     events, log entries and loop work to the engine
//   - design: colours and shared styles
//
// The engine is only ever touched from the bubbletea update goroutine. Timer
// ticks, deck reloads and remote commands are posted to a loop.Loop whose
// queue is drained by a re-armed command (see model.ListenForLoop).
package tui
