package view

import (
	"carouselctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Control labels. Their display widths drive mouse hit-testing, so the
// renderer must draw exactly these strings at the positions in Layout.
const (
	PrevLabel       = "‹ prev"
	NextLabel       = "next ›"
	IndicatorActive = "●"
	Indicator       = "○"

	controlGap   = 2
	logPaneLines = 6
	minBoxHeight = 3
)

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Span is a half-open column range on one row.
type Span struct {
	Start, End int
}

func (s Span) Contains(x int) bool {
	return x >= s.Start && x < s.End
}

// Layout is the geometry of one frame, top to bottom: header, slide box,
// controls row, optional log pane, status line, help.
type Layout struct {
	Width int

	Box Rect

	ControlsY  int
	ControlsX  int
	Prev       Span
	Next       Span
	Indicators []Span

	LogY     int // -1 without a log pane
	LogLines int
	StatusY  int
	HelpY    int
	HelpText string
}

// ComputeLayout derives the frame geometry from the window size, the slide
// count and the visible panes.
func ComputeLayout(m *model.Model) Layout {
	helpText := HelpView(m)
	helpLines := lipgloss.Height(helpText)

	logLines := 0
	if m.DebugMode {
		logLines = logPaneLines
	}

	const header, controls, status = 1, 1, 1
	boxH := m.Height - header - controls - status - helpLines - logLines
	if boxH < minBoxHeight {
		boxH = minBoxHeight
	}

	l := Layout{
		Width:    m.Width,
		Box:      Rect{X: 0, Y: header, W: m.Width, H: boxH},
		LogY:     -1,
		LogLines: logLines,
		HelpText: helpText,
	}
	l.ControlsY = l.Box.Y + l.Box.H

	y := l.ControlsY + controls
	if logLines > 0 {
		l.LogY = y
		y += logLines
	}
	l.StatusY = y
	l.HelpY = y + status

	layoutControls(&l, m.Engine.Len())
	return l
}

// layoutControls centres "‹ prev  ● ○ ○  next ›" on the controls row.
func layoutControls(l *Layout, n int) {
	prevW := runewidth.StringWidth(PrevLabel)
	nextW := runewidth.StringWidth(NextLabel)
	dotW := runewidth.StringWidth(Indicator)

	total := prevW + controlGap + nextW
	if n > 0 {
		total += n*dotW + (n - 1) + controlGap
	}

	x := 0
	if l.Width > total {
		x = (l.Width - total) / 2
	}
	l.ControlsX = x

	l.Prev = Span{Start: x, End: x + prevW}
	x += prevW + controlGap

	l.Indicators = make([]Span, n)
	for i := range n {
		l.Indicators[i] = Span{Start: x, End: x + dotW}
		x += dotW
		if i < n-1 {
			x++
		}
	}
	if n > 0 {
		x += controlGap
	}
	l.Next = Span{Start: x, End: x + nextW}
}

// HelpView renders the short or full help for the current width.
func HelpView(m *model.Model) string {
	h := m.Help
	h.Width = m.Width
	h.ShowAll = m.ShowHelp
	return h.View(m.Keys)
}
