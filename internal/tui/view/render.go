package view

import (
	"fmt"
	"strings"

	"carouselctl/internal/carousel"
	"carouselctl/internal/deck"
	"carouselctl/internal/tui/design"
	"carouselctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Render draws one frame.
func Render(m *model.Model, r *Renderer) string {
	if m.Width == 0 || m.Height == 0 {
		return "Initializing..."
	}

	l := ComputeLayout(m)
	snap := m.Engine.Snapshot()

	rows := []string{
		renderHeader(m, snap, l.Width),
		renderSlide(m, snap, l.Box, r),
		renderControls(snap, l),
	}
	if l.LogY >= 0 {
		rows = append(rows, renderLogPane(m.ActivityLog, l.LogLines, l.Width))
	}
	rows = append(rows, renderStatus(m, snap, l.Width), l.HelpText)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderHeader(m *model.Model, snap carousel.Snapshot, width int) string {
	left := "carouselctl"
	if m.Source != "" {
		left += " · " + m.Source
	}

	position := fmt.Sprintf("%d/%d", snap.Active+1, len(snap.Slides))
	if len(snap.Slides) == 0 {
		position = "0/0"
	}
	var state string
	switch {
	case snap.Paused:
		state = design.TextWarningStyle.Render("⏸ paused")
	case snap.Running:
		state = design.TextSuccessStyle.Render("▶ " + snap.Interval.String())
	default:
		state = design.TextMutedStyle.Render("■ stopped")
	}
	right := position + "  " + state

	left = design.TitleStyle.Render(left)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(left + strings.Repeat(" ", gap) + right)
}

func renderSlide(m *model.Model, snap carousel.Snapshot, box Rect, r *Renderer) string {
	style := design.SlideStyle
	if m.Hovering {
		style = design.SlideHoverStyle
	}

	innerW := box.W - style.GetHorizontalFrameSize()
	innerH := box.H - style.GetVerticalFrameSize()
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	var content string
	if s, ok := snap.ActiveSlide(); ok {
		content = slideBody(s, innerW, r)
	} else {
		content = design.TextMutedStyle.Render("No slides")
	}
	content = clipLines(lipgloss.NewStyle().MaxWidth(innerW).Render(content), innerH)

	return style.
		Width(box.W - style.GetHorizontalBorderSize()).
		Height(innerH).
		Render(content)
}

// slideBody renders the slide content. Only deck items carry formatting
// hints; anything else is printed as text.
func slideBody(s carousel.Slide, width int, r *Renderer) string {
	switch c := s.Content.(type) {
	case deck.Item:
		if c.Format == deck.FormatMarkdown {
			return r.Markdown(c.Body, width)
		}
		title := design.TitleStyle.Render(c.Title)
		return title + "\n\n" + r.Text(c.Body, width)
	case string:
		return r.Text(c, width)
	case nil:
		return r.Text(s.ID, width)
	default:
		return r.Text(fmt.Sprint(c), width)
	}
}

func clipLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

func renderControls(snap carousel.Snapshot, l Layout) string {
	n := len(snap.Slides)
	atFirst := n == 0 || (snap.NoWrap && snap.Active == 0)
	atLast := n == 0 || (snap.NoWrap && snap.Active == n-1)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", l.ControlsX))
	b.WriteString(controlStyle(atFirst).Render(PrevLabel))
	b.WriteString(strings.Repeat(" ", controlGap))
	for i := range n {
		if snap.IsActive(i) {
			b.WriteString(design.IndicatorActiveStyle.Render(IndicatorActive))
		} else {
			b.WriteString(design.IndicatorStyle.Render(Indicator))
		}
		if i < n-1 {
			b.WriteString(" ")
		}
	}
	if n > 0 {
		b.WriteString(strings.Repeat(" ", controlGap))
	}
	b.WriteString(controlStyle(atLast).Render(NextLabel))
	return b.String()
}

func controlStyle(disabled bool) lipgloss.Style {
	if disabled {
		return design.ControlDisabledStyle
	}
	return design.ControlStyle
}

func renderLogPane(lines []string, height, width int) string {
	start := len(lines) - height
	if start < 0 {
		start = 0
	}
	visible := lines[start:]

	out := make([]string, height)
	for i := range out {
		if i < len(visible) {
			out[i] = design.TextSecondaryStyle.Render(runewidth.Truncate(visible[i], width, "…"))
		}
	}
	return strings.Join(out, "\n")
}

func renderStatus(m *model.Model, snap carousel.Snapshot, width int) string {
	var line string
	switch {
	case m.StatusBarMessage != "":
		line = statusStyle(m.StatusBarMessageType).Render(m.StatusBarMessage)
	case m.Hovering:
		line = design.TextWarningStyle.Render("paused while hovering")
	case snap.Paused:
		line = design.TextWarningStyle.Render("paused")
	case snap.Interval <= 0:
		line = design.TextMutedStyle.Render("auto-advance off")
	case !snap.Keyboard:
		line = design.TextMutedStyle.Render("keyboard navigation disabled")
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

func statusStyle(t model.MessageType) lipgloss.Style {
	switch t {
	case model.StatusBarSuccess:
		return design.TextSuccessStyle
	case model.StatusBarError:
		return design.TextErrorStyle
	case model.StatusBarWarning:
		return design.TextWarningStyle
	default:
		return design.TextSecondaryStyle
	}
}
