package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"carouselctl/internal/carousel"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// maxIntervalMs is the longest interval that still fits a time.Duration.
const maxIntervalMs = math.MaxInt64 / int64(time.Millisecond)

// maxExactFloat bounds whole numbers that float64 represents exactly.
const maxExactFloat = 1 << 53

// State is the JSON view of the engine returned by every tool.
type State struct {
	Slides     []string `json:"slides"`
	Active     int      `json:"active"`
	ActiveID   string   `json:"activeId,omitempty"`
	IntervalMs int64    `json:"intervalMs"`
	NoWrap     bool     `json:"noWrap"`
	Keyboard   bool     `json:"keyboard"`
	Paused     bool     `json:"paused"`
	Running    bool     `json:"running"`
}

func stateOf(snap carousel.Snapshot) State {
	st := State{
		Slides:     make([]string, len(snap.Slides)),
		Active:     snap.Active,
		IntervalMs: snap.Interval.Milliseconds(),
		NoWrap:     snap.NoWrap,
		Keyboard:   snap.Keyboard,
		Paused:     snap.Paused,
		Running:    snap.Running,
	}
	for i, s := range snap.Slides {
		st.Slides[i] = s.ID
	}
	if s, ok := snap.ActiveSlide(); ok {
		st.ActiveID = s.ID
	}
	return st
}

func (s *Server) tools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("carousel_state",
				mcp.WithDescription("Get the slides, active slide and timer state"),
			),
			Handler: s.handleState,
		},
		{
			Tool: mcp.NewTool("carousel_next",
				mcp.WithDescription("Advance to the next slide"),
			),
			Handler: s.handleNext,
		},
		{
			Tool: mcp.NewTool("carousel_prev",
				mcp.WithDescription("Go back to the previous slide"),
			),
			Handler: s.handlePrev,
		},
		{
			Tool: mcp.NewTool("carousel_select",
				mcp.WithDescription("Select a slide by zero-based index; out-of-range selects the first slide"),
				mcp.WithNumber("index",
					mcp.Required(),
					mcp.Description("Zero-based slide index"),
				),
			),
			Handler: s.handleSelect,
		},
		{
			Tool: mcp.NewTool("carousel_pause",
				mcp.WithDescription("Pause auto-advance"),
			),
			Handler: s.handlePause,
		},
		{
			Tool: mcp.NewTool("carousel_resume",
				mcp.WithDescription("Resume auto-advance with a full interval"),
			),
			Handler: s.handleResume,
		},
		{
			Tool: mcp.NewTool("carousel_set_interval",
				mcp.WithDescription("Set the auto-advance interval; 0 or less disables it"),
				mcp.WithNumber("ms",
					mcp.Required(),
					mcp.Description("Interval in milliseconds"),
				),
			),
			Handler: s.handleSetInterval,
		},
		{
			Tool: mcp.NewTool("carousel_set_no_wrap",
				mcp.WithDescription("Stop at the first and last slide instead of wrapping"),
				mcp.WithBoolean("enabled",
					mcp.Required(),
					mcp.Description("true clamps navigation, false wraps"),
				),
			),
			Handler: s.handleSetNoWrap,
		},
		{
			Tool: mcp.NewTool("carousel_set_keyboard",
				mcp.WithDescription("Enable or disable keyboard navigation"),
				mcp.WithBoolean("enabled",
					mcp.Required(),
					mcp.Description("Whether arrow and number keys navigate"),
				),
			),
			Handler: s.handleSetKeyboard,
		},
	}
}

// run executes fn on the loop and returns the resulting state.
func (s *Server) run(ctx context.Context, fn func(e *carousel.Engine)) (*mcp.CallToolResult, error) {
	var snap carousel.Snapshot
	err := s.loop.Do(ctx, func() {
		if fn != nil {
			fn(s.engine)
		}
		snap = s.engine.Snapshot()
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Engine unavailable: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(stateOf(snap), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format state: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (s *Server) handleState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(ctx, nil)
}

func (s *Server) handleNext(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(ctx, (*carousel.Engine).Next)
}

func (s *Server) handlePrev(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(ctx, (*carousel.Engine).Prev)
}

func (s *Server) handleSelect(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, ok := intArg(request, "index")
	if !ok {
		return mcp.NewToolResultError("index parameter must be an integer"), nil
	}
	return s.run(ctx, func(e *carousel.Engine) { e.Select(index) })
}

func (s *Server) handlePause(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(ctx, (*carousel.Engine).Pause)
}

func (s *Server) handleResume(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(ctx, (*carousel.Engine).Resume)
}

func (s *Server) handleSetInterval(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ms, ok := intArg(request, "ms")
	if !ok {
		return mcp.NewToolResultError("ms parameter must be an integer"), nil
	}
	if int64(ms) > maxIntervalMs {
		return mcp.NewToolResultError(fmt.Sprintf("ms parameter must not exceed %d", maxIntervalMs)), nil
	}
	return s.run(ctx, func(e *carousel.Engine) { e.SetInterval(time.Duration(ms) * time.Millisecond) })
}

func (s *Server) handleSetNoWrap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	enabled, ok := boolArg(request, "enabled")
	if !ok {
		return mcp.NewToolResultError("enabled parameter must be a boolean"), nil
	}
	return s.run(ctx, func(e *carousel.Engine) { e.SetNoWrap(enabled) })
}

func (s *Server) handleSetKeyboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	enabled, ok := boolArg(request, "enabled")
	if !ok {
		return mcp.NewToolResultError("enabled parameter must be a boolean"), nil
	}
	return s.run(ctx, func(e *carousel.Engine) { e.SetKeyboard(enabled) })
}

// intArg reads a whole-number argument. JSON numbers arrive as float64.
func intArg(request mcp.CallToolRequest, name string) (int, bool) {
	switch v := request.GetArguments()[name].(type) {
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > maxExactFloat {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	}
	return 0, false
}

func boolArg(request mcp.CallToolRequest, name string) (bool, bool) {
	switch v := request.GetArguments()[name].(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(v)
		return b, err == nil
	}
	return false, false
}
