package remote

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"carouselctl/internal/carousel"
	"carouselctl/internal/clock"
	"carouselctl/internal/config"
	"carouselctl/internal/loop"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, n int) (*Server, *carousel.Engine) {
	t.Helper()
	slides := make([]carousel.Slide, n)
	for i := range slides {
		slides[i] = carousel.Slide{ID: string(rune('a' + i))}
	}
	e := carousel.New(carousel.DefaultConfig(), clock.NewVirtual(time.Unix(0, 0)), carousel.WithSlides(slides...))

	l := loop.New(8)
	ctx, cancel := context.WithCancel(context.Background())
	go l.Run(ctx)
	t.Cleanup(func() {
		cancel()
		l.Close()
	})

	return New(e, l, config.RemoteConfig{}), e
}

func call(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func decodeState(t *testing.T, result *mcp.CallToolResult) State {
	t.Helper()
	require.NotNil(t, result)
	require.False(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "Expected TextContent")

	var st State
	require.NoError(t, json.Unmarshal([]byte(text.Text), &st))
	return st
}

func TestNew_Defaults(t *testing.T) {
	s := New(nil, nil, config.RemoteConfig{})
	assert.Equal(t, "localhost:8090", s.Addr())

	s = New(nil, nil, config.RemoteConfig{Host: "0.0.0.0", Port: 9000})
	assert.Equal(t, "0.0.0.0:9000", s.Addr())
}

func TestTools(t *testing.T) {
	s, _ := newTestServer(t, 1)
	names := make(map[string]bool)
	for _, tool := range s.tools() {
		names[tool.Tool.Name] = true
	}

	for _, want := range []string{
		"carousel_state", "carousel_next", "carousel_prev", "carousel_select",
		"carousel_pause", "carousel_resume", "carousel_set_interval",
		"carousel_set_no_wrap", "carousel_set_keyboard",
	} {
		assert.True(t, names[want], want)
	}
	assert.Len(t, names, 7)
	assert.NotNil(t, s.MCPServer())
}

func TestHandleState(t *testing.T) {
	s, _ := newTestServer(t, 3)
	result, err := s.handleState(context.Background(), call("carousel_state", nil))
	require.NoError(t, err)

	st := decodeState(t, result)
	assert.Equal(t, []string{"a", "b", "c"}, st.Slides)
	assert.Equal(t, 0, st.Active)
	assert.Equal(t, "a", st.ActiveID)
	assert.Equal(t, int64(5000), st.IntervalMs)
	assert.True(t, st.Running)
	assert.True(t, st.Keyboard)
}

func TestHandleNavigation(t *testing.T) {
	s, e := newTestServer(t, 3)
	ctx := context.Background()

	result, err := s.handleNext(ctx, call("carousel_next", nil))
	require.NoError(t, err)
	assert.Equal(t, 1, decodeState(t, result).Active)

	result, err = s.handlePrev(ctx, call("carousel_prev", nil))
	require.NoError(t, err)
	assert.Equal(t, 0, decodeState(t, result).Active)

	result, err = s.handleSelect(ctx, call("carousel_select", map[string]interface{}{"index": float64(2)}))
	require.NoError(t, err)
	assert.Equal(t, "c", decodeState(t, result).ActiveID)

	result, err = s.handleSelect(ctx, call("carousel_select", map[string]interface{}{"index": float64(42)}))
	require.NoError(t, err)
	assert.Equal(t, 0, decodeState(t, result).Active)

	// The engine was only touched on the loop; reading it here is safe
	// because Do waited for completion.
	assert.Equal(t, 0, e.Active())
}

func TestHandleSelect_InvalidIndex(t *testing.T) {
	s, _ := newTestServer(t, 2)
	for _, args := range []map[string]interface{}{
		{},
		{"index": "two"},
		{"index": 1.5},
		{"index": 1e300},
	} {
		result, err := s.handleSelect(context.Background(), call("carousel_select", args))
		require.NoError(t, err)
		assert.True(t, result.IsError)
	}
}

func TestHandlePauseResume(t *testing.T) {
	s, _ := newTestServer(t, 2)
	ctx := context.Background()

	result, err := s.handlePause(ctx, call("carousel_pause", nil))
	require.NoError(t, err)
	st := decodeState(t, result)
	assert.True(t, st.Paused)
	assert.False(t, st.Running)

	result, err = s.handleResume(ctx, call("carousel_resume", nil))
	require.NoError(t, err)
	st = decodeState(t, result)
	assert.False(t, st.Paused)
	assert.True(t, st.Running)
}

func TestHandleSetInterval(t *testing.T) {
	s, _ := newTestServer(t, 2)
	ctx := context.Background()

	result, err := s.handleSetInterval(ctx, call("carousel_set_interval", map[string]interface{}{"ms": float64(1500)}))
	require.NoError(t, err)
	st := decodeState(t, result)
	assert.Equal(t, int64(1500), st.IntervalMs)
	assert.True(t, st.Running)

	result, err = s.handleSetInterval(ctx, call("carousel_set_interval", map[string]interface{}{"ms": "0"}))
	require.NoError(t, err)
	st = decodeState(t, result)
	assert.Equal(t, int64(0), st.IntervalMs)
	assert.False(t, st.Running)

	result, err = s.handleSetInterval(ctx, call("carousel_set_interval", map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleSetInterval_OutOfRange(t *testing.T) {
	s, e := newTestServer(t, 2)
	ctx := context.Background()

	for _, ms := range []interface{}{float64(maxIntervalMs + 1), 1e300, "99999999999999999999"} {
		result, err := s.handleSetInterval(ctx, call("carousel_set_interval", map[string]interface{}{"ms": ms}))
		require.NoError(t, err)
		assert.True(t, result.IsError, "ms=%v", ms)
	}

	var interval time.Duration
	require.NoError(t, s.loop.Do(ctx, func() { interval = e.Interval() }))
	assert.Equal(t, carousel.DefaultInterval, interval)
}

func TestHandleSetNoWrapAndKeyboard(t *testing.T) {
	s, _ := newTestServer(t, 2)
	ctx := context.Background()

	result, err := s.handleSetNoWrap(ctx, call("carousel_set_no_wrap", map[string]interface{}{"enabled": true}))
	require.NoError(t, err)
	assert.True(t, decodeState(t, result).NoWrap)

	// Clamped at the last slide now.
	_, err = s.handleNext(ctx, call("carousel_next", nil))
	require.NoError(t, err)
	result, err = s.handleNext(ctx, call("carousel_next", nil))
	require.NoError(t, err)
	assert.Equal(t, 1, decodeState(t, result).Active)

	result, err = s.handleSetKeyboard(ctx, call("carousel_set_keyboard", map[string]interface{}{"enabled": "false"}))
	require.NoError(t, err)
	assert.False(t, decodeState(t, result).Keyboard)

	result, err = s.handleSetKeyboard(ctx, call("carousel_set_keyboard", map[string]interface{}{"enabled": "maybe"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandler_LoopClosed(t *testing.T) {
	e := carousel.New(carousel.DefaultConfig(), clock.NewVirtual(time.Unix(0, 0)))
	l := loop.New(1)
	l.Close()
	s := New(e, l, config.RemoteConfig{})

	result, err := s.handleNext(context.Background(), call("carousel_next", nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestStartStop(t *testing.T) {
	s, _ := newTestServer(t, 1)
	s.port = 0 // any free port
	ctx := context.Background()

	assert.Error(t, s.Stop(ctx), "not started")
	require.NoError(t, s.Start(ctx))
	assert.Error(t, s.Start(ctx), "already started")
	assert.NoError(t, s.Stop(ctx))
}
