package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayCmd_Flags(t *testing.T) {
	playCmd := newPlayCmd()

	for _, name := range []string{"config", "dir", "configmap", "interval", "no-wrap", "keyboard", "active", "no-tui", "watch", "remote", "debug"} {
		assert.NotNil(t, playCmd.Flags().Lookup(name), "flag %s", name)
	}
}

func TestPlayCmd_OnlyChangedFlagsOverride(t *testing.T) {
	playCmd := newPlayCmd()
	require.NoError(t, playCmd.ParseFlags([]string{"--dir", "slides"}))

	opts := &playOptions{dir: "slides", keyboard: true}
	cfg := opts.appConfig(playCmd)
	assert.Equal(t, "slides", cfg.Dir)
	assert.Nil(t, cfg.Carousel.Interval)
	assert.Nil(t, cfg.Carousel.NoWrap)
	assert.Nil(t, cfg.Carousel.Keyboard)
	assert.Nil(t, cfg.Carousel.Active)
	assert.Nil(t, cfg.Watch)
	assert.Nil(t, cfg.Remote)
}

func TestPlayCmd_ChangedFlags(t *testing.T) {
	playCmd := newPlayCmd()
	require.NoError(t, playCmd.ParseFlags([]string{
		"--interval", "2s", "--no-wrap", "--keyboard=false", "--active", "2",
		"--watch", "--remote", "--no-tui", "--debug",
	}))

	opts := &playOptions{
		interval: 2 * time.Second,
		noWrap:   true,
		keyboard: false,
		active:   2,
		watch:    true,
		remote:   true,
		noTUI:    true,
		debug:    true,
	}
	cfg := opts.appConfig(playCmd)

	require.NotNil(t, cfg.Carousel.Interval)
	assert.Equal(t, 2*time.Second, cfg.Carousel.Interval.D())
	assert.True(t, *cfg.Carousel.NoWrap)
	assert.False(t, *cfg.Carousel.Keyboard)
	assert.Equal(t, 2, *cfg.Carousel.Active)
	assert.True(t, *cfg.Watch)
	assert.True(t, *cfg.Remote)
	assert.True(t, cfg.NoTUI)
	assert.True(t, cfg.Debug)
}

func TestPlayCmd_DirAndConfigMapExclusive(t *testing.T) {
	playCmd := newPlayCmd()
	playCmd.SetArgs([]string{"--dir", "slides", "--configmap", "ns/deck"})
	playCmd.SilenceErrors = true
	playCmd.SilenceUsage = true

	err := playCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}
