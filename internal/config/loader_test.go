package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// writeConfigFile writes raw YAML to dir/filename, creating dir.
func writeConfigFile(t *testing.T, dir, filename, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, filename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// mockConfigPaths points the user and project layers into tempDir.
func mockConfigPaths(t *testing.T, tempDir string) (userDir, projectDir string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})

	userDir = filepath.Join(tempDir, "home", userConfigDir)
	projectDir = filepath.Join(tempDir, "work", projectConfigDir)
	getUserConfigPath = func() (string, error) {
		return filepath.Join(userDir, configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(projectDir, configFileName), nil
	}
	return userDir, projectDir
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	mockConfigPaths(t, t.TempDir())

	loaded, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)

	cfg := loaded.EngineConfig()
	assert.Equal(t, 5*time.Second, cfg.Interval)
	assert.False(t, cfg.NoWrap)
	assert.True(t, cfg.Keyboard)
	assert.Nil(t, cfg.Active)
	assert.False(t, loaded.Remote.IsEnabled())
	assert.Equal(t, "localhost:8090", loaded.Remote.Addr())
}

func TestLoadConfig_UserOverride(t *testing.T) {
	userDir, _ := mockConfigPaths(t, t.TempDir())
	writeConfigFile(t, userDir, configFileName, `
carousel:
  interval: 2000
  noWrap: true
deck:
  slides:
    - id: intro
      body: "# Hi"
`)

	loaded, err := LoadConfig("")
	require.NoError(t, err)

	cfg := loaded.EngineConfig()
	assert.Equal(t, 2*time.Second, cfg.Interval)
	assert.True(t, cfg.NoWrap)
	assert.True(t, cfg.Keyboard, "unset keys keep the default")
	require.Len(t, loaded.Deck.Slides, 1)
	assert.Equal(t, "intro", loaded.Deck.Slides[0].ID)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	userDir, projectDir := mockConfigPaths(t, t.TempDir())
	writeConfigFile(t, userDir, configFileName, `
globalSettings:
  logLevel: debug
carousel:
  interval: 3s
  noWrap: true
deck:
  slides:
    - id: a
      body: from user
    - id: b
      body: b
remote:
  enabled: true
  port: 9000
`)
	writeConfigFile(t, projectDir, configFileName, `
carousel:
  noWrap: false
  keyboard: false
deck:
  slides:
    - id: a
      body: from project
    - id: c
      body: c
`)

	loaded, err := LoadConfig("")
	require.NoError(t, err)

	cfg := loaded.EngineConfig()
	assert.Equal(t, 3*time.Second, cfg.Interval)
	assert.False(t, cfg.NoWrap, "explicit false in project beats user true")
	assert.False(t, cfg.Keyboard)
	assert.Equal(t, "debug", loaded.GlobalSettings.LogLevel)
	assert.True(t, loaded.Remote.IsEnabled())
	assert.Equal(t, "localhost:9000", loaded.Remote.Addr())

	require.Len(t, loaded.Deck.Slides, 3)
	assert.Equal(t, "a", loaded.Deck.Slides[0].ID)
	assert.Equal(t, "from project", loaded.Deck.Slides[0].Body)
	assert.Equal(t, "b", loaded.Deck.Slides[1].ID)
	assert.Equal(t, "c", loaded.Deck.Slides[2].ID)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	tempDir := t.TempDir()
	_, projectDir := mockConfigPaths(t, tempDir)
	writeConfigFile(t, projectDir, configFileName, "carousel:\n  interval: 3s\n")
	explicit := writeConfigFile(t, filepath.Join(tempDir, "explicit"), "deck.yaml", `
carousel:
  interval: 0
  active: 2
deck:
  dir: ./slides
  watch: true
`)

	loaded, err := LoadConfig(explicit)
	require.NoError(t, err)

	cfg := loaded.EngineConfig()
	assert.Equal(t, time.Duration(0), cfg.Interval)
	require.NotNil(t, cfg.Active)
	assert.Equal(t, 2, *cfg.Active)
	assert.Equal(t, "./slides", loaded.Deck.Dir)
	require.NotNil(t, loaded.Deck.Watch)
	assert.True(t, *loaded.Deck.Watch)
}

func TestLoadConfig_ExplicitFileMissing(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, tempDir)

	_, err := LoadConfig(filepath.Join(tempDir, "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	userDir, _ := mockConfigPaths(t, t.TempDir())
	writeConfigFile(t, userDir, configFileName, "carousel: [unterminated\n")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading user config")
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	_, projectDir := mockConfigPaths(t, t.TempDir())
	writeConfigFile(t, projectDir, configFileName, "")

	loaded, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
}

func TestDuration_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "milliseconds", input: "v: 2000", want: 2 * time.Second},
		{name: "zero", input: "v: 0", want: 0},
		{name: "negative milliseconds", input: "v: -100", want: -100 * time.Millisecond},
		{name: "duration string", input: "v: 1500ms", want: 1500 * time.Millisecond},
		{name: "quoted", input: `v: "5s"`, want: 5 * time.Second},
		{name: "garbage", input: "v: soon", wantErr: true},
		{name: "sequence", input: "v: [1, 2]", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				V Duration `yaml:"v"`
			}
			err := yaml.Unmarshal([]byte(tt.input), &out)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.V.D())
		})
	}
}

func TestDuration_Marshal(t *testing.T) {
	out, err := yaml.Marshal(struct {
		V Duration `yaml:"v"`
	}{V: Duration(1500 * time.Millisecond)})
	require.NoError(t, err)
	assert.Equal(t, "v: 1.5s\n", string(out))
}

func TestOverrides_NegativeIntervalDisables(t *testing.T) {
	d := Duration(-time.Second)
	settings := CarouselSettings{Interval: &d}

	o := settings.Overrides()
	require.NotNil(t, o.Interval)
	assert.Equal(t, time.Duration(0), *o.Interval)
	assert.Nil(t, o.NoWrap)
}

func TestSetInterval(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Carousel.SetInterval(750 * time.Millisecond)
	assert.Equal(t, 750*time.Millisecond, cfg.EngineConfig().Interval)
}
