package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"carouselctl/internal/config"
	"carouselctl/internal/kube"
	"carouselctl/internal/loop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/kubernetes/fake"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/tools/clientcmd/api"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func inlineConfig(ids ...string) *config.CarouselctlConfig {
	cfg := config.GetDefaultConfig()
	for _, id := range ids {
		cfg.Deck.Slides = append(cfg.Deck.Slides, config.SlideDefinition{ID: id, Body: "body " + id, Format: "text"})
	}
	return &cfg
}

func newTestServices(t *testing.T, c *config.CarouselctlConfig) *Services {
	t.Helper()
	s, err := InitializeServices(context.Background(), &Config{NoTUI: true, CarouselctlConfig: c})
	require.NoError(t, err)
	t.Cleanup(func() { shutdownEngine(s) })
	return s
}

func TestApplyFlags(t *testing.T) {
	file := config.GetDefaultConfig()
	file.Deck.ConfigMap = "slides/deck"
	file.Carousel.NoWrap = boolPtr(true)

	t.Run("no flags keeps file values", func(t *testing.T) {
		got := NewConfig(true, false).applyFlags(file)
		assert.Equal(t, "slides/deck", got.Deck.ConfigMap)
		require.NotNil(t, got.Carousel.NoWrap)
		assert.True(t, *got.Carousel.NoWrap)
		assert.Equal(t, 5*time.Second, got.Carousel.Interval.D())
	})

	t.Run("dir flag replaces the configmap deck", func(t *testing.T) {
		cfg := NewConfig(true, false)
		cfg.Dir = "/slides"
		got := cfg.applyFlags(file)
		assert.Equal(t, "/slides", got.Deck.Dir)
		assert.Empty(t, got.Deck.ConfigMap)
	})

	t.Run("configmap flag replaces the dir deck", func(t *testing.T) {
		withDir := file
		withDir.Deck.Dir = "/from-file"
		cfg := NewConfig(true, false)
		cfg.ConfigMap = "other/deck"
		got := cfg.applyFlags(withDir)
		assert.Empty(t, got.Deck.Dir)
		assert.Equal(t, "other/deck", got.Deck.ConfigMap)
	})

	t.Run("carousel flags override by presence", func(t *testing.T) {
		cfg := NewConfig(true, false)
		cfg.Carousel.SetInterval(2 * time.Second)
		cfg.Carousel.NoWrap = boolPtr(false)
		cfg.Carousel.Active = intPtr(3)
		cfg.Remote = boolPtr(true)
		cfg.Watch = boolPtr(true)

		got := cfg.applyFlags(file)
		assert.Equal(t, 2*time.Second, got.Carousel.Interval.D())
		assert.False(t, *got.Carousel.NoWrap)
		assert.True(t, *got.Carousel.Keyboard)
		assert.Equal(t, 3, *got.Carousel.Active)
		assert.True(t, got.Remote.IsEnabled())
		assert.True(t, *got.Deck.Watch)
	})
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name       string
		debug      bool
		configured string
		want       string
	}{
		{name: "default", want: "INFO"},
		{name: "configured", configured: "warn", want: "WARN"},
		{name: "debug flag wins", debug: true, configured: "error", want: "DEBUG"},
		{name: "unknown falls back to info", configured: "loud", want: "INFO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logLevel(tt.debug, tt.configured).String())
		})
	}
}

func TestNewSource(t *testing.T) {
	t.Run("dir wins", func(t *testing.T) {
		src, err := NewSource(config.DeckConfig{Dir: "/slides", ConfigMap: "ns/deck"})
		require.NoError(t, err)
		assert.Equal(t, "dir:/slides", src.Name())
	})

	t.Run("inline by default", func(t *testing.T) {
		src, err := NewSource(config.DeckConfig{})
		require.NoError(t, err)
		assert.Equal(t, "inline", src.Name())
	})

	t.Run("invalid configmap ref", func(t *testing.T) {
		_, err := NewSource(config.DeckConfig{ConfigMap: "a/b/c"})
		assert.Error(t, err)
	})

	t.Run("configmap", func(t *testing.T) {
		kubeconfig := writeKubeconfig(t, "kind-dev")
		client := fake.NewSimpleClientset(&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Namespace: "talks", Name: "deck"},
			Data:       map[string]string{"01-intro.md": "# Intro", "02-end.txt": "bye"},
		})

		orig := kube.NewClient
		var gotContext string
		kube.NewClient = func(_, kubeContext string) (kubernetes.Interface, error) {
			gotContext = kubeContext
			return client, nil
		}
		t.Cleanup(func() { kube.NewClient = orig })

		src, err := NewSource(config.DeckConfig{ConfigMap: "talks/deck", Kubeconfig: kubeconfig})
		require.NoError(t, err)
		assert.Equal(t, "configmap:talks/deck", src.Name())
		assert.Equal(t, "kind-dev", gotContext)

		items, err := src.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "01-intro.md", items[0].ID)
	})

	t.Run("unknown kube context", func(t *testing.T) {
		kubeconfig := writeKubeconfig(t, "kind-dev")
		_, err := NewSource(config.DeckConfig{ConfigMap: "talks/deck", Kubeconfig: kubeconfig, KubeContext: "prod"})
		assert.Error(t, err)
	})
}

func TestInitializeServices(t *testing.T) {
	s := newTestServices(t, inlineConfig("a", "b", "c"))

	assert.Equal(t, "inline", s.Source.Name())
	assert.Equal(t, 3, s.Engine.Len())
	assert.Equal(t, 0, s.Engine.Active())
	assert.True(t, s.Engine.Running())
	assert.Nil(t, s.Reloader)
	assert.Nil(t, s.Remote)
}

func TestInitializeServices_RequiresConfig(t *testing.T) {
	_, err := InitializeServices(context.Background(), &Config{})
	assert.Error(t, err)
}

func TestInitializeServices_WatchNeedsDir(t *testing.T) {
	c := inlineConfig("a")
	c.Deck.Watch = boolPtr(true)
	s := newTestServices(t, c)
	assert.Nil(t, s.Reloader)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01.md"), []byte("# One"), 0o644))
	c.Deck.Dir = dir
	s = newTestServices(t, c)
	assert.NotNil(t, s.Reloader)
	assert.Equal(t, dir, s.WatchDir)
	assert.Equal(t, 1, s.Engine.Len())
}

func TestInitializeServices_Remote(t *testing.T) {
	c := inlineConfig("a")
	c.Remote.Enabled = boolPtr(true)
	s := newTestServices(t, c)
	require.NotNil(t, s.Remote)
	assert.Equal(t, "localhost:8090", s.Remote.Addr())
}

func TestInitializeServices_TickRunsOnLoop(t *testing.T) {
	c := inlineConfig("a", "b")
	c.Carousel.SetInterval(10 * time.Millisecond)
	s := newTestServices(t, c)

	// The tick is queued on the loop, not applied by the timer goroutine.
	var fn func()
	select {
	case fn = <-s.Loop.C():
	case <-time.After(2 * time.Second):
		t.Fatal("no tick posted")
	}
	assert.Equal(t, 0, s.Engine.Active())
	fn()
	assert.Equal(t, 1, s.Engine.Active())
}

func TestPostTick(t *testing.T) {
	l := loop.New(1)
	post := postTick(l)

	require.NoError(t, post(func() {}))
	assert.ErrorIs(t, post(func() {}), loop.ErrFull)

	l.Close()
	assert.NoError(t, post(func() {}))
}

func TestShutdownEngine(t *testing.T) {
	s, err := InitializeServices(context.Background(), &Config{CarouselctlConfig: inlineConfig("a", "b")})
	require.NoError(t, err)

	shutdownEngine(s)
	assert.True(t, s.Engine.Destroyed())
	assert.False(t, s.Engine.Running())
	assert.Error(t, s.Loop.Post(func() {}))
}

func TestNewApplication(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "carousel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
carousel:
  interval: 2000
  noWrap: true
deck:
  slides:
    - id: one
      body: first
    - id: two
      body: second
`), 0o644))

	cfg := NewConfig(true, false)
	cfg.ConfigPath = path
	cfg.Carousel.Active = intPtr(1)

	application, err := NewApplication(context.Background(), cfg)
	require.NoError(t, err)
	s := application.Services()
	t.Cleanup(func() { shutdownEngine(s) })

	assert.Equal(t, 2, s.Engine.Len())
	assert.Equal(t, 1, s.Engine.Active())
	assert.Equal(t, 2*time.Second, s.Engine.Interval())
	assert.True(t, s.Engine.NoWrap())
}

func TestNewApplication_MissingConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := NewConfig(true, false)
	cfg.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewApplication(context.Background(), cfg)
	assert.Error(t, err)
}

func TestRunCLIMode_StopsOnCancel(t *testing.T) {
	s := newTestServices(t, inlineConfig("a", "b"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runCLIMode(ctx, NewConfig(true, false), s) }()

	require.NoError(t, s.Loop.Do(context.Background(), s.Engine.Next))
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runCLIMode did not return")
	}
	assert.True(t, s.Engine.Destroyed())
}

func writeKubeconfig(t *testing.T, current string) string {
	t.Helper()
	cfg := api.NewConfig()
	cfg.Clusters["test"] = &api.Cluster{Server: "https://127.0.0.1:6443"}
	cfg.AuthInfos["test"] = &api.AuthInfo{Token: "token"}
	cfg.Contexts[current] = &api.Context{Cluster: "test", AuthInfo: "test"}
	cfg.CurrentContext = current

	path := filepath.Join(t.TempDir(), "kubeconfig")
	require.NoError(t, clientcmd.WriteToFile(*cfg, path))
	return path
}
