package config

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// CarouselctlConfig is the top-level configuration structure for carouselctl.
type CarouselctlConfig struct {
	GlobalSettings GlobalSettings   `yaml:"globalSettings"`
	Carousel       CarouselSettings `yaml:"carousel"`
	Deck           DeckConfig       `yaml:"deck"`
	Remote         RemoteConfig     `yaml:"remote"`
}

// GlobalSettings holds settings that are not specific to one component.
type GlobalSettings struct {
	LogLevel string `yaml:"logLevel,omitempty"` // debug, info, warn or error
}

// CarouselSettings mirrors the engine configuration surface. Every field is a
// pointer so that a layer only overrides what it actually sets; an explicit
// `noWrap: false` in a project file beats `noWrap: true` from the user file.
type CarouselSettings struct {
	Interval *Duration `yaml:"interval,omitempty"` // "5s" or integer milliseconds
	NoWrap   *bool     `yaml:"noWrap,omitempty"`
	Keyboard *bool     `yaml:"keyboard,omitempty"`
	Active   *int      `yaml:"active,omitempty"` // initially selected slide
}

// DeckConfig selects where slides come from. Dir wins over ConfigMap, which
// wins over inline Slides.
type DeckConfig struct {
	Dir         string            `yaml:"dir,omitempty"`
	Watch       *bool             `yaml:"watch,omitempty"`
	ConfigMap   string            `yaml:"configMap,omitempty"` // namespace/name
	Kubeconfig  string            `yaml:"kubeconfig,omitempty"`
	KubeContext string            `yaml:"kubeContext,omitempty"`
	Slides      []SlideDefinition `yaml:"slides,omitempty"`
}

// SlideDefinition is an inline slide.
type SlideDefinition struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title,omitempty"`
	Body   string `yaml:"body"`
	Format string `yaml:"format,omitempty"` // "markdown" (default) or "text"
}

// RemoteConfig configures the MCP remote-control server.
type RemoteConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	Host    string `yaml:"host,omitempty"` // default: localhost
	Port    int    `yaml:"port,omitempty"` // default: 8090
}

// IsEnabled reports whether the remote server should be started.
func (r RemoteConfig) IsEnabled() bool {
	return r.Enabled != nil && *r.Enabled
}

// Addr returns host:port.
func (r RemoteConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Duration is a time.Duration that unmarshals from either a Go duration
// string ("2s", "1500ms") or a bare integer number of milliseconds.
type Duration time.Duration

// D returns the value as a time.Duration.
func (d Duration) D() time.Duration {
	return time.Duration(d)
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", node.Line)
	}
	if node.Tag == "!!int" {
		ms, err := strconv.ParseInt(node.Value, 10, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid milliseconds %q: %w", node.Line, node.Value, err)
		}
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q: %w", node.Line, node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
