package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"carouselctl/pkg/logging"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/carouselctl"
	projectConfigDir = ".carouselctl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the carouselctl configuration by layering default, user,
// project and finally the explicit file (if path is not empty). Unlike the
// user and project layers, a missing explicit file is an error.
func LoadConfig(path string) (CarouselctlConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. User-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		logging.Warn("Config", "could not determine user config path: %v", err)
	} else if config, err = mergeOptional(config, userConfigPath); err != nil {
		return CarouselctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	// 3. Project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "could not determine project config path: %v", err)
	} else if config, err = mergeOptional(config, projectConfigPath); err != nil {
		return CarouselctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	// 4. Explicit --config file
	if path != "" {
		explicit, err := loadConfigFromFile(path)
		if err != nil {
			return CarouselctlConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
		}
		config = mergeConfigs(config, explicit)
	}

	return config, nil
}

func mergeOptional(base CarouselctlConfig, path string) (CarouselctlConfig, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	logging.Debug("Config", "merged %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a CarouselctlConfig from a YAML file.
func loadConfigFromFile(filePath string) (CarouselctlConfig, error) {
	var config CarouselctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return CarouselctlConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return CarouselctlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Pointer fields
// override when set, strings and ints when non-empty. Inline slides are
// merged by ID, keeping base order and appending new IDs.
func mergeConfigs(base, overlay CarouselctlConfig) CarouselctlConfig {
	merged := base

	if overlay.GlobalSettings.LogLevel != "" {
		merged.GlobalSettings.LogLevel = overlay.GlobalSettings.LogLevel
	}

	// Carousel
	if overlay.Carousel.Interval != nil {
		merged.Carousel.Interval = overlay.Carousel.Interval
	}
	if overlay.Carousel.NoWrap != nil {
		merged.Carousel.NoWrap = overlay.Carousel.NoWrap
	}
	if overlay.Carousel.Keyboard != nil {
		merged.Carousel.Keyboard = overlay.Carousel.Keyboard
	}
	if overlay.Carousel.Active != nil {
		merged.Carousel.Active = overlay.Carousel.Active
	}

	// Deck
	if overlay.Deck.Dir != "" {
		merged.Deck.Dir = overlay.Deck.Dir
	}
	if overlay.Deck.Watch != nil {
		merged.Deck.Watch = overlay.Deck.Watch
	}
	if overlay.Deck.ConfigMap != "" {
		merged.Deck.ConfigMap = overlay.Deck.ConfigMap
	}
	if overlay.Deck.Kubeconfig != "" {
		merged.Deck.Kubeconfig = overlay.Deck.Kubeconfig
	}
	if overlay.Deck.KubeContext != "" {
		merged.Deck.KubeContext = overlay.Deck.KubeContext
	}
	merged.Deck.Slides = mergeSlides(base.Deck.Slides, overlay.Deck.Slides)

	// Remote
	if overlay.Remote.Enabled != nil {
		merged.Remote.Enabled = overlay.Remote.Enabled
	}
	if overlay.Remote.Host != "" {
		merged.Remote.Host = overlay.Remote.Host
	}
	if overlay.Remote.Port != 0 {
		merged.Remote.Port = overlay.Remote.Port
	}

	return merged
}

func mergeSlides(base, overlay []SlideDefinition) []SlideDefinition {
	if len(overlay) == 0 {
		return base
	}
	out := make([]SlideDefinition, 0, len(base)+len(overlay))
	out = append(out, base...)
	index := make(map[string]int, len(out))
	for i, s := range out {
		index[s.ID] = i
	}
	for _, s := range overlay {
		if i, ok := index[s.ID]; ok {
			out[i] = s // Replace if ID exists, otherwise append
			continue
		}
		index[s.ID] = len(out)
		out = append(out, s)
	}
	return out
}
