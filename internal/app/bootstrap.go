package app

import (
	"context"
	"fmt"
	"os"

	"carouselctl/internal/config"
	"carouselctl/pkg/logging"
)

// Application is the main application structure that bootstraps and runs a
// carousel
type Application struct {
	config   *Config
	services *Services
	logChan  <-chan logging.LogEntry
}

// NewApplication loads the configuration, switches logging to the mode's
// sink and initializes the services.
func NewApplication(ctx context.Context, cfg *Config) (*Application, error) {
	// Configuration problems are reported on the console before the TUI starts
	logging.InitForCLI(logLevel(cfg.Debug, ""), os.Stderr)

	fileCfg, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load carouselctl configuration")
		return nil, fmt.Errorf("failed to load carouselctl configuration: %w", err)
	}
	resolved := cfg.applyFlags(fileCfg)
	cfg.CarouselctlConfig = &resolved

	a := &Application{config: cfg}

	level := logLevel(cfg.Debug, resolved.GlobalSettings.LogLevel)
	if cfg.NoTUI {
		logging.InitForCLI(level, os.Stdout)
	} else {
		a.logChan = logging.InitForTUI(level)
	}

	services, err := InitializeServices(ctx, cfg)
	if err != nil {
		if !cfg.NoTUI {
			logging.CloseTUIChannel()
		}
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	a.services = services
	return a, nil
}

// Services returns the initialized services.
func (a *Application) Services() *Services {
	return a.services
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return a.runCLIMode(ctx)
	}
	return a.runTUIMode(ctx)
}

// logLevel resolves the effective level. --debug always wins over the
// configured level.
func logLevel(debug bool, configured string) logging.LogLevel {
	if debug {
		return logging.LevelDebug
	}
	level, err := logging.ParseLevel(configured)
	if err != nil {
		logging.Warn("Bootstrap", "%v, using info", err)
		return logging.LevelInfo
	}
	return level
}
