package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"carouselctl/internal/deck"
	"carouselctl/internal/tui/controller"
	"carouselctl/internal/tui/model"
	"carouselctl/pkg/logging"
)

const shutdownTimeout = 5 * time.Second

// runCLIMode drains the loop on this goroutine until interrupted. Every
// engine event is logged by the console reporter.
func runCLIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Running in no-TUI mode.")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := startBackground(ctx, services); err != nil {
		shutdownEngine(services)
		return err
	}
	defer stopBackground(services)

	logging.Info("CLI", "Playing %d slides from %s. Press Ctrl+C to stop.",
		len(services.Items), services.Source.Name())

	err := services.Loop.Run(ctx)
	shutdownEngine(services)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logging.Info("CLI", "--- Carousel stopped ---")
	return nil
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services, logChan <-chan logging.LogEntry) error {
	defer logging.CloseTUIChannel()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := startBackground(ctx, services); err != nil {
		shutdownEngine(services)
		return err
	}
	defer stopBackground(services)

	p := controller.NewProgram(model.Options{
		Engine:     services.Engine,
		Loop:       services.Loop,
		Source:     services.Source.Name(),
		DebugMode:  config.Debug,
		LogChannel: logChan,
	})

	// Run the TUI until user exits
	_, err := p.Run()
	shutdownEngine(services)
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")
	return nil
}

func (a *Application) runCLIMode(ctx context.Context) error {
	return runCLIMode(ctx, a.config, a.services)
}

func (a *Application) runTUIMode(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.services, a.logChan)
}

// startBackground starts the directory watcher and the remote server.
func startBackground(ctx context.Context, services *Services) error {
	if services.Reloader != nil {
		dir := services.WatchDir
		onChange := services.Reloader.OnChange(ctx)
		go func() {
			if err := deck.Watch(ctx, dir, deck.DefaultDebounce, onChange); err != nil {
				logging.Error("Deck", err, "Watcher for %s stopped", dir)
			}
		}()
		logging.Info("Deck", "Watching %s for changes", dir)
	}
	if services.Remote != nil {
		if err := services.Remote.Start(ctx); err != nil {
			return err
		}
	}
	return nil
}

func stopBackground(services *Services) {
	if services.Remote == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := services.Remote.Stop(ctx); err != nil {
		logging.Warn("Remote", "%v", err)
	}
}

// shutdownEngine closes the loop before destroying the engine so that
// pending remote calls fail fast. Nothing drains the loop any more, so the
// engine may be touched from here.
func shutdownEngine(services *Services) {
	services.Loop.Close()
	services.Engine.Destroy()
}
