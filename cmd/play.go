package cmd

import (
	"context"
	"fmt"
	"time"

	"carouselctl/internal/app"

	"github.com/spf13/cobra"
)

// playOptions holds the raw flag values. Only flags the user actually set
// override the configuration files.
type playOptions struct {
	configPath string
	dir        string
	configMap  string
	interval   time.Duration
	noWrap     bool
	keyboard   bool
	active     int
	noTUI      bool
	watch      bool
	remote     bool
	debug      bool
}

func newPlayCmd() *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a slide deck with an interactive TUI or in console mode.",
		Long: `Plays a deck of slides, advancing to the next slide on a timer.
It can run in two modes:

1. Interactive TUI Mode (default):
   - Shows the active slide, an indicator strip and prev/next controls.
   - Hovering the pointer over the slide pauses the carousel; moving it away resumes.
   - Clicking an indicator or a control navigates. With keyboard navigation on,
     ←/h and →/l move between slides, 1-9 jump and p pauses.

2. Non-TUI / CLI Mode (using --no-tui flag):
   - Runs the carousel in the background and logs every slide change.
   - Useful for driving the carousel through --remote or watching a deck
     directory from a script. Runs until interrupted (e.g., Ctrl+C).

Deck:
  Slides come from --dir (a directory of .md and .txt files), --configmap
  (namespace/name of a Kubernetes ConfigMap, one slide per key) or the
  deck.slides list of the configuration file.

Configuration:
  carouselctl layers ~/.config/carouselctl/config.yaml, .carouselctl/config.yaml
  in the current directory and the --config file. Flags override all of them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Configuration file layered on top of the user and project files")
	flags.StringVar(&opts.dir, "dir", "", "Directory of slide files")
	flags.StringVar(&opts.configMap, "configmap", "", "ConfigMap holding the slides, as namespace/name")
	flags.DurationVar(&opts.interval, "interval", 0, "Auto-advance interval, 0 disables it (default: configured interval)")
	flags.BoolVar(&opts.noWrap, "no-wrap", false, "Stop at the first and last slide instead of wrapping")
	flags.BoolVar(&opts.keyboard, "keyboard", true, "Enable keyboard navigation")
	flags.IntVar(&opts.active, "active", 0, "Index of the initially active slide")
	flags.BoolVar(&opts.noTUI, "no-tui", false, "Disable TUI and log slide changes to the console")
	flags.BoolVar(&opts.watch, "watch", false, "Reload the deck when files in --dir change")
	flags.BoolVar(&opts.remote, "remote", false, "Start the MCP remote-control server")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.MarkFlagsMutuallyExclusive("dir", "configmap")

	return cmd
}

// appConfig converts the flags the user set into application overrides.
func (o *playOptions) appConfig(cmd *cobra.Command) *app.Config {
	cfg := app.NewConfig(o.noTUI, o.debug)
	cfg.ConfigPath = o.configPath
	cfg.Dir = o.dir
	cfg.ConfigMap = o.configMap

	changed := cmd.Flags().Changed
	if changed("interval") {
		cfg.Carousel.SetInterval(o.interval)
	}
	if changed("no-wrap") {
		cfg.Carousel.NoWrap = &o.noWrap
	}
	if changed("keyboard") {
		cfg.Carousel.Keyboard = &o.keyboard
	}
	if changed("active") {
		cfg.Carousel.Active = &o.active
	}
	if changed("watch") {
		cfg.Watch = &o.watch
	}
	if changed("remote") {
		cfg.Remote = &o.remote
	}
	return cfg
}

func runPlay(cmd *cobra.Command, opts *playOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	application, err := app.NewApplication(ctx, opts.appConfig(cmd))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Run(ctx)
}
