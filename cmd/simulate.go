package cmd

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"carouselctl/internal/app"
	"carouselctl/internal/carousel"
	"carouselctl/internal/clock"
	"carouselctl/internal/config"
	"carouselctl/internal/deck"
	"carouselctl/internal/reporting"

	"github.com/spf13/cobra"
)

// simEpoch is the fixed start of every simulation, so output is reproducible.
var simEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

type simulateOptions struct {
	configPath string
	dir        string
	slides     int
	duration   time.Duration
	interval   time.Duration
	noWrap     bool
	active     int
	at         []string
}

// simAction is one scripted engine call at a point in virtual time.
type simAction struct {
	At   time.Duration
	Name string
	Arg  string
}

func newSimulateCmd() *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a carousel on a virtual clock and print its timeline",
		Long: `Runs the carousel engine on a virtual clock, without waiting in real time,
and prints every state change with its virtual timestamp.

Scripted actions are given as --at <offset>=<action>, for example:

  carouselctl simulate --for 30s --interval 2s --at 3s=pause --at 10s=resume --at 12s=select:0

Actions: next, prev, pause, resume, select:<index>, interval:<duration or ms>,
add:<id>, remove:<id>.

The deck is loaded like 'play' does. When it is empty, --slides placeholder
slides are used instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Configuration file layered on top of the user and project files")
	flags.StringVar(&opts.dir, "dir", "", "Directory of slide files")
	flags.IntVar(&opts.slides, "slides", 3, "Number of placeholder slides when the deck is empty")
	flags.DurationVar(&opts.duration, "for", 30*time.Second, "Virtual time to simulate")
	flags.DurationVar(&opts.interval, "interval", 0, "Auto-advance interval, 0 disables it (default: configured interval)")
	flags.BoolVar(&opts.noWrap, "no-wrap", false, "Stop at the first and last slide instead of wrapping")
	flags.IntVar(&opts.active, "active", 0, "Index of the initially active slide")
	flags.StringArrayVar(&opts.at, "at", nil, "Scripted action as <offset>=<action>, repeatable")

	return cmd
}

func runSimulate(cmd *cobra.Command, opts *simulateOptions) error {
	actions, err := parseActions(opts.at)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load carouselctl configuration: %w", err)
	}
	changed := cmd.Flags().Changed
	if opts.dir != "" {
		cfg.Deck.Dir = opts.dir
	}
	if changed("interval") {
		cfg.Carousel.SetInterval(opts.interval)
	}
	if changed("no-wrap") {
		cfg.Carousel.NoWrap = &opts.noWrap
	}
	if changed("active") {
		cfg.Carousel.Active = &opts.active
	}

	slides, err := simulationSlides(cmd.Context(), cfg.Deck, opts.slides)
	if err != nil {
		return err
	}
	return simulate(cmd.OutOrStdout(), cfg.EngineConfig(), slides, opts.duration, actions)
}

// simulationSlides loads the configured deck, falling back to n placeholders.
func simulationSlides(ctx context.Context, d config.DeckConfig, n int) ([]carousel.Slide, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	src, err := app.NewSource(d)
	if err != nil {
		return nil, err
	}
	items, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck %s: %w", src.Name(), err)
	}
	if len(items) > 0 {
		return deck.Slides(items), nil
	}

	slides := make([]carousel.Slide, n)
	for i := range slides {
		id := fmt.Sprintf("slide-%d", i+1)
		slides[i] = carousel.Slide{ID: id, Content: id}
	}
	return slides, nil
}

// simulate drives an engine on a virtual clock for d and writes the
// recorded timeline to w.
func simulate(w io.Writer, cfg carousel.Config, slides []carousel.Slide, d time.Duration, actions []simAction) error {
	vc := clock.NewVirtual(simEpoch)
	history := reporting.NewHistory(vc, 0)
	engine := carousel.New(cfg, vc,
		carousel.WithObserver(reporting.Observer(history)),
		carousel.WithSlides(slides...),
	)

	fmt.Fprintf(w, "simulating %d slides for %s (interval %s, noWrap %t, active %d)\n",
		engine.Len(), d, engine.Interval(), engine.NoWrap(), engine.Active())

	for _, a := range actions {
		if a.At > d {
			break
		}
		vc.Advance(a.At - vc.Elapsed())
		if err := a.apply(engine); err != nil {
			return err
		}
	}
	vc.Advance(d - vc.Elapsed())
	engine.Destroy()

	if n := history.Evicted(); n > 0 {
		fmt.Fprintf(w, "(%d earlier events dropped)\n", n)
	}
	if _, err := history.WriteTo(w); err != nil {
		return err
	}
	fmt.Fprintf(w, "final: slide %d of %d\n", engine.Active()+1, engine.Len())
	return nil
}

// parseActions parses and orders --at values. Actions at the same offset
// keep their command-line order.
func parseActions(specs []string) ([]simAction, error) {
	actions := make([]simAction, 0, len(specs))
	for _, s := range specs {
		a, err := parseAction(s)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	sort.SliceStable(actions, func(i, j int) bool { return actions[i].At < actions[j].At })
	return actions, nil
}

func parseAction(s string) (simAction, error) {
	offset, action, found := strings.Cut(s, "=")
	if !found {
		return simAction{}, fmt.Errorf("invalid action %q: expected <offset>=<action>", s)
	}
	at, err := time.ParseDuration(strings.TrimSpace(offset))
	if err != nil {
		return simAction{}, fmt.Errorf("invalid offset in %q: %w", s, err)
	}
	if at < 0 {
		return simAction{}, fmt.Errorf("invalid offset in %q: must not be negative", s)
	}

	name, arg, _ := strings.Cut(strings.TrimSpace(action), ":")
	a := simAction{At: at, Name: strings.ToLower(name), Arg: arg}

	switch a.Name {
	case "next", "prev", "pause", "resume":
		if arg != "" {
			return simAction{}, fmt.Errorf("action %q takes no argument", a.Name)
		}
	case "select":
		if _, err := strconv.Atoi(arg); err != nil {
			return simAction{}, fmt.Errorf("invalid slide index in %q: %w", s, err)
		}
	case "interval":
		if _, err := parseInterval(arg); err != nil {
			return simAction{}, fmt.Errorf("invalid interval in %q: %w", s, err)
		}
	case "add", "remove":
		if arg == "" {
			return simAction{}, fmt.Errorf("action %q needs a slide id", a.Name)
		}
	default:
		return simAction{}, fmt.Errorf("unknown action %q", a.Name)
	}
	return a, nil
}

// parseInterval accepts a duration string or a bare number of milliseconds.
func parseInterval(s string) (time.Duration, error) {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(s)
}

func (a simAction) apply(e *carousel.Engine) error {
	switch a.Name {
	case "next":
		e.Next()
	case "prev":
		e.Prev()
	case "pause":
		e.Pause()
	case "resume":
		e.Resume()
	case "select":
		i, err := strconv.Atoi(a.Arg)
		if err != nil {
			return err
		}
		e.Select(i)
	case "interval":
		d, err := parseInterval(a.Arg)
		if err != nil {
			return err
		}
		e.SetInterval(d)
	case "add":
		e.AddSlide(carousel.Slide{ID: a.Arg, Content: a.Arg})
	case "remove":
		e.RemoveSlide(a.Arg)
	default:
		return fmt.Errorf("unknown action %q", a.Name)
	}
	return nil
}
