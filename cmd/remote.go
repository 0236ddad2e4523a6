package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"carouselctl/internal/cli"
	"carouselctl/internal/config"

	"github.com/spf13/cobra"
)

type remoteOptions struct {
	endpoint   string
	configPath string
	output     string
	quiet      bool
}

func newRemoteCmd() *cobra.Command {
	opts := &remoteOptions{}

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Control a carousel started with 'play --remote'",
		Long: `Sends one command to the remote-control server of a running carousel and
prints the resulting state.

The endpoint defaults to http://<remote.host>:<remote.port>/sse from the
configuration files, or http://localhost:8090/sse.`,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.endpoint, "endpoint", "", "SSE endpoint URL (default: from config)")
	pf.StringVar(&opts.configPath, "config", "", "Configuration file layered on top of the user and project files")
	pf.StringVarP(&opts.output, "output", "o", "table", "Output format (table, json, yaml)")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress output")

	simple := []struct {
		use, short, tool string
	}{
		{"state", "Show the slides and timer state", "carousel_state"},
		{"next", "Advance to the next slide", "carousel_next"},
		{"prev", "Go back to the previous slide", "carousel_prev"},
		{"pause", "Pause auto-advance", "carousel_pause"},
		{"resume", "Resume auto-advance", "carousel_resume"},
	}
	for _, s := range simple {
		cmd.AddCommand(&cobra.Command{
			Use:   s.use,
			Short: s.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runRemote(cmd, opts, s.tool, nil)
			},
		})
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "select <index>",
		Short: "Select a slide by zero-based index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid slide index %q: %w", args[0], err)
			}
			return runRemote(cmd, opts, "carousel_select", map[string]interface{}{"index": index})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "interval <duration>",
		Short: "Set the auto-advance interval (e.g. 3s, or 3000 for milliseconds; 0 disables)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseInterval(args[0])
			if err != nil {
				return fmt.Errorf("invalid interval %q: %w", args[0], err)
			}
			return runRemote(cmd, opts, "carousel_set_interval", map[string]interface{}{"ms": d.Milliseconds()})
		},
	})

	switches := []struct {
		use, short, tool string
	}{
		{"no-wrap <on|off>", "Stop at the first and last slide (on) or wrap around (off)", "carousel_set_no_wrap"},
		{"keyboard <on|off>", "Enable or disable keyboard navigation", "carousel_set_keyboard"},
	}
	for _, s := range switches {
		cmd.AddCommand(&cobra.Command{
			Use:   s.use,
			Short: s.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				enabled, err := parseSwitch(args[0])
				if err != nil {
					return err
				}
				return runRemote(cmd, opts, s.tool, map[string]interface{}{"enabled": enabled})
			},
		})
	}

	return cmd
}

// parseSwitch accepts on/off as well as anything strconv.ParseBool does.
func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid switch value %q: use on or off", s)
	}
	return b, nil
}

// resolveEndpoint prefers --endpoint over the configured remote address.
func (o *remoteOptions) resolveEndpoint() (string, error) {
	if o.endpoint != "" {
		return o.endpoint, nil
	}
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return "", fmt.Errorf("failed to load carouselctl configuration: %w", err)
	}
	return cli.EndpointFor(cfg.Remote), nil
}

func runRemote(cmd *cobra.Command, opts *remoteOptions, tool string, args map[string]interface{}) error {
	format, err := cli.ParseOutputFormat(opts.output)
	if err != nil {
		return err
	}
	endpoint, err := opts.resolveEndpoint()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client := cli.NewClient(endpoint)
	if err := client.Connect(ctx); err != nil {
		return fmt.Errorf("is 'carouselctl play --remote' running? %w", err)
	}
	defer client.Close()

	executor := cli.NewToolExecutor(client, cli.ExecutorOptions{
		Format: format,
		Quiet:  opts.quiet,
		Out:    cmd.OutOrStdout(),
	})
	return executor.Execute(ctx, tool, args)
}
