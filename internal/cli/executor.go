package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"carouselctl/internal/remote"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format %q (table, json or yaml)", s)
}

// ExecutorOptions contains options for tool execution
type ExecutorOptions struct {
	Format OutputFormat
	Quiet  bool
	// Out defaults to os.Stdout.
	Out io.Writer
}

// ToolExecutor calls a carousel tool and prints the returned state
type ToolExecutor struct {
	client  *Client
	options ExecutorOptions
}

// NewToolExecutor creates a new tool executor
func NewToolExecutor(client *Client, options ExecutorOptions) *ToolExecutor {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Format == "" {
		options.Format = OutputFormatTable
	}
	return &ToolExecutor{client: client, options: options}
}

// Execute executes a tool and formats the output
func (e *ToolExecutor) Execute(ctx context.Context, toolName string, arguments map[string]interface{}) error {
	result, err := e.client.CallToolText(ctx, toolName, arguments)
	if err != nil {
		return fmt.Errorf("failed to execute tool %s: %w", toolName, err)
	}
	if e.options.Quiet {
		return nil
	}
	return e.formatOutput(result)
}

// formatOutput formats the tool output according to the specified format
func (e *ToolExecutor) formatOutput(jsonData string) error {
	switch e.options.Format {
	case OutputFormatJSON:
		_, err := fmt.Fprintln(e.options.Out, jsonData)
		return err
	case OutputFormatYAML:
		return e.outputYAML(jsonData)
	case OutputFormatTable:
		return e.outputTable(jsonData)
	default:
		return fmt.Errorf("unsupported output format: %s", e.options.Format)
	}
}

// outputYAML converts JSON to YAML and prints it
func (e *ToolExecutor) outputYAML(jsonData string) error {
	var data interface{}
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}

	_, err = e.options.Out.Write(yamlData)
	return err
}

// outputTable prints the slides with the active one marked, then the timer
// state.
func (e *ToolExecutor) outputTable(jsonData string) error {
	var st remote.State
	if err := json.Unmarshal([]byte(jsonData), &st); err != nil {
		// Fallback to raw text if not a state
		_, err := fmt.Fprintln(e.options.Out, jsonData)
		return err
	}

	out := e.options.Out
	if len(st.Slides) == 0 {
		fmt.Fprintln(out, text.FgYellow.Sprint("No slides"))
	} else {
		t := table.NewWriter()
		t.SetOutputMirror(out)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"#", "Slide", "Active"})
		for i, id := range st.Slides {
			var marker string
			if i == st.Active {
				marker = text.FgGreen.Sprint("●")
			}
			t.AppendRow(table.Row{i, id, marker})
		}
		t.Render()
	}

	fmt.Fprintf(out, "%s %s\n", text.FgHiBlue.Sprint("Timer:"), timerState(st))
	fmt.Fprintf(out, "%s %s\n", text.FgHiBlue.Sprint("Wrap:"), onOff(!st.NoWrap))
	fmt.Fprintf(out, "%s %s\n", text.FgHiBlue.Sprint("Keyboard:"), onOff(st.Keyboard))
	return nil
}

func timerState(st remote.State) string {
	interval := time.Duration(st.IntervalMs) * time.Millisecond
	switch {
	case interval <= 0:
		return text.FgHiBlack.Sprint("off")
	case st.Paused:
		return text.FgYellow.Sprintf("paused (%s)", interval)
	case st.Running:
		return text.FgGreen.Sprintf("running every %s", interval)
	default:
		return text.FgHiBlack.Sprintf("stopped (%s)", interval)
	}
}

func onOff(b bool) string {
	if b {
		return text.FgGreen.Sprint("on")
	}
	return text.FgHiBlack.Sprint("off")
}
