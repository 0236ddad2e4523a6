// Package cli talks to the remote-control server of a running carousel.
//
// Client wraps an mcp-go SSE client; ToolExecutor calls one carousel tool
// and prints the returned state as a table, JSON or YAML.
package cli
