// Package remote exposes the carousel engine as MCP tools over SSE, so that
// an agent or script can drive a running carousel.
package remote

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"carouselctl/internal/carousel"
	"carouselctl/internal/config"
	"carouselctl/internal/loop"
	"carouselctl/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "carouselctl"
	serverVersion = "1.0.0"
)

// Server is the MCP remote-control server. Every tool call runs its engine
// work on the loop that owns the engine.
type Server struct {
	engine *carousel.Engine
	loop   *loop.Loop
	host   string
	port   int

	mu        sync.Mutex
	mcpServer *server.MCPServer
	sseServer *server.SSEServer
}

// New creates a server. Empty host and zero port fall back to
// localhost:8090.
func New(engine *carousel.Engine, l *loop.Loop, cfg config.RemoteConfig) *Server {
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == 0 {
		cfg.Port = 8090
	}
	return &Server{engine: engine, loop: l, host: cfg.Host, port: cfg.Port}
}

// Addr returns host:port.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.host, s.port)
}

// MCPServer builds the MCP server with all carousel tools registered.
func (s *Server) MCPServer() *server.MCPServer {
	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)
	mcpServer.AddTools(s.tools()...)
	return mcpServer
}

// Start serves SSE on the configured address in the background.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mcpServer != nil {
		return fmt.Errorf("remote server already started")
	}

	s.mcpServer = s.MCPServer()
	baseURL := fmt.Sprintf("http://%s", s.Addr())
	s.sseServer = server.NewSSEServer(
		s.mcpServer,
		server.WithBaseURL(baseURL),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)

	addr := s.Addr()
	logging.Info("Remote", "Starting MCP remote control on %s/sse", baseURL)

	// Capture sseServer to avoid race condition
	sseServer := s.sseServer
	go func() {
		if err := sseServer.Start(addr); err != nil && err != http.ErrServerClosed {
			logging.Error("Remote", err, "SSE server error")
		}
	}()
	return nil
}

// Stop shuts the SSE server down.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.mcpServer == nil {
		s.mu.Unlock()
		return fmt.Errorf("remote server not started")
	}
	sseServer := s.sseServer
	s.mcpServer = nil
	s.sseServer = nil
	s.mu.Unlock()

	logging.Info("Remote", "Stopping MCP remote control")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sseServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down SSE server: %w", err)
	}
	return nil
}
