// ABOUTME: MCP server setup for the wellness tracker.
// ABOUTME: Wraps the MCP server around a tracking controller.
package mcp

import (
	"context"

	"github.com/harperreed/wellness/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with tracker access.
type Server struct {
	mcpServer *mcp.Server
	ctrl      *tracker.Controller
}

// NewServer creates a new MCP server backed by ctrl.
func NewServer(ctrl *tracker.Controller) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "wellness",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		ctrl:      ctrl,
	}

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
