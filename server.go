package solanamcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	internalmcp "github.com/halcyonlabs/solana-mcp/internal/mcp"
	"github.com/halcyonlabs/solana-mcp/logging"
)

// Server exposes registered tools over the Model Context Protocol.
//
// It wraps an official MCP SDK server, whose dispatch table serves
// transport-connected peers, and mirrors every registration into an
// internal registry so hosts can list and invoke tools directly.
type Server struct {
	name     string
	version  string
	mcp      *mcp.Server
	registry *internalmcp.Registry
	log      *logging.Logger
}

// NewServer creates a Server with no tools registered.
func NewServer(name, version string) *Server {
	return &Server{
		name:    name,
		version: version,
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    name,
			Version: version,
		}, nil),
		registry: internalmcp.NewRegistry(),
		log:      logging.GetLogger("server"),
	}
}

// Name returns the server name.
func (s *Server) Name() string {
	return s.name
}

// Version returns the server version.
func (s *Server) Version() string {
	return s.version
}

// AddTool registers a tool on both the SDK dispatch table and the internal
// registry. It rejects unnamed tools, nil handlers, and duplicate names.
func (s *Server) AddTool(t *Tool) error {
	mcpTool := internalmcp.NewTool(t.ToolName, t.ToolDescription, t.ToolSchema)
	mcpTool.Annotations = t.ToolAnnotations

	if err := s.registry.Add(mcpTool, t.ToolHandler); err != nil {
		return err
	}

	s.mcp.AddTool(mcpTool, t.ToolHandler)

	s.log.Debug("tool added", map[string]any{
		"tool":   t.ToolName,
		"server": s.name,
	})

	return nil
}

// ListTools returns metadata for all registered tools.
func (s *Server) ListTools() []map[string]any {
	return s.registry.ListTools()
}

// CallTool executes a registered tool by name, bypassing the transport.
// Tool failures are encoded into the result's is_error flag rather than
// returned as Go errors.
func (s *Server) CallTool(ctx context.Context, name string, input map[string]any) (map[string]any, error) {
	return s.registry.CallTool(ctx, name, input)
}

// Run serves MCP requests over the given transport until the context is
// canceled or the peer disconnects.
func (s *Server) Run(ctx context.Context, t mcp.Transport) error {
	s.log.Info("server starting", map[string]any{
		"name":    s.name,
		"version": s.version,
		"tools":   s.registry.Len(),
	})

	return s.mcp.Run(ctx, t)
}
