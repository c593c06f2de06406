// Package mcp wires the template server's capabilities onto MCP server
// instances.
package mcp

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/mcp-template/internal/mcp/prompts"
	"github.com/usestring/mcp-template/internal/mcp/tools"
	"github.com/usestring/mcp-template/internal/metrics"
)

// Server identity reported during the handshake and on the health
// endpoint.
const (
	ServerName    = "mcp-template"
	ServerVersion = "1.0.0"
)

// Server wraps one MCP server instance with the template capability set
// attached.
type Server struct {
	mcpServer *sdkmcp.Server
	deps      *tools.Deps
}

// NewServer creates a fully-configured server instance. It is a pure
// factory: the only shared state it touches is the bonus gate, read once
// while the tool set is registered.
func NewServer(deps *tools.Deps, m *metrics.Metrics) (*Server, error) {
	if deps == nil {
		return nil, fmt.Errorf("deps is required")
	}

	s := &Server{deps: deps}
	s.mcpServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		&sdkmcp.ServerOptions{
			Instructions:      "Template server demonstrating MCP tools, resources, and prompts.",
			CompletionHandler: completePromptArgument,
		},
	)

	s.mcpServer.AddReceivingMiddleware(LoggingMiddleware(m))

	tools.Register(s.mcpServer, deps)
	s.registerResources()
	prompts.Register(s.mcpServer)

	return s, nil
}

// Factory returns the constructor the session transport manager calls
// for each new session. Construction never fails once deps are valid.
func Factory(deps *tools.Deps, m *metrics.Metrics) func() *sdkmcp.Server {
	return func() *sdkmcp.Server {
		s, err := NewServer(deps, m)
		if err != nil {
			// Unreachable: deps were validated at startup.
			panic(err)
		}
		return s.mcpServer
	}
}

// Run serves the instance over stdio until the pipe closes.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &sdkmcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server, for the transport layer
// and tests.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.mcpServer
}

// completePromptArgument offers completions for prompt arguments with
// enumerable values.
func completePromptArgument(ctx context.Context, req *sdkmcp.CompleteRequest) (*sdkmcp.CompleteResult, error) {
	var candidates []string
	switch req.Params.Argument.Name {
	case "style":
		candidates = prompts.Styles
	case "language":
		candidates = prompts.Languages
	}

	values := []string{}
	for _, c := range candidates {
		if strings.HasPrefix(c, req.Params.Argument.Value) {
			values = append(values, c)
		}
	}

	return &sdkmcp.CompleteResult{
		Completion: sdkmcp.CompletionResultDetails{
			Total:  len(values),
			Values: values,
		},
	}, nil
}
