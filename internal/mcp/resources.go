package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Resource URI scheme: demo://
// Supported URIs:
//   demo://server/info          static, text/plain
//   demo://server/config        static, application/json
//   demo://greetings/{name}     templated, text/plain

const (
	mimeText = "text/plain"
	mimeJSON = "application/json"
)

// registerResources registers the static resources and the greeting
// template with their handlers.
func (s *Server) registerResources() {
	s.mcpServer.AddResource(&sdkmcp.Resource{
		URI:         "demo://server/info",
		Name:        "Server Info",
		Description: "A short description of this template server.",
		MIMEType:    mimeText,
	}, s.handleResourceInfo)

	s.mcpServer.AddResource(&sdkmcp.Resource{
		URI:         "demo://server/config",
		Name:        "Server Configuration",
		Description: "The server's runtime configuration (sanitized).",
		MIMEType:    mimeJSON,
	}, s.handleResourceConfig)

	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: "demo://greetings/{name}",
		Name:        "Personal Greeting",
		Description: "A personalized greeting for the given name.",
		MIMEType:    mimeText,
	}, s.handleResourceGreeting)
}

func (s *Server) handleResourceInfo(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	text := fmt.Sprintf("%s %s: a template MCP server exposing example tools, resources, and prompts.",
		ServerName, ServerVersion)
	return textResourceResult(req.Params.URI, mimeText, text), nil
}

func (s *Server) handleResourceConfig(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	cfg := map[string]any{
		"name":         ServerName,
		"version":      ServerVersion,
		"port":         s.deps.Config.Port,
		"log_level":    s.deps.Config.LogLevel,
		"task_step_ms": s.deps.Config.TaskStepTime.Milliseconds(),
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing config resource: %w", err)
	}
	return textResourceResult(req.Params.URI, mimeJSON, string(data)), nil
}

func (s *Server) handleResourceGreeting(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	name, err := greetingName(req.Params.URI)
	if err != nil {
		return nil, err
	}
	return textResourceResult(req.Params.URI, mimeText,
		fmt.Sprintf("Hello, %s! Welcome to MCP.", name)), nil
}

// greetingName extracts the variable path segment from a
// demo://greetings/{name} URI.
func greetingName(uri string) (string, error) {
	rest, ok := strings.CutPrefix(uri, "demo://greetings/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return "", sdkmcp.ResourceNotFoundError(uri)
	}
	name, err := url.PathUnescape(rest)
	if err != nil {
		return "", sdkmcp.ResourceNotFoundError(uri)
	}
	return name, nil
}

func textResourceResult(uri, mimeType, text string) *sdkmcp.ReadResourceResult {
	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{URI: uri, MIMEType: mimeType, Text: text},
		},
	}
}
