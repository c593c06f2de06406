package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// GreetInput is the input for the greet tool.
type GreetInput struct {
	Name string `json:"name" jsonschema:"the name of the person to greet"`
}

// ToolGreet returns the canonical welcome greeting.
func ToolGreet(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GreetInput) (*sdkmcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GreetInput) (*sdkmcp.CallToolResult, any, error) {
		if input.Name == "" {
			return nil, nil, ErrInvalidInput("name must not be empty")
		}
		return TextResult(fmt.Sprintf("Hello, %s! Welcome to MCP.", input.Name)), nil, nil
	}
}
