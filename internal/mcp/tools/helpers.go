// Package tools contains the MCP tool implementations for the template
// server.
package tools

import (
	"strconv"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// TextResult creates a CallToolResult with a single text content item.
func TextResult(text string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: text},
		},
	}
}

// FormatNumber renders a float without a trailing ".0" for whole values,
// so 18.0 prints as "18".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
