package prompts

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandleGreetingTemplate builds a greeting request message for the
// client's LLM.
func HandleGreetingTemplate() func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		name := req.Params.Arguments["name"]
		if name == "" {
			return nil, fmt.Errorf("greeting_template: missing required argument: name")
		}

		style := req.Params.Arguments["style"]
		var instruction string
		switch style {
		case "formal":
			instruction = fmt.Sprintf("Write a formal, professional greeting addressed to %s.", name)
		case "casual", "":
			instruction = fmt.Sprintf("Write a warm, casual greeting for %s.", name)
		default:
			return nil, fmt.Errorf("greeting_template: unknown style %q", style)
		}

		return &sdkmcp.GetPromptResult{
			Description: fmt.Sprintf("Greeting template for %s", name),
			Messages: []*sdkmcp.PromptMessage{
				{
					Role:    "user",
					Content: &sdkmcp.TextContent{Text: instruction},
				},
			},
		}, nil
	}
}
