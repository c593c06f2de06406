package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// SampleLLMInput is the input for the sample_llm tool.
type SampleLLMInput struct {
	Prompt    string `json:"prompt" jsonschema:"the prompt to send to the client's LLM"`
	MaxTokens int64  `json:"maxTokens,omitempty" jsonschema:"maximum tokens to sample, default 100"`
}

// ToolSampleLLM asks the connected client to run an LLM sampling
// round-trip and relays the sampled content back. Clients without
// sampling support cause a flagged error, not a transport failure.
func ToolSampleLLM(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SampleLLMInput) (*sdkmcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SampleLLMInput) (*sdkmcp.CallToolResult, any, error) {
		if input.Prompt == "" {
			return nil, nil, ErrInvalidInput("prompt must not be empty")
		}
		maxTokens := input.MaxTokens
		if maxTokens <= 0 {
			maxTokens = 100
		}

		res, err := req.Session.CreateMessage(ctx, &sdkmcp.CreateMessageParams{
			MaxTokens: maxTokens,
			Messages: []*sdkmcp.SamplingMessage{
				{
					Role:    "user",
					Content: &sdkmcp.TextContent{Text: input.Prompt},
				},
			},
		})
		if err != nil {
			return nil, nil, ErrUnsupported("sampling not available on this client", err)
		}

		return &sdkmcp.CallToolResult{
			Content: []sdkmcp.Content{res.Content},
		}, nil, nil
	}
}
