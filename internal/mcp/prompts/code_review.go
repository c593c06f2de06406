package prompts

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandleCodeReview builds a review request around the supplied snippet.
func HandleCodeReview() func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		code := req.Params.Arguments["code"]
		if code == "" {
			return nil, fmt.Errorf("code_review: missing required argument: code")
		}
		language := req.Params.Arguments["language"]

		var sb strings.Builder
		sb.WriteString("Review the following code")
		if language != "" {
			fmt.Fprintf(&sb, " (%s)", language)
		}
		sb.WriteString(". Point out bugs, unclear naming, and missing error handling, in that order.\n\n")
		sb.WriteString("```")
		sb.WriteString(language)
		sb.WriteString("\n")
		sb.WriteString(code)
		sb.WriteString("\n```\n")

		return &sdkmcp.GetPromptResult{
			Description: "Code review request",
			Messages: []*sdkmcp.PromptMessage{
				{
					Role:    "user",
					Content: &sdkmcp.TextContent{Text: sb.String()},
				},
			},
		}, nil
	}
}
