// Package prompts contains the MCP prompt templates for the template
// server.
package prompts

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Styles lists the accepted values of greeting_template's style argument.
var Styles = []string{"formal", "casual"}

// Languages lists the language hints offered for code_review completion.
var Languages = []string{"go", "python", "typescript", "rust"}

// Register registers all prompts with the MCP server.
func Register(srv *sdkmcp.Server) {
	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "greeting_template",
		Description: "Compose a personalized greeting message",
		Arguments: []*sdkmcp.PromptArgument{
			{
				Name:        "name",
				Description: "Name of the person to greet",
				Required:    true,
			},
			{
				Name:        "style",
				Description: "Greeting style: formal or casual (default casual)",
				Required:    false,
			},
		},
	}, HandleGreetingTemplate())

	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "code_review",
		Description: "Ask for a structured review of a code snippet",
		Arguments: []*sdkmcp.PromptArgument{
			{
				Name:        "code",
				Description: "The code to review",
				Required:    true,
			},
			{
				Name:        "language",
				Description: "Language of the snippet, used to focus the review",
				Required:    false,
			},
		},
	}, HandleCodeReview())
}
