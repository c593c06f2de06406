package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// CollectUserInfoInput is the input for the collect_user_info tool.
type CollectUserInfoInput struct {
	InfoType string `json:"infoType" jsonschema:"one of contact, preferences, feedback"`
}

// elicitSchemas maps an info type to the schema requested from the
// client.
var elicitSchemas = map[string]*jsonschema.Schema{
	"contact": {
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name":  {Type: "string", Description: "your full name"},
			"email": {Type: "string", Description: "your email address"},
		},
		Required: []string{"name"},
	},
	"preferences": {
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"theme":         {Type: "string", Enum: []any{"light", "dark"}},
			"notifications": {Type: "boolean", Description: "enable notifications"},
		},
	},
	"feedback": {
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"rating":  {Type: "integer", Description: "rating from 1 to 5"},
			"comment": {Type: "string", Description: "free-form feedback"},
		},
		Required: []string{"rating"},
	},
}

// ToolCollectUserInfo runs an elicitation round-trip with the client. A
// declined or cancelled elicitation is reported in the result, not as an
// error.
func ToolCollectUserInfo(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input CollectUserInfoInput) (*sdkmcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input CollectUserInfoInput) (*sdkmcp.CallToolResult, any, error) {
		schema, ok := elicitSchemas[input.InfoType]
		if !ok {
			return nil, nil, ErrInvalidInput(fmt.Sprintf("unknown info type %q", input.InfoType))
		}

		res, err := req.Session.Elicit(ctx, &sdkmcp.ElicitParams{
			Message:         fmt.Sprintf("Please provide your %s information", input.InfoType),
			RequestedSchema: schema,
		})
		if err != nil {
			return nil, nil, ErrUnsupported("elicitation not available on this client", err)
		}

		if res.Action != "accept" {
			return TextResult(fmt.Sprintf("user did not accept the request (action: %s)", res.Action)), nil, nil
		}

		data, err := json.Marshal(res.Content)
		if err != nil {
			return nil, nil, ErrInternal("encoding elicited content", err)
		}
		return TextResult(fmt.Sprintf("collected %s info: %s", input.InfoType, data)), nil, nil
	}
}
