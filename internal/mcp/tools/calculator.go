package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// CalculateInput is the input for the calculate tool.
type CalculateInput struct {
	A         float64 `json:"a" jsonschema:"first operand"`
	B         float64 `json:"b" jsonschema:"second operand"`
	Operation string  `json:"operation" jsonschema:"one of add, subtract, multiply, divide"`
}

// CalculateOutput is the output for the calculate tool.
type CalculateOutput struct {
	Result     float64 `json:"result"`
	Expression string  `json:"expression"`
}

// ToolCalculate performs basic arithmetic. It is only reachable after
// load_bonus_tool has run on the instance, or on instances constructed
// after the bonus gate tripped.
func ToolCalculate(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input CalculateInput) (*sdkmcp.CallToolResult, CalculateOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input CalculateInput) (*sdkmcp.CallToolResult, CalculateOutput, error) {
		var result float64
		var op string

		switch input.Operation {
		case "add":
			result, op = input.A+input.B, "+"
		case "subtract":
			result, op = input.A-input.B, "-"
		case "multiply":
			result, op = input.A*input.B, "*"
		case "divide":
			if input.B == 0 {
				return nil, CalculateOutput{}, ErrInvalidInput("division by zero")
			}
			result, op = input.A/input.B, "/"
		default:
			return nil, CalculateOutput{}, ErrInvalidInput(fmt.Sprintf("unknown operation %q", input.Operation))
		}

		out := CalculateOutput{
			Result:     result,
			Expression: fmt.Sprintf("%s %s %s = %s", FormatNumber(input.A), op, FormatNumber(input.B), FormatNumber(result)),
		}
		return TextResult(FormatNumber(result)), out, nil
	}
}
