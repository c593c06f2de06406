package tools

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// taskSteps is the fixed number of steps the simulated task runs.
const taskSteps = 5

// LongTaskInput is the input for the long_task tool.
type LongTaskInput struct {
	Title string `json:"title,omitempty" jsonschema:"optional label for the task"`
}

// ToolLongTask simulates a multi-step task. Each step waits for the
// configured step duration and emits a progress notification on the
// caller's progress token. Notifications are sent in step order before
// the final completion response; other sessions keep being serviced
// while a step is waiting.
func ToolLongTask(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input LongTaskInput) (*sdkmcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input LongTaskInput) (*sdkmcp.CallToolResult, any, error) {
		title := input.Title
		if title == "" {
			title = "task"
		}

		token := req.Params.GetProgressToken()
		for step := 0; step < taskSteps; step++ {
			if token != nil {
				err := req.Session.NotifyProgress(ctx, &sdkmcp.ProgressNotificationParams{
					ProgressToken: token,
					Progress:      float64(step),
					Total:         taskSteps,
					Message:       fmt.Sprintf("step %d/%d", step, taskSteps),
				})
				if err != nil {
					// The subscriber is gone; finishing early is the only
					// cancellation signal we get.
					return nil, nil, ErrInternal("progress notification failed", err)
				}
			}

			select {
			case <-ctx.Done():
				return nil, nil, ctx.Err()
			case <-time.After(d.Config.TaskStepTime):
			}
		}

		return TextResult(fmt.Sprintf("%s completed in %d steps", title, taskSteps)), nil, nil
	}
}
