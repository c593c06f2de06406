package tools

import (
	"sync/atomic"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// boolPtr returns a pointer to b, for the SDK's *bool annotation fields.
func boolPtr(b bool) *bool { return &b }

// Register registers the fixed tool set with a server instance. If the
// bonus gate already tripped in this process, the calculator is attached
// here as well; otherwise it only appears after load_bonus_tool runs on
// this instance. The gate is read strictly during this call, never at
// dispatch time.
func Register(srv *sdkmcp.Server, d *Deps) {
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "greet",
		Description: "Greet a person by name with a welcome message",
		Annotations: &sdkmcp.ToolAnnotations{
			ReadOnlyHint: true,
		},
	}, ToolGreet(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "long_task",
		Description: "Run a simulated 5-step task that reports progress notifications after each step",
	}, ToolLongTask(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "sample_llm",
		Description: "Ask the connected client's LLM to complete a prompt and return the sampled text",
		Annotations: &sdkmcp.ToolAnnotations{
			OpenWorldHint: boolPtr(true),
		},
	}, ToolSampleLLM(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "collect_user_info",
		Description: "Ask the user for structured information (contact, preferences, or feedback) via elicitation",
		Annotations: &sdkmcp.ToolAnnotations{
			OpenWorldHint: boolPtr(true),
		},
	}, ToolCollectUserInfo(d))

	// Per-instance guard for the bonus registration. The process-wide
	// gate only decides whether instances built from now on start with
	// the calculator attached.
	registered := new(atomic.Bool)
	if d.Bonus.Loaded() {
		registered.Store(true)
		RegisterCalculator(srv, d)
	}

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "load_bonus_tool",
		Description: "Load the bonus calculate tool; repeat calls report that it is already loaded",
		Annotations: &sdkmcp.ToolAnnotations{
			IdempotentHint: true,
		},
	}, ToolLoadBonus(srv, d, registered))
}

// RegisterCalculator attaches the bonus calculate tool to a server
// instance. Registering on a live instance makes the SDK emit a
// tools/list_changed notification to the session.
func RegisterCalculator(srv *sdkmcp.Server, d *Deps) {
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "calculate",
		Description: "Perform basic arithmetic: add, subtract, multiply, or divide two numbers",
		Annotations: &sdkmcp.ToolAnnotations{
			ReadOnlyHint: true,
		},
	}, ToolCalculate(d))
}
