package mcp

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textContent extracts the first text content item from a tool result.
func textContent(t *testing.T, res *sdkmcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func TestGreet(t *testing.T) {
	cs := connect(t, testDeps(), nil)

	res, err := cs.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "greet",
		Arguments: map[string]any{"name": "Ada"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "Hello, Ada! Welcome to MCP.", textContent(t, res))
}

func TestGreetEmptyName(t *testing.T) {
	cs := connect(t, testDeps(), nil)

	res, err := cs.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "greet",
		Arguments: map[string]any{"name": ""},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, textContent(t, res), "INVALID_INPUT")
}

// TestCalculatorBonusFlow covers the bonus-loading scenario: the
// calculator is unreachable until load_bonus_tool runs, then computes,
// and a second load reports the already-loaded condition without
// registering a duplicate.
func TestCalculatorBonusFlow(t *testing.T) {
	cs := connect(t, testDeps(), nil)
	ctx := context.Background()

	_, err := cs.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "calculate",
		Arguments: map[string]any{"a": 6, "b": 3, "operation": "multiply"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tool")

	loadRes, err := cs.CallTool(ctx, &sdkmcp.CallToolParams{Name: "load_bonus_tool"})
	require.NoError(t, err)
	assert.False(t, loadRes.IsError)
	assert.Contains(t, textContent(t, loadRes), "loaded")

	calcRes, err := cs.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "calculate",
		Arguments: map[string]any{"a": 6, "b": 3, "operation": "multiply"},
	})
	require.NoError(t, err)
	assert.False(t, calcRes.IsError)
	assert.Equal(t, "18", textContent(t, calcRes))

	againRes, err := cs.CallTool(ctx, &sdkmcp.CallToolParams{Name: "load_bonus_tool"})
	require.NoError(t, err)
	assert.Contains(t, textContent(t, againRes), "already loaded")

	var count int
	for _, name := range toolNames(t, cs) {
		if name == "calculate" {
			count++
		}
	}
	assert.Equal(t, 1, count, "exactly one calculate registration after repeated loads")
}

func TestCalculateDivideByZero(t *testing.T) {
	deps := testDeps()
	deps.Bonus.TryMarkLoaded() // calculator attached at construction
	cs := connect(t, deps, nil)

	res, err := cs.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "calculate",
		Arguments: map[string]any{"a": 1, "b": 0, "operation": "divide"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, textContent(t, res), "division by zero")
}

func TestLongTaskProgressOrder(t *testing.T) {
	var mu sync.Mutex
	var progress []float64
	var messages []string

	opts := &sdkmcp.ClientOptions{
		ProgressNotificationHandler: func(ctx context.Context, req *sdkmcp.ClientRequest[*sdkmcp.ProgressNotificationParams]) {
			mu.Lock()
			defer mu.Unlock()
			progress = append(progress, req.Params.Progress)
			messages = append(messages, req.Params.Message)
		},
	}
	cs := connect(t, testDeps(), opts)

	params := &sdkmcp.CallToolParams{
		Name:      "long_task",
		Arguments: map[string]any{"title": "demo"},
	}
	params.SetProgressToken("task-1")

	res, err := cs.CallTool(context.Background(), params)
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "demo completed in 5 steps", textContent(t, res))

	// Notifications are sent before the final response, but delivery to
	// the handler is asynchronous.
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(progress) == 5
	}, 5*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, progress, "strictly increasing steps, no gaps or duplicates")
	for i, msg := range messages {
		assert.Contains(t, msg, "step")
		assert.Contains(t, msg, "/5")
		assert.True(t, strings.Contains(msg, string(rune('0'+i))), "message %q should reference step %d", msg, i)
	}
}

func TestSampleLLM(t *testing.T) {
	opts := &sdkmcp.ClientOptions{
		CreateMessageHandler: func(ctx context.Context, req *sdkmcp.ClientRequest[*sdkmcp.CreateMessageParams]) (*sdkmcp.CreateMessageResult, error) {
			return &sdkmcp.CreateMessageResult{
				Content: &sdkmcp.TextContent{Text: "sampled response"},
				Model:   "test-model",
				Role:    "assistant",
			}, nil
		},
	}
	cs := connect(t, testDeps(), opts)

	res, err := cs.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "sample_llm",
		Arguments: map[string]any{"prompt": "say something"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "sampled response", textContent(t, res))
}

func TestSampleLLMUnsupportedClient(t *testing.T) {
	// No CreateMessageHandler: the client does not advertise sampling.
	cs := connect(t, testDeps(), nil)

	res, err := cs.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "sample_llm",
		Arguments: map[string]any{"prompt": "say something"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError, "a handler-level failure must be a flagged error, not a transport failure")
	assert.Contains(t, textContent(t, res), "UNSUPPORTED")
}

func TestCollectUserInfo(t *testing.T) {
	opts := &sdkmcp.ClientOptions{
		ElicitationHandler: func(ctx context.Context, req *sdkmcp.ElicitRequest) (*sdkmcp.ElicitResult, error) {
			return &sdkmcp.ElicitResult{
				Action: "accept",
				Content: map[string]any{
					"name":  "Ada Lovelace",
					"email": "ada@example.com",
				},
			}, nil
		},
	}
	cs := connect(t, testDeps(), opts)

	res, err := cs.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "collect_user_info",
		Arguments: map[string]any{"infoType": "contact"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	text := textContent(t, res)
	assert.Contains(t, text, "contact")
	assert.Contains(t, text, "Ada Lovelace")
}

func TestCollectUserInfoDeclined(t *testing.T) {
	opts := &sdkmcp.ClientOptions{
		ElicitationHandler: func(ctx context.Context, req *sdkmcp.ElicitRequest) (*sdkmcp.ElicitResult, error) {
			return &sdkmcp.ElicitResult{Action: "decline"}, nil
		},
	}
	cs := connect(t, testDeps(), opts)

	res, err := cs.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "collect_user_info",
		Arguments: map[string]any{"infoType": "feedback"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError, "a declined elicitation is a normal outcome")
	assert.Contains(t, textContent(t, res), "decline")
}

func TestCollectUserInfoUnknownType(t *testing.T) {
	cs := connect(t, testDeps(), nil)

	res, err := cs.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "collect_user_info",
		Arguments: map[string]any{"infoType": "secrets"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, textContent(t, res), "INVALID_INPUT")
}
