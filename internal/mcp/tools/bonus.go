package tools

import (
	"context"
	"sync/atomic"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// BonusGate tracks whether the bonus calculator tool has been loaded
// anywhere in the process. It is false at startup and trips at most
// once; it is never reset. Server instances created after the gate has
// tripped get the calculator registered at construction time.
type BonusGate struct {
	loaded atomic.Bool
}

// TryMarkLoaded trips the gate. It returns true exactly once, for the
// first caller; the check-and-set is a single compare-and-swap, so
// concurrent callers cannot both win.
func (g *BonusGate) TryMarkLoaded() bool {
	return g.loaded.CompareAndSwap(false, true)
}

// Loaded reports whether the gate has tripped.
func (g *BonusGate) Loaded() bool {
	return g.loaded.Load()
}

// LoadBonusInput is the input for load_bonus_tool.
type LoadBonusInput struct{}

// LoadBonusOutput is the output for load_bonus_tool.
type LoadBonusOutput struct {
	Loaded  bool   `json:"loaded"`
	Message string `json:"message"`
}

// ToolLoadBonus registers the calculator tool on srv the first time it
// is invoked. Repeat calls report the already-loaded condition without
// registering again. The per-instance guard is separate from the
// process-wide gate: an instance whose registration ran before the gate
// tripped still gets exactly one calculator from its own load call, even
// if another session's load won the gate race.
func ToolLoadBonus(srv *sdkmcp.Server, d *Deps, registered *atomic.Bool) func(ctx context.Context, req *sdkmcp.CallToolRequest, input LoadBonusInput) (*sdkmcp.CallToolResult, LoadBonusOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input LoadBonusInput) (*sdkmcp.CallToolResult, LoadBonusOutput, error) {
		if !registered.CompareAndSwap(false, true) {
			return nil, LoadBonusOutput{
				Loaded:  true,
				Message: "bonus tool already loaded",
			}, nil
		}

		RegisterCalculator(srv, d)
		d.Bonus.TryMarkLoaded()

		return nil, LoadBonusOutput{
			Loaded:  true,
			Message: "bonus tool loaded: calculate is now available",
		}, nil
	}
}
