package tools

import (
	"github.com/usestring/mcp-template/internal/config"
)

// Deps contains the dependencies shared by all tool handlers. One Deps
// value is created per process and shared by every server instance the
// factory produces.
type Deps struct {
	Config *config.Config
	Bonus  *BonusGate
}
