package workflow

import (
	"log/slog"

	"github.com/JaimeStill/arbiter/internal/prompts"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Runtime bundles the dependencies that workflow nodes require.
// It is constructed by higher-level composition code from Infrastructure and Domain systems.
type Runtime struct {
	Agent   gaconfig.AgentConfig
	Prompts prompts.System
	Logger  *slog.Logger
}
