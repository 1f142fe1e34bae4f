package api

import (
	"github.com/JaimeStill/arbiter/internal/decisions"
	"github.com/JaimeStill/arbiter/internal/prompts"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Decisions decisions.System
	Prompts   prompts.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	promptsSystem := prompts.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	decisionsSystem := decisions.New(
		runtime.Database.Connection(),
		runtime.Agent,
		runtime.Logger,
		runtime.Pagination,
		promptsSystem,
	)

	return &Domain{
		Decisions: decisionsSystem,
		Prompts:   promptsSystem,
	}
}
