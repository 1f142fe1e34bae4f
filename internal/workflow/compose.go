package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/arbiter/internal/prompts"
)

// ComposeNode returns a state node that resolves the effective evaluator
// instructions (active override or compiled default), merges them with the
// response spec, policy directive, and submitted content, and stores the
// finished prompt in the workflow state bag.
func ComposeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		req, err := extractRequest(s)
		if err != nil {
			return s, fmt.Errorf("compose: %w", err)
		}

		prompt, err := ComposePrompt(ctx, rt.Prompts, prompts.StageEvaluate, req)
		if err != nil {
			return s, fmt.Errorf("compose: %w: %w", ErrComposeFailed, err)
		}

		rt.Logger.InfoContext(
			ctx, "compose node complete",
			"prompt_length", len(prompt),
		)

		s = s.Set(KeyPrompt, prompt)
		return s, nil
	})
}

func extractRequest(s state.State) (Request, error) {
	val, ok := s.Get(KeyRequest)
	if !ok {
		return Request{}, fmt.Errorf("%w: missing %s in state", ErrStateCorrupt, KeyRequest)
	}

	req, ok := val.(Request)
	if !ok {
		return Request{}, fmt.Errorf("%w: %s is not Request", ErrStateCorrupt, KeyRequest)
	}

	return req, nil
}
