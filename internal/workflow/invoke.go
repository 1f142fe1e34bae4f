package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents/pkg/agent"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// InvokeNode returns a state node that performs the single Chat inference
// against the configured model gateway. Transport and agent construction
// failures fail the graph; nothing is recorded for an evaluation that never
// produced a response.
func InvokeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		prompt, err := extractPrompt(s)
		if err != nil {
			return s, fmt.Errorf("invoke: %w", err)
		}

		a, err := agent.New(&rt.Agent)
		if err != nil {
			return s, fmt.Errorf("invoke: %w: create agent: %w", ErrGatewayFailed, err)
		}

		resp, err := a.Chat(ctx, prompt)
		if err != nil {
			return s, fmt.Errorf("invoke: %w: chat call: %w", ErrGatewayFailed, err)
		}

		content := resp.Content()

		rt.Logger.InfoContext(
			ctx, "invoke node complete",
			"response_length", len(content),
		)

		s = s.Set(KeyContent, content)
		return s, nil
	})
}

func extractPrompt(s state.State) (string, error) {
	val, ok := s.Get(KeyPrompt)
	if !ok {
		return "", fmt.Errorf("%w: missing %s in state", ErrStateCorrupt, KeyPrompt)
	}

	prompt, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is not string", ErrStateCorrupt, KeyPrompt)
	}

	return prompt, nil
}
