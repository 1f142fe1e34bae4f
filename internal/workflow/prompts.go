package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/arbiter/internal/prompts"
)

// ComposePrompt builds the full evaluation prompt by combining tunable
// instructions, the immutable response specification, the policy directive,
// and the content under review for a given pipeline stage.
func ComposePrompt(
	ctx context.Context,
	ps prompts.System,
	stage prompts.Stage,
	req Request,
) (string, error) {
	instructions, err := ps.Instructions(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load instructions for %s: %w", stage, err)
	}

	spec, err := ps.Spec(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load spec for %s: %w", stage, err)
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString(spec)
	sb.WriteString("\n\nPolicy Mode: ")
	sb.WriteString(req.PolicyDirective)
	sb.WriteString("\n\nAI Output to Evaluate:\n")
	sb.WriteString(req.AIOutput)
	sb.WriteString("\n\nTask Context: ")
	sb.WriteString(req.TaskContext)

	return sb.String(), nil
}
