package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/arbiter/pkg/formatting"
)

// evaluationResponse mirrors the JSON contract in the evaluate stage spec.
// Pointer fields distinguish an absent field from a zero value so the
// required-field check can reject incomplete responses.
type evaluationResponse struct {
	Decision          *string  `json:"decision"`
	Confidence        *float64 `json:"confidence"`
	RiskFlags         []string `json:"risk_flags"`
	Explanation       *string  `json:"explanation"`
	RecommendedAction *string  `json:"recommended_action"`
}

// InterpretNode returns a state node that converts the raw model response
// into a structured Outcome. It never fails the graph: a malformed or
// incomplete response degrades to a deterministic REVIEW_REQUIRED fallback
// outcome so the run is still recorded for human review.
func InterpretNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		outcome := interpretState(s)

		if outcome.Fallback {
			rt.Logger.WarnContext(
				ctx, "interpret node degraded to fallback",
				"risk_flags", outcome.RiskFlags,
			)
		} else {
			rt.Logger.InfoContext(
				ctx, "interpret node complete",
				"verdict", outcome.Verdict,
				"confidence", outcome.Confidence,
			)
		}

		s = s.Set(KeyOutcome, outcome)
		return s, nil
	})
}

func interpretState(s state.State) Outcome {
	val, ok := s.Get(KeyContent)
	if !ok {
		return fallbackOutcome(FlagSystemError,
			fmt.Errorf("missing %s in state", KeyContent))
	}

	content, ok := val.(string)
	if !ok {
		return fallbackOutcome(FlagSystemError,
			fmt.Errorf("%s is not string", KeyContent))
	}

	return Interpret(content)
}

// Interpret converts a raw model response into an Outcome, degrading to a
// deterministic fallback when the response is malformed or incomplete.
func Interpret(content string) Outcome {
	parsed, err := formatting.Parse[evaluationResponse](content)
	if err != nil {
		return fallbackOutcome(FlagEvaluationError,
			fmt.Errorf("parse response: %w", err))
	}

	if err := validateResponse(parsed); err != nil {
		return fallbackOutcome(FlagEvaluationError, err)
	}

	return Outcome{
		Verdict:           *parsed.Decision,
		Confidence:        *parsed.Confidence,
		RiskFlags:         parsed.RiskFlags,
		Explanation:       *parsed.Explanation,
		RecommendedAction: *parsed.RecommendedAction,
	}
}

// validateResponse checks field presence only. Once all five fields exist
// the parsed values pass through unchanged: no verdict enum check, no
// confidence clamping.
func validateResponse(r evaluationResponse) error {
	switch {
	case r.Decision == nil:
		return fmt.Errorf("missing required field: decision")
	case r.Confidence == nil:
		return fmt.Errorf("missing required field: confidence")
	case r.RiskFlags == nil:
		return fmt.Errorf("missing required field: risk_flags")
	case r.Explanation == nil:
		return fmt.Errorf("missing required field: explanation")
	case r.RecommendedAction == nil:
		return fmt.Errorf("missing required field: recommended_action")
	}
	return nil
}

func fallbackOutcome(flag string, cause error) Outcome {
	action := "Manual review required due to evaluation error"
	explanation := fmt.Sprintf("Failed to interpret evaluation response: %v", cause)

	if flag == FlagSystemError {
		action = "Manual review required due to system error"
		explanation = fmt.Sprintf("Evaluation error: %v", cause)
	}

	return Outcome{
		Verdict:           VerdictReviewRequired,
		Confidence:        0.0,
		RiskFlags:         []string{flag},
		Explanation:       explanation,
		RecommendedAction: action,
		Fallback:          true,
	}
}
