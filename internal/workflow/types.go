package workflow

import (
	"slices"
	"time"
)

const (
	KeyRequest = "request"
	KeyPrompt  = "prompt"
	KeyContent = "content"
	KeyOutcome = "outcome"
)

// Verdicts the evaluator may return.
const (
	VerdictApprove        = "APPROVE"
	VerdictReviewRequired = "REVIEW_REQUIRED"
	VerdictReject         = "REJECT"
)

var verdicts = []string{
	VerdictApprove,
	VerdictReviewRequired,
	VerdictReject,
}

// ValidVerdict reports whether s is a recognized verdict value.
func ValidVerdict(s string) bool {
	return slices.Contains(verdicts, s)
}

// Risk flags the interpreter attaches to fallback outcomes.
const (
	FlagEvaluationError = "evaluation_error"
	FlagSystemError     = "system_error"
)

// Request carries the inputs for a single evaluation run.
// PolicyDirective is the resolved policy mode text, not the mode name.
type Request struct {
	AIOutput        string `json:"ai_output"`
	TaskContext     string `json:"task_context"`
	PolicyDirective string `json:"policy_directive"`
}

// Outcome is the structured evaluation produced by the interpret node.
// Fallback reports whether the outcome was synthesized after a malformed
// model response rather than parsed from one.
type Outcome struct {
	Verdict           string   `json:"verdict"`
	Confidence        float64  `json:"confidence"`
	RiskFlags         []string `json:"risk_flags"`
	Explanation       string   `json:"explanation"`
	RecommendedAction string   `json:"recommended_action"`
	Fallback          bool     `json:"fallback"`
}

// WorkflowResult is the final output from an evaluation workflow execution.
type WorkflowResult struct {
	Outcome      Outcome   `json:"outcome"`
	ModelName    string    `json:"model_name"`
	ProviderName string    `json:"provider_name"`
	CompletedAt  time.Time `json:"completed_at"`
}
