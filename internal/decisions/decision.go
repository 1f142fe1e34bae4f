// Package decisions implements the governance decision domain for Arbiter.
// It provides types, data access, and business logic for evaluating
// AI-generated output through the workflow engine, recording the resulting
// decisions, and capturing human dispositions against them.
package decisions

import "time"

// Decision represents a stored evaluation result for a submitted AI output.
// It mirrors the decisions table schema with flattened workflow metadata.
// HumanAction and HumanNotes reflect the most recent disposition; the full
// disposition history lives in the dispositions sub-log.
type Decision struct {
	ID                int64     `json:"id"`
	CreatedAt         time.Time `json:"created_at"`
	AIOutput          string    `json:"ai_output"`
	TaskContext       string    `json:"task_context"`
	PolicyMode        Mode      `json:"policy_mode"`
	Verdict           string    `json:"verdict"`
	Confidence        float64   `json:"confidence"`
	RiskFlags         []string  `json:"risk_flags"`
	Explanation       string    `json:"explanation"`
	RecommendedAction string    `json:"recommended_action"`
	ModelName         string    `json:"model_name"`
	ProviderName      string    `json:"provider_name"`
	HumanAction       *Action   `json:"human_action"`
	HumanNotes        *string   `json:"human_notes"`
}

// Disposition represents one entry in the append-only disposition sub-log.
// Entries are never updated or deleted; repeat dispositions append.
type Disposition struct {
	ID         int64     `json:"id"`
	DecisionID int64     `json:"decision_id"`
	Action     Action    `json:"action"`
	Notes      string    `json:"notes"`
	DisposedAt time.Time `json:"disposed_at"`
}

// EvaluateCommand carries the inputs for a new evaluation.
// PolicyMode defaults to balanced when empty.
type EvaluateCommand struct {
	AIOutput    string `json:"ai_output"`
	TaskContext string `json:"task_context"`
	PolicyMode  Mode   `json:"policy_mode"`
}

// DisposeCommand carries the data needed to record a human disposition.
// Nil Notes falls back to the action's standard note text.
type DisposeCommand struct {
	Action Action  `json:"action"`
	Notes  *string `json:"notes"`
}
