package decisions

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/JaimeStill/arbiter/internal/workflow"
	"github.com/JaimeStill/arbiter/pkg/query"
	"github.com/JaimeStill/arbiter/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "decisions", "d").
	Project("id", "ID").
	Project("created_at", "CreatedAt").
	Project("ai_output", "AIOutput").
	Project("task_context", "TaskContext").
	Project("policy_mode", "PolicyMode").
	Project("verdict", "Verdict").
	Project("confidence", "Confidence").
	Project("risk_flags", "RiskFlags").
	Project("explanation", "Explanation").
	Project("recommended_action", "RecommendedAction").
	Project("model_name", "ModelName").
	Project("provider_name", "ProviderName").
	Project("human_action", "HumanAction").
	Project("human_notes", "HumanNotes")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

var dispositionProjection = query.
	NewProjectionMap("public", "dispositions", "dp").
	Project("id", "ID").
	Project("decision_id", "DecisionID").
	Project("action", "Action").
	Project("notes", "Notes").
	Project("disposed_at", "DisposedAt")

var dispositionSort = query.SortField{
	Field: "DisposedAt",
}

// Filters contains optional filtering criteria for decision queries.
// Nil fields are ignored. Verdict, PolicyMode, and HumanAction use exact
// matching. Pending, when true, restricts results to decisions without
// a recorded human disposition.
type Filters struct {
	Verdict     *string `json:"verdict,omitempty"`
	PolicyMode  *Mode   `json:"policy_mode,omitempty"`
	HumanAction *Action `json:"human_action,omitempty"`
	Pending     *bool   `json:"pending,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b = b.
		WhereEquals("Verdict", f.Verdict).
		WhereEquals("PolicyMode", f.PolicyMode).
		WhereEquals("HumanAction", f.HumanAction)

	if f.Pending != nil && *f.Pending {
		b = b.WhereNullable("HumanAction", nil)
	}

	return b
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if v := values.Get("verdict"); workflow.ValidVerdict(v) {
		f.Verdict = &v
	}

	if m := values.Get("policy_mode"); m != "" {
		if mode, err := ParseMode(m); err == nil {
			f.PolicyMode = &mode
		}
	}

	if a := values.Get("human_action"); a != "" {
		if action, err := ParseAction(a); err == nil {
			f.HumanAction = &action
		}
	}

	if p := values.Get("pending"); p == "true" {
		t := true
		f.Pending = &t
	}

	return f
}

func scanDecision(s repository.Scanner) (Decision, error) {
	var d Decision
	var flagsRaw []byte

	err := s.Scan(
		&d.ID,
		&d.CreatedAt,
		&d.AIOutput,
		&d.TaskContext,
		&d.PolicyMode,
		&d.Verdict,
		&d.Confidence,
		&flagsRaw,
		&d.Explanation,
		&d.RecommendedAction,
		&d.ModelName,
		&d.ProviderName,
		&d.HumanAction,
		&d.HumanNotes,
	)

	if err != nil {
		return d, err
	}

	if len(flagsRaw) > 0 {
		if err := json.Unmarshal(flagsRaw, &d.RiskFlags); err != nil {
			return d, fmt.Errorf("unmarshal risk_flags: %w", err)
		}
	}

	if d.RiskFlags == nil {
		d.RiskFlags = []string{}
	}

	return d, nil
}

func scanDisposition(s repository.Scanner) (Disposition, error) {
	var dp Disposition
	err := s.Scan(
		&dp.ID,
		&dp.DecisionID,
		&dp.Action,
		&dp.Notes,
		&dp.DisposedAt,
	)
	return dp, err
}
