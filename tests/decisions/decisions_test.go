package decisions_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/JaimeStill/arbiter/internal/decisions"
	"github.com/JaimeStill/arbiter/internal/workflow"
	"github.com/JaimeStill/arbiter/pkg/query"
)

func TestModes(t *testing.T) {
	modes := decisions.Modes()
	want := []decisions.Mode{
		decisions.ModeStrict,
		decisions.ModeBalanced,
		decisions.ModeRelaxed,
	}

	if len(modes) != len(want) {
		t.Fatalf("modes length = %d, want %d", len(modes), len(want))
	}
	for i, m := range modes {
		if m != want[i] {
			t.Errorf("modes[%d] = %q, want %q", i, m, want[i])
		}
	}
}

func TestModeDirective(t *testing.T) {
	tests := []struct {
		mode decisions.Mode
		want string
	}{
		{decisions.ModeStrict, "High-risk environment. Require review for any uncertainty. Be very cautious."},
		{decisions.ModeBalanced, "Standard corporate environment. Balance safety with efficiency."},
		{decisions.ModeRelaxed, "Low-risk environment. Only flag clear issues."},
	}

	for _, tt := range tests {
		if got := tt.mode.Directive(); got != tt.want {
			t.Errorf("%s directive = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"strict", "balanced", "relaxed"} {
		mode, err := decisions.ParseMode(s)
		if err != nil {
			t.Errorf("ParseMode(%q) error: %v", s, err)
		}
		if string(mode) != s {
			t.Errorf("ParseMode(%q) = %q", s, mode)
		}
	}

	for _, s := range []string{"", "STRICT", "permissive"} {
		if _, err := decisions.ParseMode(s); !errors.Is(err, decisions.ErrInvalidMode) {
			t.Errorf("ParseMode(%q) error = %v, want ErrInvalidMode", s, err)
		}
	}
}

func TestModeUnmarshalJSON(t *testing.T) {
	t.Run("valid mode", func(t *testing.T) {
		var m decisions.Mode
		if err := json.Unmarshal([]byte(`"strict"`), &m); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if m != decisions.ModeStrict {
			t.Errorf("mode = %q, want strict", m)
		}
	})

	t.Run("empty string allowed", func(t *testing.T) {
		var m decisions.Mode
		if err := json.Unmarshal([]byte(`""`), &m); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if m != "" {
			t.Errorf("mode = %q, want empty", m)
		}
	})

	t.Run("unknown mode rejected", func(t *testing.T) {
		var m decisions.Mode
		err := json.Unmarshal([]byte(`"lenient"`), &m)
		if !errors.Is(err, decisions.ErrInvalidMode) {
			t.Errorf("error = %v, want ErrInvalidMode", err)
		}
	})
}

func TestActions(t *testing.T) {
	actions := decisions.Actions()
	want := []decisions.Action{
		decisions.ActionApproved,
		decisions.ActionRejected,
		decisions.ActionRevisionRequested,
	}

	if len(actions) != len(want) {
		t.Fatalf("actions length = %d, want %d", len(actions), len(want))
	}
	for i, a := range actions {
		if a != want[i] {
			t.Errorf("actions[%d] = %q, want %q", i, a, want[i])
		}
	}
}

func TestActionDefaultNotes(t *testing.T) {
	tests := []struct {
		action decisions.Action
		want   string
	}{
		{decisions.ActionApproved, "Human reviewer approved this output"},
		{decisions.ActionRejected, "Human reviewer rejected this output"},
		{decisions.ActionRevisionRequested, "Human reviewer requested revisions"},
	}

	for _, tt := range tests {
		if got := tt.action.DefaultNotes(); got != tt.want {
			t.Errorf("%s notes = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestParseAction(t *testing.T) {
	for _, s := range []string{"APPROVED", "REJECTED", "REVISION_REQUESTED"} {
		action, err := decisions.ParseAction(s)
		if err != nil {
			t.Errorf("ParseAction(%q) error: %v", s, err)
		}
		if string(action) != s {
			t.Errorf("ParseAction(%q) = %q", s, action)
		}
	}

	for _, s := range []string{"", "approved", "DEFERRED"} {
		if _, err := decisions.ParseAction(s); !errors.Is(err, decisions.ErrInvalidAction) {
			t.Errorf("ParseAction(%q) error = %v, want ErrInvalidAction", s, err)
		}
	}
}

func TestActionUnmarshalJSON(t *testing.T) {
	t.Run("valid action", func(t *testing.T) {
		var a decisions.Action
		if err := json.Unmarshal([]byte(`"REJECTED"`), &a); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if a != decisions.ActionRejected {
			t.Errorf("action = %q, want REJECTED", a)
		}
	})

	t.Run("unknown action rejected", func(t *testing.T) {
		var a decisions.Action
		err := json.Unmarshal([]byte(`"DEFERRED"`), &a)
		if !errors.Is(err, decisions.ErrInvalidAction) {
			t.Errorf("error = %v, want ErrInvalidAction", err)
		}
	})
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", decisions.ErrNotFound, http.StatusNotFound},
		{"duplicate", decisions.ErrDuplicate, http.StatusConflict},
		{"empty input", decisions.ErrEmptyInput, http.StatusBadRequest},
		{"invalid mode", decisions.ErrInvalidMode, http.StatusBadRequest},
		{"invalid action", decisions.ErrInvalidAction, http.StatusBadRequest},
		{"gateway failure", workflow.ErrGatewayFailed, http.StatusBadGateway},
		{"wrapped gateway failure", fmt.Errorf("evaluate: %w", workflow.ErrGatewayFailed), http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decisions.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("status = %d, want %d", got, tt.want)
			}
		})
	}
}

func filterProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "decisions", "d").
		Project("id", "ID").
		Project("verdict", "Verdict").
		Project("policy_mode", "PolicyMode").
		Project("human_action", "HumanAction")
}

func TestFiltersApply(t *testing.T) {
	t.Run("empty filters add no conditions", func(t *testing.T) {
		b := query.NewBuilder(filterProjection())
		sql, args := decisions.Filters{}.Apply(b).Build()

		if strings.Contains(sql, "WHERE") {
			t.Errorf("sql = %q, want no WHERE clause", sql)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, want none", args)
		}
	})

	t.Run("exact match filters", func(t *testing.T) {
		verdict := "REJECT"
		mode := decisions.ModeStrict
		f := decisions.Filters{Verdict: &verdict, PolicyMode: &mode}

		b := query.NewBuilder(filterProjection())
		sql, args := f.Apply(b).Build()

		if !strings.Contains(sql, "d.verdict = $1") {
			t.Errorf("sql = %q, want verdict condition", sql)
		}
		if !strings.Contains(sql, "d.policy_mode = $2") {
			t.Errorf("sql = %q, want policy_mode condition", sql)
		}
		if len(args) != 2 {
			t.Errorf("args length = %d, want 2", len(args))
		}
	})

	t.Run("pending filters on null human_action", func(t *testing.T) {
		pending := true
		f := decisions.Filters{Pending: &pending}

		b := query.NewBuilder(filterProjection())
		sql, args := f.Apply(b).Build()

		if !strings.Contains(sql, "d.human_action IS NULL") {
			t.Errorf("sql = %q, want IS NULL condition", sql)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, want none", args)
		}
	})

	t.Run("pending false is ignored", func(t *testing.T) {
		pending := false
		f := decisions.Filters{Pending: &pending}

		b := query.NewBuilder(filterProjection())
		sql, _ := f.Apply(b).Build()

		if strings.Contains(sql, "IS NULL") {
			t.Errorf("sql = %q, want no IS NULL condition", sql)
		}
	})
}

func TestFiltersFromQuery(t *testing.T) {
	t.Run("extracts all filters", func(t *testing.T) {
		values := url.Values{}
		values.Set("verdict", "APPROVE")
		values.Set("policy_mode", "relaxed")
		values.Set("human_action", "APPROVED")
		values.Set("pending", "true")

		f := decisions.FiltersFromQuery(values)

		if f.Verdict == nil || *f.Verdict != "APPROVE" {
			t.Errorf("verdict = %v, want APPROVE", f.Verdict)
		}
		if f.PolicyMode == nil || *f.PolicyMode != decisions.ModeRelaxed {
			t.Errorf("policy_mode = %v, want relaxed", f.PolicyMode)
		}
		if f.HumanAction == nil || *f.HumanAction != decisions.ActionApproved {
			t.Errorf("human_action = %v, want APPROVED", f.HumanAction)
		}
		if f.Pending == nil || !*f.Pending {
			t.Errorf("pending = %v, want true", f.Pending)
		}
	})

	t.Run("invalid values are dropped", func(t *testing.T) {
		values := url.Values{}
		values.Set("verdict", "MAYBE")
		values.Set("policy_mode", "lenient")
		values.Set("human_action", "DEFERRED")
		values.Set("pending", "yes")

		f := decisions.FiltersFromQuery(values)

		if f.Verdict != nil {
			t.Errorf("verdict = %v, want nil", f.Verdict)
		}
		if f.PolicyMode != nil {
			t.Errorf("policy_mode = %v, want nil", f.PolicyMode)
		}
		if f.HumanAction != nil {
			t.Errorf("human_action = %v, want nil", f.HumanAction)
		}
		if f.Pending != nil {
			t.Errorf("pending = %v, want nil", f.Pending)
		}
	})

	t.Run("empty query yields empty filters", func(t *testing.T) {
		f := decisions.FiltersFromQuery(url.Values{})

		if f.Verdict != nil || f.PolicyMode != nil || f.HumanAction != nil || f.Pending != nil {
			t.Errorf("filters = %+v, want all nil", f)
		}
	})
}
