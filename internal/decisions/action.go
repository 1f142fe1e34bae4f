package decisions

import (
	"encoding/json"
	"slices"
)

// Action represents a human disposition recorded against a decision.
type Action string

// Valid disposition actions.
const (
	ActionApproved          Action = "APPROVED"
	ActionRejected          Action = "REJECTED"
	ActionRevisionRequested Action = "REVISION_REQUESTED"
)

var actions = []Action{
	ActionApproved,
	ActionRejected,
	ActionRevisionRequested,
}

var defaultNotes = map[Action]string{
	ActionApproved:          "Human reviewer approved this output",
	ActionRejected:          "Human reviewer rejected this output",
	ActionRevisionRequested: "Human reviewer requested revisions",
}

// Actions returns the list of valid disposition actions.
func Actions() []Action {
	return actions
}

// DefaultNotes returns the standard note text recorded when the
// reviewer supplies none.
func (a Action) DefaultNotes() string {
	return defaultNotes[a]
}

// UnmarshalJSON validates that the decoded string is a known action value.
func (a *Action) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Action(raw)
	if !slices.Contains(actions, v) {
		return ErrInvalidAction
	}
	*a = v
	return nil
}

// ParseAction validates a string as a known disposition action.
// Returns ErrInvalidAction if the value is not recognized.
func ParseAction(s string) (Action, error) {
	v := Action(s)
	if !slices.Contains(actions, v) {
		return "", ErrInvalidAction
	}
	return v, nil
}
