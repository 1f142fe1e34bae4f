package decisions

import (
	"encoding/json"
	"slices"
)

// Mode represents the policy strictness applied to an evaluation.
type Mode string

// Valid policy modes.
const (
	ModeStrict   Mode = "strict"
	ModeBalanced Mode = "balanced"
	ModeRelaxed  Mode = "relaxed"
)

var modes = []Mode{
	ModeStrict,
	ModeBalanced,
	ModeRelaxed,
}

var directives = map[Mode]string{
	ModeStrict:   "High-risk environment. Require review for any uncertainty. Be very cautious.",
	ModeBalanced: "Standard corporate environment. Balance safety with efficiency.",
	ModeRelaxed:  "Low-risk environment. Only flag clear issues.",
}

// Modes returns the list of valid policy modes.
func Modes() []Mode {
	return modes
}

// Directive returns the prompt directive text for the mode.
func (m Mode) Directive() string {
	return directives[m]
}

// UnmarshalJSON validates that the decoded string is a known policy mode.
// An empty string is accepted and resolved to balanced by the caller.
func (m *Mode) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*m = ""
		return nil
	}
	v := Mode(raw)
	if !slices.Contains(modes, v) {
		return ErrInvalidMode
	}
	*m = v
	return nil
}

// ParseMode validates a string as a known policy mode.
// Returns ErrInvalidMode if the value is not recognized.
func ParseMode(s string) (Mode, error) {
	v := Mode(s)
	if !slices.Contains(modes, v) {
		return "", ErrInvalidMode
	}
	return v, nil
}
