package app

import (
	"fmt"
	"strings"

	"github.com/JaimeStill/arbiter/internal/decisions"
)

// decisionView wraps a Decision with presentation helpers for templates.
type decisionView struct {
	decisions.Decision
}

// ConfidencePercent formats the confidence score for display.
func (v decisionView) ConfidencePercent() string {
	return fmt.Sprintf("%.0f%%", v.Confidence*100)
}

// VerdictClass returns the CSS class for color-coding the verdict.
func (v decisionView) VerdictClass() string {
	switch v.Verdict {
	case "APPROVE":
		return "verdict-approve"
	case "REJECT":
		return "verdict-reject"
	default:
		return "verdict-review"
	}
}

// FlagsLine joins risk flags for display.
func (v decisionView) FlagsLine() string {
	return strings.Join(v.RiskFlags, ", ")
}

// Disposed reports whether a human action has been recorded.
func (v decisionView) Disposed() bool {
	return v.HumanAction != nil
}

// CreatedStamp formats the creation time for display.
func (v decisionView) CreatedStamp() string {
	return v.CreatedAt.Format("2006-01-02 15:04")
}

type dispositionView struct {
	decisions.Disposition
}

// DisposedStamp formats the disposition time for display.
func (v dispositionView) DisposedStamp() string {
	return v.DisposedAt.Format("2006-01-02 15:04")
}

// reviewPage carries everything the review view renders.
type reviewPage struct {
	Modes    []decisions.Mode
	Actions  []decisions.Action
	Selected *decisionView
	History  []dispositionView
	Recent   []decisionView
	Error    string
}

func wrapDecisions(items []decisions.Decision) []decisionView {
	views := make([]decisionView, len(items))
	for i, d := range items {
		views[i] = decisionView{d}
	}
	return views
}

func wrapDispositions(items []decisions.Disposition) []dispositionView {
	views := make([]dispositionView, len(items))
	for i, d := range items {
		views[i] = dispositionView{d}
	}
	return views
}
