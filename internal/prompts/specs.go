package prompts

const evaluateSpec = `Respond with ONLY a JSON object matching this exact structure (no markdown, no explanation):

{
  "decision": "APPROVE" | "REVIEW_REQUIRED" | "REJECT",
  "confidence": 0.0-1.0,
  "risk_flags": ["flag1", "flag2"],
  "explanation": "Brief explanation of the decision",
  "recommended_action": "What should happen next"
}

Field constraints:
- decision: Exactly one of the three decision types.
- confidence: Number between 0.0 and 1.0 reflecting certainty in the decision.
- risk_flags: Array of applicable risk flag strings from the documented
  vocabulary. Empty array when no risks apply.
- explanation: Brief rationale for the decision.
- recommended_action: The concrete next step for the reviewer.`

var specs = map[Stage]string{
	StageEvaluate: evaluateSpec,
}

// Spec returns the hardcoded response specification for a pipeline stage.
// Spec text is immutable: overrides can tune instructions, never the
// response contract the interpreter depends on.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
