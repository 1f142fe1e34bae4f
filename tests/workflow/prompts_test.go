package workflow_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/arbiter/internal/prompts"
	"github.com/JaimeStill/arbiter/internal/workflow"
	"github.com/JaimeStill/arbiter/pkg/pagination"
)

type mockPrompts struct {
	instructions map[prompts.Stage]string
	specs        map[prompts.Stage]string
}

func (m *mockPrompts) Handler() *prompts.Handler { return nil }
func (m *mockPrompts) List(context.Context, pagination.PageRequest, prompts.Filters) (*pagination.PageResult[prompts.Prompt], error) {
	return nil, nil
}
func (m *mockPrompts) Find(context.Context, uuid.UUID) (*prompts.Prompt, error) { return nil, nil }
func (m *mockPrompts) Create(context.Context, prompts.CreateCommand) (*prompts.Prompt, error) {
	return nil, nil
}
func (m *mockPrompts) Update(context.Context, uuid.UUID, prompts.UpdateCommand) (*prompts.Prompt, error) {
	return nil, nil
}
func (m *mockPrompts) Delete(context.Context, uuid.UUID) error                        { return nil }
func (m *mockPrompts) Activate(context.Context, uuid.UUID) (*prompts.Prompt, error)   { return nil, nil }
func (m *mockPrompts) Deactivate(context.Context, uuid.UUID) (*prompts.Prompt, error) { return nil, nil }

func (m *mockPrompts) Instructions(_ context.Context, stage prompts.Stage) (string, error) {
	text, ok := m.instructions[stage]
	if !ok {
		return "", prompts.ErrInvalidStage
	}
	return text, nil
}

func (m *mockPrompts) Spec(_ context.Context, stage prompts.Stage) (string, error) {
	text, ok := m.specs[stage]
	if !ok {
		return "", prompts.ErrInvalidStage
	}
	return text, nil
}

func validMock() *mockPrompts {
	return &mockPrompts{
		instructions: map[prompts.Stage]string{
			prompts.StageEvaluate: "You are a governance evaluator.",
		},
		specs: map[prompts.Stage]string{
			prompts.StageEvaluate: "Respond with ONLY a JSON object.",
		},
	}
}

func sampleRequest() workflow.Request {
	return workflow.Request{
		AIOutput:        "The quarterly forecast projects 12% growth.",
		TaskContext:     "Summarize the quarterly financial report.",
		PolicyDirective: "Standard corporate environment. Balance safety with efficiency.",
	}
}

func TestComposePrompt(t *testing.T) {
	prompt, err := workflow.ComposePrompt(
		context.Background(), validMock(), prompts.StageEvaluate, sampleRequest(),
	)
	if err != nil {
		t.Fatalf("ComposePrompt error: %v", err)
	}

	sections := []string{
		"You are a governance evaluator.",
		"Respond with ONLY a JSON object.",
		"Policy Mode: Standard corporate environment. Balance safety with efficiency.",
		"AI Output to Evaluate:\nThe quarterly forecast projects 12% growth.",
		"Task Context: Summarize the quarterly financial report.",
	}

	for _, section := range sections {
		if !strings.Contains(prompt, section) {
			t.Errorf("prompt missing section %q", section)
		}
	}
}

func TestComposePromptOrdering(t *testing.T) {
	prompt, err := workflow.ComposePrompt(
		context.Background(), validMock(), prompts.StageEvaluate, sampleRequest(),
	)
	if err != nil {
		t.Fatalf("ComposePrompt error: %v", err)
	}

	instructionsIdx := strings.Index(prompt, "governance evaluator")
	specIdx := strings.Index(prompt, "ONLY a JSON object")
	policyIdx := strings.Index(prompt, "Policy Mode:")
	outputIdx := strings.Index(prompt, "AI Output to Evaluate:")

	if !(instructionsIdx < specIdx && specIdx < policyIdx && policyIdx < outputIdx) {
		t.Errorf("prompt sections out of order: instructions=%d spec=%d policy=%d output=%d",
			instructionsIdx, specIdx, policyIdx, outputIdx)
	}
}

func TestComposePromptMissingInstructions(t *testing.T) {
	m := validMock()
	m.instructions = map[prompts.Stage]string{}

	_, err := workflow.ComposePrompt(
		context.Background(), m, prompts.StageEvaluate, sampleRequest(),
	)
	if err == nil {
		t.Fatal("expected error for missing instructions")
	}
}

func TestComposePromptMissingSpec(t *testing.T) {
	m := validMock()
	m.specs = map[prompts.Stage]string{}

	_, err := workflow.ComposePrompt(
		context.Background(), m, prompts.StageEvaluate, sampleRequest(),
	)
	if err == nil {
		t.Fatal("expected error for missing spec")
	}
}
