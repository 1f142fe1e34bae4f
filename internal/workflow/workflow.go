package workflow

import (
	"context"
	"fmt"
	"time"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// Execute runs the evaluation workflow for a single submission. It builds
// the state graph (compose → invoke → interpret), executes it, and extracts
// the WorkflowResult from the final state. A gateway failure surfaces as an
// ErrGatewayFailed graph error; a malformed model response does not fail the
// run and instead yields a fallback outcome.
func Execute(ctx context.Context, rt *Runtime, req Request) (*WorkflowResult, error) {
	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyRequest, req)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResult(rt, finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("arbiter-evaluate")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("compose", ComposeNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("invoke", InvokeNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("interpret", InterpretNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("compose", "invoke", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("invoke", "interpret", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("compose"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("interpret"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(rt *Runtime, s state.State) (*WorkflowResult, error) {
	val, ok := s.Get(KeyOutcome)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s in state", ErrStateCorrupt, KeyOutcome)
	}

	outcome, ok := val.(Outcome)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not Outcome", ErrStateCorrupt, KeyOutcome)
	}

	return &WorkflowResult{
		Outcome:      outcome,
		ModelName:    rt.Agent.Model.Name,
		ProviderName: rt.Agent.Provider.Name,
		CompletedAt:  time.Now().UTC(),
	}, nil
}
