package flow

import (
	"context"
	"fmt"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// Execute runs one orchestration pass for an uploaded document. It builds
// the state graph (resolve → condition → classify → advance), executes it,
// and extracts the Outcome from the final state. Short-circuit verdicts
// produced during resolution skip conditioning and classification entirely.
func Execute(ctx context.Context, rt *Runtime, upload Upload) (*Outcome, error) {
	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyUpload, upload)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractOutcome(finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("veridoc-validate")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("resolve", ResolveNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("condition", ConditionNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("classify", ClassifyNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("advance", AdvanceNode(rt)); err != nil {
		return nil, err
	}

	// resolve → advance (when resolution produced a terminal verdict)
	if err := graph.AddEdge("resolve", "advance", shortCircuited); err != nil {
		return nil, err
	}

	// resolve → condition (normal path)
	if err := graph.AddEdge("resolve", "condition", state.Not(shortCircuited)); err != nil {
		return nil, err
	}

	// condition → classify (unconditional)
	if err := graph.AddEdge("condition", "classify", nil); err != nil {
		return nil, err
	}

	// classify → advance (unconditional)
	if err := graph.AddEdge("classify", "advance", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("resolve"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("advance"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractOutcome(s state.State) (*Outcome, error) {
	val, ok := s.Get(KeyOutcome)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyOutcome)
	}

	outcome, ok := val.(Outcome)
	if !ok {
		return nil, fmt.Errorf("%s is not Outcome", KeyOutcome)
	}

	return &outcome, nil
}

func shortCircuited(s state.State) bool {
	_, ok := s.Get(KeyOutcome)
	return ok
}

// stateValue extracts a typed value from the state bag.
func stateValue[T any](s state.State, key string) (T, error) {
	var zero T

	val, ok := s.Get(key)
	if !ok {
		return zero, fmt.Errorf("missing %s in state", key)
	}

	typed, ok := val.(T)
	if !ok {
		return zero, fmt.Errorf("%s is not %T", key, zero)
	}

	return typed, nil
}
