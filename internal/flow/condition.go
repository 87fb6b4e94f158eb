package flow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// ConditionNode returns a state node that runs the upload through the image
// conditioning pipeline. PDFs pass through untouched; conditioning failures
// degrade to the original bytes inside the pipeline itself.
func ConditionNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		upload, err := stateValue[Upload](s, KeyUpload)
		if err != nil {
			return s, fmt.Errorf("condition: %w", err)
		}

		conditioned := upload.Data
		if !upload.IsPDF() {
			conditioned = rt.Conditioner.Condition(upload.Data)
		}

		return s.Set(KeyConditioned, conditioned), nil
	})
}
