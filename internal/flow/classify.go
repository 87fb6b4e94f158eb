package flow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/veridoc-co/veridoc/internal/sessions"
)

// ClassifyNode returns a state node that classifies the conditioned upload.
// Sessions awaiting their second side supply a context hint naming the
// expected face and type, which steers the model toward a consistent verdict.
func ClassifyNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		upload, err := stateValue[Upload](s, KeyUpload)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		session, err := stateValue[sessions.Session](s, KeySession)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		conditioned, err := stateValue[[]byte](s, KeyConditioned)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		hint := contextHint(&session)
		result := rt.Classifier.Classify(ctx, conditioned, upload.MimeType, hint)

		rt.Logger.InfoContext(
			ctx, "classification complete",
			"session_id", session.ID,
			"document_type", result.DocumentType,
			"document_side", result.DocumentSide,
			"valid", result.IsValidDocument,
			"legible", result.IsLegible,
		)

		return s.Set(KeyClassification, result), nil
	})
}

func contextHint(session *sessions.Session) string {
	if session.FlowState != sessions.StateAwaitingSecondSide {
		return ""
	}

	switch {
	case session.Sides.Front != nil && session.Sides.Back == nil:
		return fmt.Sprintf(
			"Se espera la cara TRASERA de un documento tipo '%s'. Ya se recibió la cara frontal.",
			session.DocumentType,
		)
	case session.Sides.Back != nil && session.Sides.Front == nil:
		return fmt.Sprintf(
			"Se espera la cara FRONTAL de un documento tipo '%s'. Ya se recibió la cara trasera.",
			session.DocumentType,
		)
	default:
		return ""
	}
}
